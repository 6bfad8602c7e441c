package ecies

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io"

	"github.com/larkov/ecx/aead"
	"github.com/larkov/ecx/group"
	"github.com/larkov/ecx/memzero"
)

const (
	// PointSize is the width of the compressed ephemeral point at the
	// head of an envelope.
	PointSize = 33
	// NonceSize is the width of the GCM nonce field.
	NonceSize = aead.NonceSize
	// TagSize is the width of the trailing authentication tag.
	TagSize = aead.TagSize
	// Overhead is the fixed size an envelope adds to its message:
	// compressed point, nonce, and tag.
	Overhead = PointSize + NonceSize + TagSize
)

// ErrInvalidInput reports malformed or out-of-contract input: a point at
// infinity, a truncated envelope, a bad point prefix, or an undecodable
// point. Authentication failures are reported as [aead.ErrAuthentication]
// instead.
var ErrInvalidInput = errors.New("ecies: invalid input")

// Encrypt enciphers message to the holder of the private scalar matching
// recipientPub. It samples a one-time ephemeral key pair, derives a
// symmetric key by key agreement, and seals the message with AES-256-GCM
// under a fresh random nonce.
//
// The returned envelope is self-describing:
//
//	compressed ephemeral point (33) ∥ nonce (12) ∥ ciphertext (len(message)) ∥ tag (16)
//
// message may be empty. The ephemeral scalar and derived key are discarded
// before Encrypt returns; only the envelope survives the call.
func Encrypt(g group.Group, recipientPub group.Point, message []byte) ([]byte, error) {
	if recipientPub.IsIdentity() {
		return nil, fmt.Errorf("%w: recipient public point is the point at infinity", ErrInvalidInput)
	}

	r, R, err := GenerateEphemeral(g, rand.Reader)
	if err != nil {
		return nil, err
	}
	ek, err := DeriveEncryptKey(g, r, recipientPub)
	if err != nil {
		return nil, err
	}
	defer memzero.Zero(ek)

	nonce := make([]byte, NonceSize)
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, fmt.Errorf("ecies: reading nonce: %w", err)
	}

	ciphertext, tag, err := aead.Seal(message, ek, nonce, nil)
	if err != nil {
		return nil, err
	}

	envelope := make([]byte, 0, Overhead+len(message))
	envelope = append(envelope, R.Bytes()...)
	envelope = append(envelope, nonce...)
	envelope = append(envelope, ciphertext...)
	envelope = append(envelope, tag...)
	return envelope, nil
}

// Decrypt recovers the message from an envelope produced by [Encrypt]. It
// validates the envelope shape, decodes the ephemeral point on kp's curve,
// re-derives the symmetric key, and opens the ciphertext.
//
// Malformed envelopes fail with an error wrapping [ErrInvalidInput]. A
// tag-verification failure, whether from a wrong key or from tampering,
// is returned as [aead.ErrAuthentication] unchanged.
func Decrypt(g group.Group, kp *KeyPair, envelope []byte) ([]byte, error) {
	if len(envelope) < PointSize {
		return nil, fmt.Errorf("%w: envelope shorter than a compressed point (%d bytes)", ErrInvalidInput, len(envelope))
	}
	if envelope[0] != 0x02 && envelope[0] != 0x03 {
		return nil, fmt.Errorf("%w: invalid compressed point prefix 0x%02x", ErrInvalidInput, envelope[0])
	}
	if kp.Public.IsIdentity() {
		return nil, fmt.Errorf("%w: recipient public point is the point at infinity", ErrInvalidInput)
	}
	if len(envelope) < Overhead {
		return nil, fmt.Errorf("%w: envelope too short for nonce and tag (%d bytes)", ErrInvalidInput, len(envelope))
	}

	R, err := g.NewPoint().SetBytes(envelope[:PointSize])
	if err != nil {
		return nil, fmt.Errorf("%w: decoding ephemeral point: %v", ErrInvalidInput, err)
	}

	nonce := envelope[PointSize : PointSize+NonceSize]
	tag := envelope[len(envelope)-TagSize:]
	ciphertext := envelope[PointSize+NonceSize : len(envelope)-TagSize]

	ek, err := DeriveDecryptKey(g, kp.Private, R)
	if err != nil {
		return nil, err
	}
	defer memzero.Zero(ek)

	return aead.Open(nonce, ciphertext, tag, ek, nil)
}
