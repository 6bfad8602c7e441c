package aead

import (
	"crypto/aes"
	"crypto/cipher"
	"errors"
	"fmt"
)

const (
	// KeySize is the AES-256 key width in bytes.
	KeySize = 32
	// NonceSize is the GCM nonce width in bytes.
	NonceSize = 12
	// TagSize is the GCM authentication tag width in bytes.
	TagSize = 16
)

var (
	// ErrInvalidLength reports a key, nonce, or tag whose length violates
	// the cipher's contract. It is returned before the primitive runs.
	ErrInvalidLength = errors.New("aead: invalid length")

	// ErrAuthentication reports a failed tag verification. A wrong key,
	// mismatched additional data, and tampered ciphertext are deliberately
	// indistinguishable.
	ErrAuthentication = errors.New("aead: message authentication failed")
)

// Seal encrypts plaintext with AES-256-GCM and returns the ciphertext and
// authentication tag separately. The ciphertext has the same length as the
// plaintext; the tag is 16 bytes. additional, if non-nil, is authenticated
// but not encrypted and must be presented again on Open.
func Seal(plaintext, key, nonce, additional []byte) (ciphertext, tag []byte, err error) {
	if len(key) != KeySize {
		return nil, nil, fmt.Errorf("%w: key must be %d bytes, got %d", ErrInvalidLength, KeySize, len(key))
	}
	if len(nonce) != NonceSize {
		return nil, nil, fmt.Errorf("%w: nonce must be %d bytes, got %d", ErrInvalidLength, NonceSize, len(nonce))
	}
	gcm, err := newGCM(key)
	if err != nil {
		return nil, nil, err
	}
	sealed := gcm.Seal(nil, nonce, plaintext, additional)
	return sealed[:len(plaintext)], sealed[len(plaintext):], nil
}

// Open verifies the tag over nonce, ciphertext, and additional data, and
// returns the recovered plaintext. No plaintext is released unless the tag
// verifies; a failed verification returns [ErrAuthentication].
func Open(nonce, ciphertext, tag, key, additional []byte) ([]byte, error) {
	if len(key) != KeySize {
		return nil, fmt.Errorf("%w: key must be %d bytes, got %d", ErrInvalidLength, KeySize, len(key))
	}
	if len(nonce) != NonceSize {
		return nil, fmt.Errorf("%w: nonce must be %d bytes, got %d", ErrInvalidLength, NonceSize, len(nonce))
	}
	if len(tag) != TagSize {
		return nil, fmt.Errorf("%w: tag must be %d bytes, got %d", ErrInvalidLength, TagSize, len(tag))
	}
	gcm, err := newGCM(key)
	if err != nil {
		return nil, err
	}
	sealed := make([]byte, 0, len(ciphertext)+TagSize)
	sealed = append(sealed, ciphertext...)
	sealed = append(sealed, tag...)
	plaintext, err := gcm.Open(nil, nonce, sealed, additional)
	if err != nil {
		return nil, ErrAuthentication
	}
	return plaintext, nil
}

func newGCM(key []byte) (cipher.AEAD, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	return cipher.NewGCM(block)
}
