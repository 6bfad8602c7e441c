package ecies

import (
	"crypto/sha256"
	"fmt"

	"github.com/larkov/ecx/group"
	"github.com/larkov/ecx/memzero"
)

// KeySize is the width of a derived symmetric key in bytes.
const KeySize = sha256.Size

// DeriveEncryptKey derives the 32-byte symmetric key on the sender side:
// SHA-256 of the big-endian x-coordinate of r*recipientPub, where r is the
// ephemeral scalar. The recipient public point must not be the point at
// infinity.
func DeriveEncryptKey(g group.Group, r group.Scalar, recipientPub group.Point) ([]byte, error) {
	return deriveKey(g, r, recipientPub)
}

// DeriveDecryptKey derives the same key on the recipient side: SHA-256 of
// the big-endian x-coordinate of priv*ephemeral. Because scalar
// multiplication commutes in the exponent, r*(d*G) = d*(r*G), so both
// sides compute an identical key without transmitting it.
func DeriveDecryptKey(g group.Group, priv group.Scalar, ephemeral group.Point) ([]byte, error) {
	return deriveKey(g, priv, ephemeral)
}

func deriveKey(g group.Group, s group.Scalar, p group.Point) ([]byte, error) {
	if p.IsIdentity() {
		return nil, fmt.Errorf("%w: point at infinity", ErrInvalidInput)
	}
	shared := g.NewPoint().ScalarMult(s, p)
	x := shared.XBytes()
	sum := sha256.Sum256(x)
	memzero.Zero(x)
	return sum[:], nil
}
