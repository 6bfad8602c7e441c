package group

import (
	"io"
	"math/big"
)

// Scalar represents an element of the scalar field associated with a
// cryptographic group: an integer modulo the group order, used as the
// multiplier in scalar multiplication.
//
// Mutating methods set the receiver to the result and return it, so calls
// can be chained without extra allocations.
//
// Scalars may carry secret key material. Implementations backed by
// arbitrary-precision integers cannot guarantee wiping of their internal
// storage; callers who need wiping must apply it to the byte copies they
// obtain from Bytes.
type Scalar interface {
	// Set sets the receiver to a and returns it.
	Set(a Scalar) Scalar
	// Bytes returns the canonical big-endian representation of the scalar,
	// left-padded to the group's scalar width.
	Bytes() []byte
	// SetBytes sets the receiver from a big-endian byte slice, reducing
	// modulo the group order, and returns it.
	SetBytes(data []byte) (Scalar, error)
	// Equal reports whether the receiver equals b.
	Equal(b Scalar) bool
	// IsZero reports whether the receiver is zero.
	IsZero() bool
}

// Point represents an element of the group, typically a point on an
// elliptic curve. The identity element (point at infinity) exists as a
// value but is rejected by every operation in this module that consumes
// points; IsIdentity is how callers enforce that.
//
// Like [Scalar], mutating methods use the mutable receiver pattern.
type Point interface {
	// ScalarMult sets the receiver to s*p and returns it.
	ScalarMult(s Scalar, p Point) Point
	// Set sets the receiver to a and returns it.
	Set(a Point) Point
	// Bytes returns the compressed encoding of the point: one prefix byte
	// (0x02 for even y, 0x03 for odd y) followed by the big-endian
	// x-coordinate. The identity has no valid compressed encoding.
	Bytes() []byte
	// XBytes returns the big-endian x-coordinate of the point, padded to
	// the field's byte width.
	XBytes() []byte
	// SetBytes sets the receiver from a compressed encoding and returns it.
	// Returns an error if the data is not a valid encoding of a point on
	// the curve.
	SetBytes(data []byte) (Point, error)
	// Equal reports whether the receiver equals b.
	Equal(b Point) bool
	// IsIdentity reports whether the receiver is the identity element.
	IsIdentity() bool
}

// Group defines a cryptographic group suitable for elliptic-curve key
// agreement. It provides factory methods for scalars and points, the
// group's generator and order, and uniform scalar sampling.
//
// A Group implementation encapsulates all curve-specific detail, so the
// encryption scheme built on top is generic over the curve in use.
type Group interface {
	// NewScalar returns a new zero scalar.
	NewScalar() Scalar
	// NewPoint returns a new identity point.
	NewPoint() Point
	// Generator returns the group's base point.
	Generator() Point
	// Order returns the group order N as a fresh big integer; callers own
	// the returned value.
	Order() *big.Int
	// RandomScalar returns a scalar drawn uniformly from [1, N-1] using
	// the provided random source. Implementations must sample by
	// rejection at N's bit length rather than reducing, and must fail
	// rather than loop indefinitely on a broken source.
	RandomScalar(r io.Reader) (Scalar, error)
}
