package secp256k1

import (
	"errors"
	"fmt"
	"io"
	"math/big"

	ecc "github.com/consensys/gnark-crypto/ecc/secp256k1"
	"github.com/consensys/gnark-crypto/ecc/secp256k1/fp"
	"github.com/consensys/gnark-crypto/ecc/secp256k1/fr"

	"github.com/larkov/ecx/group"
)

const (
	// ScalarSize is the width of a serialized scalar in bytes.
	ScalarSize = 32
	// CompressedPointSize is the width of a compressed point encoding:
	// one parity prefix byte plus the 32-byte x-coordinate.
	CompressedPointSize = 33

	prefixEvenY = 0x02
	prefixOddY  = 0x03

	// maxSampleAttempts bounds the rejection loop in RandomScalar. With a
	// working random source a draw is rejected with probability below
	// 2^-128, so the bound exists only to surface a broken source.
	maxSampleAttempts = 1000
)

// curveOrder is the order of the secp256k1 group (cofactor 1, so this is
// also the prime order of the full curve).
var curveOrder *big.Int

// fieldModulus is the prime modulus of the base field.
var fieldModulus *big.Int

// generator is the standard secp256k1 base point.
var generator ecc.G1Affine

// bSeven is the curve constant b = 7 in y^2 = x^3 + 7.
var bSeven fp.Element

func init() {
	curveOrder = fr.Modulus()
	fieldModulus = fp.Modulus()
	bSeven.SetUint64(7)

	gx, ok := new(big.Int).SetString(
		"55066263022277343669578718895168534326250603453777594175500187360389116729240", 10)
	if !ok {
		panic("secp256k1: bad generator x constant")
	}
	gy, ok := new(big.Int).SetString(
		"32670510020758816978083085130507043184471273380659243275938904335757337482424", 10)
	if !ok {
		panic("secp256k1: bad generator y constant")
	}
	generator.X.SetBigInt(gx)
	generator.Y.SetBigInt(gy)
	if !generator.IsOnCurve() {
		panic("secp256k1: generator is not on the curve")
	}
}

// Scalar represents an element of the secp256k1 scalar field. It implements
// [group.Scalar] using big.Int with reduction modulo the group order.
type Scalar struct {
	inner *big.Int
}

func newScalar() *Scalar {
	return &Scalar{inner: new(big.Int)}
}

// Set copies the value of a into s and returns s.
func (s *Scalar) Set(a group.Scalar) group.Scalar {
	s.inner.Set(a.(*Scalar).inner)
	return s
}

// Bytes returns the scalar as a 32-byte big-endian value, left-padded with
// zeros.
func (s *Scalar) Bytes() []byte {
	buf := make([]byte, ScalarSize)
	s.inner.FillBytes(buf)
	return buf
}

// SetBytes sets s from a big-endian byte slice, reducing modulo the group
// order, and returns s.
func (s *Scalar) SetBytes(data []byte) (group.Scalar, error) {
	s.inner.SetBytes(data)
	s.inner.Mod(s.inner, curveOrder)
	return s, nil
}

// Equal reports whether s and b represent the same scalar value.
func (s *Scalar) Equal(b group.Scalar) bool {
	return s.inner.Cmp(b.(*Scalar).inner) == 0
}

// IsZero reports whether s is the zero scalar.
func (s *Scalar) IsZero() bool {
	return s.inner.Sign() == 0
}

// Point represents a point on the secp256k1 curve. It implements
// [group.Point] by wrapping gnark-crypto's affine representation. The
// identity element (point at infinity) is the zero value.
type Point struct {
	inner ecc.G1Affine
}

// ScalarMult sets p to s*q and returns p.
func (p *Point) ScalarMult(s group.Scalar, q group.Point) group.Point {
	p.inner.ScalarMultiplication(&q.(*Point).inner, s.(*Scalar).inner)
	return p
}

// Set copies the value of a into p and returns p.
func (p *Point) Set(a group.Point) group.Point {
	p.inner.Set(&a.(*Point).inner)
	return p
}

// Bytes returns the compressed encoding of p: 0x02 or 0x03 depending on
// y's parity, followed by the 32-byte big-endian x-coordinate. The
// identity has no compressed encoding; its Bytes are all zero and will be
// rejected by SetBytes.
func (p *Point) Bytes() []byte {
	buf := make([]byte, CompressedPointSize)
	if p.inner.IsInfinity() {
		return buf
	}
	x := p.inner.X.Bytes()
	y := p.inner.Y.Bytes()
	buf[0] = prefixEvenY | (y[len(y)-1] & 1)
	copy(buf[1:], x[:])
	return buf
}

// XBytes returns the big-endian x-coordinate of p, padded to 32 bytes.
func (p *Point) XBytes() []byte {
	x := p.inner.X.Bytes()
	out := make([]byte, len(x))
	copy(out, x[:])
	return out
}

// SetBytes sets p from a compressed encoding and returns p. The input must
// be exactly 33 bytes, carry a 0x02 or 0x03 prefix, and hold a canonical
// x-coordinate that lies on the curve; otherwise an error is returned and
// p is unchanged.
func (p *Point) SetBytes(data []byte) (group.Point, error) {
	if len(data) != CompressedPointSize {
		return nil, fmt.Errorf("secp256k1: compressed point must be %d bytes, got %d", CompressedPointSize, len(data))
	}
	if data[0] != prefixEvenY && data[0] != prefixOddY {
		return nil, fmt.Errorf("secp256k1: invalid compressed point prefix 0x%02x", data[0])
	}
	xInt := new(big.Int).SetBytes(data[1:])
	if xInt.Cmp(fieldModulus) >= 0 {
		return nil, errors.New("secp256k1: x-coordinate exceeds field modulus")
	}

	var x, rhs, y fp.Element
	x.SetBigInt(xInt)
	rhs.Square(&x)
	rhs.Mul(&rhs, &x)
	rhs.Add(&rhs, &bSeven)
	if y.Sqrt(&rhs) == nil {
		return nil, errors.New("secp256k1: x-coordinate is not on the curve")
	}
	yb := y.Bytes()
	if yb[len(yb)-1]&1 != data[0]&1 {
		y.Neg(&y)
	}
	p.inner.X = x
	p.inner.Y = y
	return p, nil
}

// Equal reports whether p and b represent the same curve point.
func (p *Point) Equal(b group.Point) bool {
	return p.inner.Equal(&b.(*Point).inner)
}

// IsIdentity reports whether p is the point at infinity.
func (p *Point) IsIdentity() bool {
	return p.inner.IsInfinity()
}

// Curve implements [group.Group] for secp256k1.
//
// Curve is a zero-sized type that provides access to secp256k1 group
// operations. Create an instance with &Curve{} or new(Curve).
type Curve struct{}

// NewScalar returns a new scalar initialized to zero.
func (c *Curve) NewScalar() group.Scalar {
	return newScalar()
}

// NewPoint returns a new point initialized to the point at infinity.
func (c *Curve) NewPoint() group.Point {
	return &Point{}
}

// Generator returns the standard secp256k1 base point.
func (c *Curve) Generator() group.Point {
	var p Point
	p.inner.Set(&generator)
	return &p
}

// Order returns the group order as a fresh big integer owned by the caller.
func (c *Curve) Order() *big.Int {
	return new(big.Int).Set(curveOrder)
}

// RandomScalar draws a scalar uniformly from [1, N-1] using rejection
// sampling at the order's bit length: 256-bit candidates are discarded
// until one lands in range. Reduction is never used, so the distribution
// is exactly uniform.
func (c *Curve) RandomScalar(r io.Reader) (group.Scalar, error) {
	buf := make([]byte, ScalarSize)
	k := new(big.Int)
	for i := 0; i < maxSampleAttempts; i++ {
		if _, err := io.ReadFull(r, buf); err != nil {
			return nil, fmt.Errorf("secp256k1: reading random scalar: %w", err)
		}
		k.SetBytes(buf)
		if k.Sign() > 0 && k.Cmp(curveOrder) < 0 {
			return &Scalar{inner: k}, nil
		}
	}
	return nil, errors.New("secp256k1: random source failed to produce a valid scalar")
}
