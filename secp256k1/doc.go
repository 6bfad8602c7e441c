// Package secp256k1 provides a secp256k1 elliptic curve implementation of
// the [group.Group] interface for use with hybrid encryption.
//
// secp256k1 is the short Weierstrass curve y^2 = x^3 + 7 used by Bitcoin
// and many other systems. It has cofactor 1, so the full curve is a group
// of prime order and no subgroup checks are needed beyond on-curve
// validation.
//
// This package wraps the secp256k1 implementation from gnark-crypto,
// providing a clean interface that satisfies [group.Group], [group.Scalar],
// and [group.Point].
//
// # Point Encoding
//
// Points serialize to the 33-byte SEC1 compressed form: a prefix byte of
// 0x02 (even y) or 0x03 (odd y) followed by the 32-byte big-endian
// x-coordinate. Decoding recovers y by solving the curve equation with a
// field square root and matching the parity in the prefix. Encodings with
// any other length or prefix, a non-canonical x-coordinate, or an x that
// does not lie on the curve are rejected.
//
// # Usage
//
// Create a Curve and use it with the ecies package:
//
//	g := &secp256k1.Curve{}
//	kp, err := ecies.GenerateKey(g, rand.Reader)
//
// # Security
//
// This implementation relies on gnark-crypto for the underlying field and
// curve arithmetic. Random scalars are produced by rejection sampling so
// the distribution over [1, N-1] carries no reduction bias.
package secp256k1
