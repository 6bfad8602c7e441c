package ecies

import (
	"fmt"
	"io"
	"math/big"

	"github.com/larkov/ecx/group"
)

// maxSampleAttempts bounds the ephemeral rejection loop. A redraw happens
// only when the candidate point's x-coordinate is divisible by the group
// order, which occurs with probability about 1/N; the bound exists to
// surface a broken random source rather than loop forever.
const maxSampleAttempts = 1000

// KeyPair holds a private scalar and its public point d*G.
type KeyPair struct {
	Private group.Scalar
	Public  group.Point
}

// GenerateKey produces a recipient key pair on g using the provided random
// source. The private scalar is uniform on [1, N-1].
func GenerateKey(g group.Group, r io.Reader) (*KeyPair, error) {
	d, err := g.RandomScalar(r)
	if err != nil {
		return nil, err
	}
	return &KeyPair{
		Private: d,
		Public:  g.NewPoint().ScalarMult(d, g.Generator()),
	}, nil
}

// GenerateEphemeral samples a fresh ephemeral scalar r and its public
// point R = r*G for one encryption. On top of the uniform [1, N-1] draw it
// rejects any candidate whose point has x ≡ 0 (mod N), which would make
// the derived key-agreement coordinate degenerate; rejected candidates are
// discarded entirely and the whole scalar is redrawn.
func GenerateEphemeral(g group.Group, rand io.Reader) (group.Scalar, group.Point, error) {
	n := g.Order()
	if n == nil || n.Sign() <= 0 {
		return nil, nil, fmt.Errorf("%w: group order is not a positive integer", ErrInvalidInput)
	}
	rx := new(big.Int)
	for i := 0; i < maxSampleAttempts; i++ {
		r, err := g.RandomScalar(rand)
		if err != nil {
			return nil, nil, err
		}
		R := g.NewPoint().ScalarMult(r, g.Generator())
		rx.SetBytes(R.XBytes())
		rx.Mod(rx, n)
		if rx.Sign() != 0 {
			return r, R, nil
		}
	}
	return nil, nil, fmt.Errorf("ecies: ephemeral sampling exceeded %d attempts", maxSampleAttempts)
}
