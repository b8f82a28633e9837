package curve

import "golang.org/x/crypto/curve25519"

// X25519 is the Montgomery-form sibling of Ed25519, used for
// exchangeWithScalar key agreement and for Edwards<->Montgomery public-key
// conversion.
type X25519 struct{}

// NewX25519 constructs the X25519 curve facade.
func NewX25519() *X25519 { return &X25519{} }

func (c *X25519) Name() string { return "X25519" }
func (c *X25519) Size() int    { return 32 }

// Ladder runs the constant-time Montgomery ladder (golang.org/x/crypto's
// curve25519.X25519), which needs no separate blinded variant: the ladder's
// fixed instruction sequence already avoids secret-dependent branching.
func (c *X25519) Ladder(scalar, u []byte) ([]byte, error) {
	if len(scalar) != 32 || len(u) != 32 {
		return nil, errScalarOrPointLength
	}
	return curve25519.X25519(scalar, u)
}

func (c *X25519) BasePoint() []byte {
	out := make([]byte, 32)
	copy(out, curve25519.Basepoint)
	return out
}

var errScalarOrPointLength = errLen("curve: x25519 scalar/point must be 32 bytes")

type errLen string

func (e errLen) Error() string { return string(e) }
