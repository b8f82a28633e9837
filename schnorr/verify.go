package schnorr

import "math/big"

// liftX recovers the unique point (x, y) with jacobi(y, p) == 1 for a given
// x-coordinate, the predecessor convention to BIP-340's final has_even_y
// rule.
func (e *Engine) liftX(x *big.Int) (y *big.Int, err error) {
	c := e.curve
	if x.Cmp(c.Field()) >= 0 {
		return nil, errPointAtInfinityOrOOB
	}
	v := new(big.Int).Exp(x, big.NewInt(3), c.Field())
	v.Add(v, c.B())
	v.Mod(v, c.Field())

	yy, err := c.ModSqrt(v)
	if err != nil {
		return nil, err
	}
	if c.Jacobi(yy) != 1 {
		yy.Sub(c.Field(), yy)
	}
	return yy, nil
}

var errPointAtInfinityOrOOB = errScalarOrPoint("schnorr: x exceeds field size")

type errScalarOrPoint string

func (e errScalarOrPoint) Error() string { return string(e) }

// Verify checks length, field/scalar ranges, the challenge hash, the group
// equation R := [S]G + [-e]A, and the Jacobi-parity + x-coordinate
// acceptance test. It never raises; any internal failure collapses to
// false.
func (e *Engine) Verify(msg, sig, key []byte) (ok bool) {
	defer func() {
		if recover() != nil {
			ok = false
		}
	}()

	c := e.curve
	size := c.Size()

	if len(sig) != 2*size || len(key) != size {
		return false
	}

	ax := new(big.Int).SetBytes(key)
	ay, err := e.liftX(ax)
	if err != nil {
		return false
	}

	rx := new(big.Int).SetBytes(sig[:size])
	if rx.Cmp(c.Field()) >= 0 {
		return false
	}
	s := new(big.Int).SetBytes(sig[size:])
	if s.Cmp(c.Order()) >= 0 {
		return false
	}

	eVal := e.challengeHash(sig[:size], key, msg)

	sx, sy := c.ScalarBaseMult(s)
	negE := new(big.Int).Sub(c.Order(), eVal)
	negE.Mod(negE, c.Order())
	eax, eay := c.ScalarMult(ax, ay, negE)

	Rx, Ry := c.Add(sx, sy, eax, eay)

	if Rx.Sign() == 0 && Ry.Sign() == 0 {
		return false
	}
	if c.Jacobi(Ry) != 1 {
		return false
	}
	return Rx.Cmp(rx) == 0
}
