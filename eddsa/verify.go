package eddsa

import (
	"threshold.network/cryptocore/curve"
)

// Verify checks length, point/scalar parsing, S >= n rejection, the
// challenge hash, and cofactor-cleared group-equation comparison. It never
// raises: any internal failure (bad length, malformed point, facade panic)
// is converted to a false return, so a verification failure reveals no
// distinction between its causes.
func (e *Engine) Verify(msg, sig, key []byte, ph *bool, ctx []byte) (ok bool) {
	defer func() {
		if recover() != nil {
			ok = false
		}
	}()

	c := e.Curve()
	size := c.Size()

	if len(sig) != 2*size || len(key) != size {
		return false
	}
	if !c.AlwaysPrefixed() && len(ctx) > 0 && ph == nil {
		return false
	}

	R, err := c.DecodePoint(sig[:size])
	if err != nil {
		return false
	}
	S := c.DecodeInt(sig[size:])
	if S.Cmp(c.Order()) >= 0 {
		return false
	}
	A, err := c.DecodePoint(key)
	if err != nil {
		return false
	}

	Sscalar := c.ScalarFromInt(S)

	h, err := e.hashInt(ph, ctx, sig[:size], key, msg)
	if err != nil {
		return false
	}

	lhs := c.MulBase(Sscalar)
	rhs := R.Add(c.Mul(A, h))

	for i := 0; i < c.CofactorLog(); i++ {
		lhs = lhs.Double()
		rhs = rhs.Double()
	}

	return lhs.Equal(rhs)
}

// BatchEntry is one signature in a BatchVerify call.
type BatchEntry struct {
	Msg, Sig, Key []byte
	PH            *bool
	Ctx           []byte
}

// BatchVerify reduces many signatures to a single randomized group
// equation. An empty batch verifies true (a vacuous quantifier). Any
// structurally invalid entry (bad length, bad point, S >= n) makes the
// whole batch return false without revealing which entry failed.
func (e *Engine) BatchVerify(entries []BatchEntry) (ok bool) {
	defer func() {
		if recover() != nil {
			ok = false
		}
	}()

	if len(entries) == 0 {
		return true
	}

	c := e.Curve()
	size := c.Size()

	type parsed struct {
		R curve.Point
		S curve.Scalar
		A curve.Point
		h curve.Scalar
	}
	items := make([]parsed, len(entries))

	for i, entry := range entries {
		if len(entry.Sig) != 2*size || len(entry.Key) != size {
			return false
		}
		if !c.AlwaysPrefixed() && len(entry.Ctx) > 0 && entry.PH == nil {
			return false
		}
		R, err := c.DecodePoint(entry.Sig[:size])
		if err != nil {
			return false
		}
		S := c.DecodeInt(entry.Sig[size:])
		if S.Cmp(c.Order()) >= 0 {
			return false
		}
		A, err := c.DecodePoint(entry.Key)
		if err != nil {
			return false
		}
		h, err := e.hashInt(entry.PH, entry.Ctx, entry.Sig[:size], entry.Key, entry.Msg)
		if err != nil {
			return false
		}
		items[i] = parsed{R, c.ScalarFromInt(S), A, h}
	}

	lhs := items[0].S
	rhs := items[0].R.Add(c.Mul(items[0].A, items[0].h))

	for _, it := range items[1:] {
		ai, err := c.RandomScalar()
		if err != nil {
			return false
		}
		lhs = lhs.Add(ai.Multiply(it.S))
		aiEi := ai.Multiply(it.h)
		rhs = rhs.Add(c.MulAdd(ai, it.R, aiEi, it.A))
	}

	return c.MulBase(lhs).Equal(rhs)
}
