package eddsa

import (
	"math/big"

	"threshold.network/cryptocore/curve"
	"threshold.network/cryptocore/digest"
)

// hashInt produces a scalar mod n from an optional domain-separation
// prefix plus an ordered list of byte items.
//
// ph is tri-state: nil means the caller omitted the prehash flag entirely
// (plain Ed25519, no context support); a non-nil value means the caller
// explicitly chose prehash (*ph == true, Ed25519ph) or explicit no-prehash
// with optional context (*ph == false, Ed25519ctx).
func (e *Engine) hashInt(ph *bool, ctx []byte, items ...[]byte) (curve.Scalar, error) {
	c := e.Curve()
	h := e.newHash()

	if c.AlwaysPrefixed() || ph != nil {
		if len(ctx) > 255 {
			return nil, ErrContextTooLong
		}
		var phByte byte
		if ph != nil && *ph {
			phByte = 1
		}
		h.Update(c.Prefix())
		h.Update([]byte{phByte})
		h.Update([]byte{byte(len(ctx))})
		h.Update(ctx)
	} else if len(ctx) > 0 {
		// No prefix and no explicit ph: context is meaningless and its
		// presence signals caller error.
		return nil, ErrContextWithoutPH
	}

	for _, item := range items {
		h.Update(item)
	}

	out := h.Final(2 * c.Size())
	var i *big.Int
	if c.Endian() == curve.LittleEndian {
		i = leToInt(out)
	} else {
		i = new(big.Int).SetBytes(out)
	}
	return c.ScalarFromInt(i), nil
}

func leToInt(b []byte) *big.Int {
	rev := make([]byte, len(b))
	for j, v := range b {
		rev[len(b)-1-j] = v
	}
	return new(big.Int).SetBytes(rev)
}

// SignWithScalar implements the core EdDSA signing algorithm: the caller
// supplies scalar and matching nonce bytes directly, as Sign does after
// expanding a seed (a freshly-clamped scalar), and as SignTweakAdd/
// SignTweakMul do after deriving a tweaked (reduced, unclamped) scalar and
// nonce. Since [x]G == [x mod n]G for any integer x, decoding mod n without
// clamping is correct for both callers.
func (e *Engine) SignWithScalar(msg, aBytes, nonce []byte, ph *bool, ctx []byte) ([]byte, error) {
	c := e.Curve()

	a, err := e.decodeScalar(aBytes)
	if err != nil {
		return nil, err
	}
	A := c.MulBaseBlind(a)
	ABytes := c.EncodePoint(A)

	r, err := e.hashInt(ph, ctx, nonce, msg)
	if err != nil {
		return nil, err
	}
	R := c.MulBaseBlind(r)
	RBytes := c.EncodePoint(R)

	h, err := e.hashInt(ph, ctx, RBytes, ABytes, msg)
	if err != nil {
		return nil, err
	}

	// Scalar blinding: draw b uniformly, invert via the curve's
	// Fermat-exponentiation Invert (never EGCD), and perform every
	// intermediate multiplication on blinded operands. Only the final
	// multiplication by b^-1 undoes the blinding.
	b, err := c.RandomScalar()
	if err != nil {
		return nil, err
	}
	bInv := b.Invert()

	rb := r.Multiply(b)
	hb := h.Multiply(b)
	hba := hb.Multiply(a)
	sum := rb.Add(hba)
	s := sum.Multiply(bInv)

	sig := append([]byte{}, RBytes...)
	sig = append(sig, c.EncodeScalar(s)...)
	return sig, nil
}

// Sign expands secret to (scalar, nonce) and signs msg.
func (e *Engine) Sign(msg, secret []byte, ph *bool, ctx []byte) ([]byte, error) {
	a, nonce, err := e.SplitHash(secret)
	if err != nil {
		return nil, err
	}
	return e.SignWithScalar(msg, a, nonce, ph, ctx)
}

// SignTweakAdd signs with a scalar tweaked by addition: a new scalar is
// derived via scalarTweakAdd and a new nonce via the hash's three-input
// multi convenience over (original nonce, tweak, nil).
func (e *Engine) SignTweakAdd(msg, secret, tweak []byte, ph *bool, ctx []byte) ([]byte, error) {
	return e.signTweaked(msg, secret, tweak, ph, ctx, e.ScalarTweakAdd)
}

// SignTweakMul signs with a scalar tweaked by multiplication.
func (e *Engine) SignTweakMul(msg, secret, tweak []byte, ph *bool, ctx []byte) ([]byte, error) {
	return e.signTweaked(msg, secret, tweak, ph, ctx, e.ScalarTweakMul)
}

func (e *Engine) signTweaked(
	msg, secret, tweak []byte,
	ph *bool, ctx []byte,
	tweakFn func(a, t []byte) ([]byte, error),
) ([]byte, error) {
	a, nonce, err := e.SplitHash(secret)
	if err != nil {
		return nil, err
	}
	tweakedScalar, err := tweakFn(a, tweak)
	if err != nil {
		return nil, err
	}
	derivedNonce := e.tweakedNonce(nonce, tweak)
	return e.SignWithScalar(msg, tweakedScalar, derivedNonce, ph, ctx)
}

// tweakedNonce derives a new nonce as the first size bytes of
// hash.multi(nonce, tweak, nil, 2*size).
func (e *Engine) tweakedNonce(nonce, tweak []byte) []byte {
	out := digest.Multi(e.hash, nonce, tweak, nil, 2*e.Size())
	return out[:e.Size()]
}
