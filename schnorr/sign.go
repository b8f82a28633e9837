package schnorr

import (
	"math/big"

	"threshold.network/cryptocore/digest"
)

func (e *Engine) nonceHash(key, msg []byte) *big.Int {
	h := digest.TaggedHash("BIP0340/nonce", key, msg)
	i := new(big.Int).SetBytes(h[:])
	return i.Mod(i, e.curve.Order())
}

func (e *Engine) challengeHash(rBytes, aBytes, msg []byte) *big.Int {
	h := digest.TaggedHash("BIP0340/challenge", rBytes, aBytes, msg)
	i := new(big.Int).SetBytes(h[:])
	return i.Mod(i, e.curve.Order())
}

// encodeX returns x, left-padded to the field byte length.
func encodeX(x *big.Int, size int) []byte {
	buf := make([]byte, size)
	x.FillBytes(buf)
	return buf
}

// Sign implements the BIP-340 core algorithm: derive a nonce, canonicalize
// its y-parity via the Jacobi symbol, derive the challenge, and produce S
// with the same Fermat-inverse scalar blinding eddsa.SignWithScalar uses.
func (e *Engine) Sign(msg, key []byte) ([]byte, error) {
	c := e.curve
	size := c.Size()

	if len(key) != size {
		return nil, ErrInvalidKeyLength
	}

	k := e.nonceHash(key, msg)
	if k.Sign() == 0 {
		return nil, ErrNonceIsZero
	}

	rx, ry, err := c.MulBaseBlind(k)
	if err != nil {
		return nil, err
	}
	if c.Jacobi(ry) != 1 {
		k.Sub(c.Order(), k)
	}

	a := new(big.Int).SetBytes(key)
	if a.Sign() == 0 || a.Cmp(c.Order()) >= 0 {
		return nil, ErrScalarOutOfRange
	}

	ax, ay, err := c.MulBaseBlind(a)
	if err != nil {
		return nil, err
	}
	if c.Jacobi(ay) != 1 {
		a.Sub(c.Order(), a)
	}
	aBytes := encodeX(ax, size)

	rBytes := encodeX(rx, size)

	eVal := e.challengeHash(rBytes, aBytes, msg)

	s := e.blindedMulAddMod(k, eVal, a)

	sig := append([]byte{}, rBytes...)
	sig = append(sig, encodeX(s, size)...)
	return sig, nil
}

// blindedMulAddMod computes (k + e*a) mod n using the same scalar-blinding
// discipline eddsa.SignWithScalar applies: draw a random b, invert it via
// Fermat exponentiation (b^(n-2) mod n, computed with the curve's own
// modular exponentiation rather than EGCD), and perform every intermediate
// multiplication on blinded operands.
func (e *Engine) blindedMulAddMod(k, eVal, a *big.Int) *big.Int {
	n := e.curve.Order()
	b, bInv := randomBlindFactor(e.curve, n)

	kb := new(big.Int).Mul(k, b)
	eb := new(big.Int).Mul(eVal, b)
	eba := new(big.Int).Mul(eb, a)
	sum := new(big.Int).Add(kb, eba)
	s := new(big.Int).Mul(sum, bInv)
	return s.Mod(s, n)
}
