package eddsa

import (
	"crypto/rand"
	"io"

	"threshold.network/cryptocore/curve"
	"threshold.network/cryptocore/digest"
)

// PrivateKeyGenerate draws a fresh random seed of Size bytes from the
// CSPRNG.
func (e *Engine) PrivateKeyGenerate() ([]byte, error) {
	seed := make([]byte, e.Size())
	if _, err := io.ReadFull(rand.Reader, seed); err != nil {
		return nil, err
	}
	return seed, nil
}

// ScalarGenerate draws a fresh random clamped scalar.
func (e *Engine) ScalarGenerate() ([]byte, error) {
	seed, err := e.PrivateKeyGenerate()
	if err != nil {
		return nil, err
	}
	return e.Curve().Clamp(e.hashLeft(seed)), nil
}

// PrivateKeyVerify reports whether seed has the expected length.
func (e *Engine) PrivateKeyVerify(seed []byte) bool {
	return len(seed) == e.Size()
}

// ScalarVerify reports whether a is a validly clamped scalar.
func (e *Engine) ScalarVerify(a []byte) bool {
	return len(a) == e.ScalarLength() && e.Curve().IsClamped(a)
}

// hashKey expands a seed to 2*size pseudorandom bytes via the configured
// hash.
func (e *Engine) hashKey(secret []byte) []byte {
	return digest.Digest(e.hash, 2*e.Size(), secret)
}

func (e *Engine) hashLeft(secret []byte) []byte {
	return e.hashKey(secret)[:e.Size()]
}

// SplitHash returns (clamped scalar, nonce bytes) derived from expanding
// secret.
func (e *Engine) SplitHash(secret []byte) (scalar, nonce []byte, err error) {
	if !e.PrivateKeyVerify(secret) {
		return nil, nil, ErrInvalidSeedLength
	}
	expanded := e.hashKey(secret)
	size := e.Size()
	return e.Curve().Clamp(expanded[:size]), expanded[size:], nil
}

// PrivateKeyConvert returns the clamped scalar half of the expanded seed.
func (e *Engine) PrivateKeyConvert(secret []byte) ([]byte, error) {
	scalar, _, err := e.SplitHash(secret)
	return scalar, err
}

// PublicKeyFromScalar returns encode([a mod n]*G), blinded.
func (e *Engine) PublicKeyFromScalar(a []byte) ([]byte, error) {
	s, err := e.decodeScalar(a)
	if err != nil {
		return nil, err
	}
	A := e.Curve().MulBaseBlind(s)
	return e.Curve().EncodePoint(A), nil
}

// PublicKeyCreate derives the public key directly from a seed.
func (e *Engine) PublicKeyCreate(secret []byte) ([]byte, error) {
	a, err := e.PrivateKeyConvert(secret)
	if err != nil {
		return nil, err
	}
	return e.PublicKeyFromScalar(a)
}

// PublicKeyVerify reports whether key decodes to a valid curve point.
func (e *Engine) PublicKeyVerify(key []byte) bool {
	if len(key) != e.Size() {
		return false
	}
	_, err := e.Curve().DecodePoint(key)
	return err == nil
}

// decodeScalar parses a fixed-length scalar encoding and reduces it mod n
// without clamping, so it is safe whether a is a freshly-clamped private
// scalar or the canonical (unclamped) output of a prior tweak/negate/inverse
// call. Clamping mutates bit values rather than merely reducing mod n, so a
// clamping decode is only ever correct on input already in clamped form.
func (e *Engine) decodeScalar(a []byte) (curve.Scalar, error) {
	if len(a) != e.ScalarLength() {
		return nil, ErrInvalidScalarLength
	}
	i := e.Curve().DecodeInt(a)
	return e.Curve().ScalarFromInt(i), nil
}

// PublicKeyConvert maps an Edwards public key to its Montgomery u-coordinate
// (Edwards -> Montgomery birational map).
func (e *Engine) PublicKeyConvert(edKey []byte) ([]byte, error) {
	p, err := e.Curve().DecodePoint(edKey)
	if err != nil {
		return nil, ErrInvalidPoint
	}
	return e.Curve().ToMontgomeryU(p), nil
}

// PublicKeyDeconvert maps a Montgomery u-coordinate back to an Edwards
// point, using sign to select the x-sign bit that was lost in the
// birational map.
func (e *Engine) PublicKeyDeconvert(xKey []byte, sign bool) ([]byte, error) {
	p, err := e.Curve().FromMontgomeryU(xKey, sign)
	if err != nil {
		return nil, ErrInvalidPoint
	}
	return e.Curve().EncodePoint(p), nil
}

// PublicKeyTweakAdd returns encode([t]*G + K).
func (e *Engine) PublicKeyTweakAdd(key, tweak []byte) ([]byte, error) {
	K, err := e.Curve().DecodePoint(key)
	if err != nil {
		return nil, ErrInvalidPoint
	}
	t, err := e.reducedScalar(tweak)
	if err != nil {
		return nil, err
	}
	tG := e.Curve().MulBaseBlind(t)
	return e.Curve().EncodePoint(tG.Add(K)), nil
}

// PublicKeyTweakMul returns encode([t]*K).
func (e *Engine) PublicKeyTweakMul(key, tweak []byte) ([]byte, error) {
	K, err := e.Curve().DecodePoint(key)
	if err != nil {
		return nil, ErrInvalidPoint
	}
	t, err := e.reducedScalar(tweak)
	if err != nil {
		return nil, err
	}
	return e.Curve().EncodePoint(e.Curve().MulBlind(K, t)), nil
}

// PublicKeyAdd returns encode(K1 + K2).
func (e *Engine) PublicKeyAdd(k1, k2 []byte) ([]byte, error) {
	K1, err := e.Curve().DecodePoint(k1)
	if err != nil {
		return nil, ErrInvalidPoint
	}
	K2, err := e.Curve().DecodePoint(k2)
	if err != nil {
		return nil, ErrInvalidPoint
	}
	return e.Curve().EncodePoint(K1.Add(K2)), nil
}

// PublicKeyNegate returns encode(-K).
func (e *Engine) PublicKeyNegate(key []byte) ([]byte, error) {
	K, err := e.Curve().DecodePoint(key)
	if err != nil {
		return nil, ErrInvalidPoint
	}
	return e.Curve().EncodePoint(K.Negate()), nil
}

// DeriveWithScalar computes encode([a mod n]*pub) in Edwards form, using
// blinded multiplication.
func (e *Engine) DeriveWithScalar(pub, a []byte) ([]byte, error) {
	P, err := e.Curve().DecodePoint(pub)
	if err != nil {
		return nil, ErrInvalidPoint
	}
	s, err := e.reducedScalar(a)
	if err != nil {
		return nil, err
	}
	return e.Curve().EncodePoint(e.Curve().MulBlind(P, s)), nil
}

// Derive expands secret to a scalar and calls DeriveWithScalar.
func (e *Engine) Derive(pub, secret []byte) ([]byte, error) {
	a, err := e.PrivateKeyConvert(secret)
	if err != nil {
		return nil, err
	}
	return e.DeriveWithScalar(pub, a)
}

// ExchangeWithScalar performs X25519/X448-style Montgomery-ladder key
// agreement; the ladder is already constant-time, so no blinding is
// necessary.
func (e *Engine) ExchangeWithScalar(pub, a []byte) ([]byte, error) {
	return e.Montgomery().Ladder(a, pub)
}

// Exchange expands secret to a scalar and calls ExchangeWithScalar.
func (e *Engine) Exchange(pub, secret []byte) ([]byte, error) {
	a, err := e.PrivateKeyConvert(secret)
	if err != nil {
		return nil, err
	}
	return e.ExchangeWithScalar(pub, a)
}

// reducedScalar decodes an arbitrary-length byte string into a curve scalar
// reduced mod n (tweaks, unlike clamped private scalars, are always reduced
// before use, and never clamped).
func (e *Engine) reducedScalar(b []byte) (curve.Scalar, error) {
	i := e.Curve().DecodeInt(b)
	return e.Curve().ScalarFromInt(i), nil
}
