package eddsa

import (
	"testing"

	"threshold.network/cryptocore/internal/testutils"
)

// reduceModN returns the canonical mod-n encoding of a, the same reduction
// decodeScalar performs, to serve as the "a mod n" reference value
// property 4 compares against.
func reduceModN(e *Engine, a []byte) []byte {
	i := e.Curve().DecodeInt(a)
	return e.Curve().EncodeScalar(e.Curve().ScalarFromInt(i))
}

func TestScalarTweakMulHomomorphism(t *testing.T) {
	e := NewEd25519()
	secret, err := e.PrivateKeyGenerate()
	if err != nil {
		t.Fatalf("PrivateKeyGenerate: %v", err)
	}
	a, err := e.PrivateKeyConvert(secret)
	if err != nil {
		t.Fatalf("PrivateKeyConvert: %v", err)
	}
	pub, err := e.PublicKeyFromScalar(a)
	if err != nil {
		t.Fatalf("PublicKeyFromScalar: %v", err)
	}

	tweak := make([]byte, e.Size())
	tweak[0] = 9
	tweak[1] = 3

	tweakedScalar, err := e.ScalarTweakMul(a, tweak)
	if err != nil {
		t.Fatalf("ScalarTweakMul: %v", err)
	}
	viaScalar, err := e.PublicKeyFromScalar(tweakedScalar)
	if err != nil {
		t.Fatalf("PublicKeyFromScalar(tweaked): %v", err)
	}
	viaKey, err := e.PublicKeyTweakMul(pub, tweak)
	if err != nil {
		t.Fatalf("PublicKeyTweakMul: %v", err)
	}

	testutils.AssertBytesEqual(t, viaScalar, viaKey)
}

func TestScalarNegateInvolution(t *testing.T) {
	e := NewEd25519()
	secret, err := e.PrivateKeyGenerate()
	if err != nil {
		t.Fatalf("PrivateKeyGenerate: %v", err)
	}
	a, err := e.PrivateKeyConvert(secret)
	if err != nil {
		t.Fatalf("PrivateKeyConvert: %v", err)
	}

	negated, err := e.ScalarNegate(a)
	if err != nil {
		t.Fatalf("ScalarNegate: %v", err)
	}
	doubleNegated, err := e.ScalarNegate(negated)
	if err != nil {
		t.Fatalf("ScalarNegate(negated): %v", err)
	}

	testutils.AssertBytesEqual(t, reduceModN(e, a), doubleNegated)
}

func TestScalarInverseInvolution(t *testing.T) {
	e := NewEd25519()
	secret, err := e.PrivateKeyGenerate()
	if err != nil {
		t.Fatalf("PrivateKeyGenerate: %v", err)
	}
	a, err := e.PrivateKeyConvert(secret)
	if err != nil {
		t.Fatalf("PrivateKeyConvert: %v", err)
	}

	inv, err := e.ScalarInverse(a)
	if err != nil {
		t.Fatalf("ScalarInverse: %v", err)
	}
	doubleInv, err := e.ScalarInverse(inv)
	if err != nil {
		t.Fatalf("ScalarInverse(inverse): %v", err)
	}

	testutils.AssertBytesEqual(t, reduceModN(e, a), doubleInv)
}

func TestScalarInverseRejectsZero(t *testing.T) {
	e := NewEd25519()
	zero := make([]byte, e.ScalarLength())
	if _, err := e.ScalarInverse(zero); err == nil {
		t.Fatalf("expected error inverting the zero scalar")
	}
}

func TestPublicKeyConvertDeconvertRoundTrip(t *testing.T) {
	e := NewEd25519()
	secret, err := e.PrivateKeyGenerate()
	if err != nil {
		t.Fatalf("PrivateKeyGenerate: %v", err)
	}
	pub, err := e.PublicKeyCreate(secret)
	if err != nil {
		t.Fatalf("PublicKeyCreate: %v", err)
	}

	sign := pub[e.Size()-1]&0x80 != 0

	xCoord, err := e.PublicKeyConvert(pub)
	if err != nil {
		t.Fatalf("PublicKeyConvert: %v", err)
	}
	back, err := e.PublicKeyDeconvert(xCoord, sign)
	if err != nil {
		t.Fatalf("PublicKeyDeconvert: %v", err)
	}

	testutils.AssertBytesEqual(t, pub, back)
}
