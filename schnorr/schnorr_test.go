package schnorr

import (
	"encoding/hex"
	"math/big"
	"testing"

	"threshold.network/cryptocore/internal/testutils"
)

func hexBytes(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	if err != nil {
		t.Fatalf("bad hex fixture: %v", err)
	}
	return b
}

func pubKeyFor(t *testing.T, e *Engine, secKey []byte) []byte {
	t.Helper()
	a := new(big.Int).SetBytes(secKey)
	ax, _, err := e.Curve().MulBaseBlind(a)
	if err != nil {
		t.Fatalf("pubkey derive: %v", err)
	}
	buf := make([]byte, e.Size())
	ax.FillBytes(buf)
	return buf
}

func TestSignVerifyRoundTrip(t *testing.T) {
	e := NewBIP340()

	secKey := hexBytes(t, "0000000000000000000000000000000000000000000000000000000000000003")
	msg := hexBytes(t, "0000000000000000000000000000000000000000000000000000000000000000")

	sig, err := e.Sign(msg, secKey)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	if len(sig) != 64 {
		t.Fatalf("signature length = %d, want 64", len(sig))
	}

	pubKey := pubKeyFor(t, e, secKey)
	if !e.Verify(msg, sig, pubKey) {
		t.Fatalf("self-produced signature failed to verify")
	}
}

func TestVerifyRejectsTamperedSignature(t *testing.T) {
	e := NewBIP340()
	secKey := hexBytes(t, "B7E151628AED2A6ABF7158809CF4F3C762E7160F38B4DA56A784D9045190CFEF")
	msg := hexBytes(t, "243F6A8885A308D313198A2E03707344A4093822299F31D0082EFA98EC4E6C89")

	sig, err := e.Sign(msg, secKey)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	pubKey := pubKeyFor(t, e, secKey)

	if !e.Verify(msg, sig, pubKey) {
		t.Fatalf("valid signature rejected")
	}

	tampered := append([]byte{}, sig...)
	tampered[63] ^= 0x01
	if e.Verify(msg, tampered, pubKey) {
		t.Fatalf("tampered signature accepted")
	}

	wrongMsg := append([]byte{}, msg...)
	wrongMsg[0] ^= 0x01
	if e.Verify(wrongMsg, sig, pubKey) {
		t.Fatalf("signature verified against wrong message")
	}
}

func TestVerifyRejectsMalformedLengths(t *testing.T) {
	e := NewBIP340()
	if e.Verify([]byte("msg"), make([]byte, 10), make([]byte, 32)) {
		t.Fatalf("short signature accepted")
	}
	if e.Verify([]byte("msg"), make([]byte, 64), make([]byte, 10)) {
		t.Fatalf("short key accepted")
	}
}

func TestBatchVerifyEmpty(t *testing.T) {
	e := NewBIP340()
	if !e.BatchVerify(nil) {
		t.Fatalf("empty batch must hold trivially")
	}
}

func TestBatchVerifyMixedValidInvalid(t *testing.T) {
	e := NewBIP340()

	keys := [][]byte{
		hexBytes(t, "B7E151628AED2A6ABF7158809CF4F3C762E7160F38B4DA56A784D9045190CFEF"),
		hexBytes(t, "C90FDAA22168C234C4C6628B80DC1CD129024E088A67CC74020BBEA63B14E5C9"),
	}
	msgs := [][]byte{
		hexBytes(t, "243F6A8885A308D313198A2E03707344A4093822299F31D0082EFA98EC4E6C89"),
		hexBytes(t, "7E2D58D8B3BCDF1ABADEC7829054F90DDA9805AAB56C77333024B9D0A508B75C"),
	}

	var entries []BatchEntry
	for i, k := range keys {
		sig, err := e.Sign(msgs[i], k)
		if err != nil {
			t.Fatalf("sign %d: %v", i, err)
		}
		entries = append(entries, BatchEntry{Msg: msgs[i], Sig: sig, Key: pubKeyFor(t, e, k)})
	}

	if !e.BatchVerify(entries) {
		t.Fatalf("valid batch rejected")
	}

	entries[1].Sig = append([]byte{}, entries[1].Sig...)
	entries[1].Sig[63] ^= 0x01
	if e.BatchVerify(entries) {
		t.Fatalf("batch with a tampered entry accepted")
	}
}

func TestLiftXRejectsOutOfRangeX(t *testing.T) {
	e := NewBIP340()
	huge := e.Curve().Field()
	if _, err := e.liftX(huge); err == nil {
		t.Fatalf("liftX accepted an out-of-range x-coordinate")
	}
}

func TestAssertHelpersSmoke(t *testing.T) {
	testutils.AssertBoolsEqual(t, "smoke", true, true)
}
