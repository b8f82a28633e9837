package cipher

import (
	"encoding/hex"
	"testing"

	"threshold.network/cryptocore/internal/testutils"
)

func hx(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	if err != nil {
		t.Fatalf("bad hex fixture: %v", err)
	}
	return b
}

// NIST SP 800-38A F.2.1, extended with mandatory PKCS#7 padding since the
// vector's plaintext is exactly one block.
func TestCBCKnownAnswer(t *testing.T) {
	key := hx(t, "2b7e151628aed2a6abf7158809cf4f3c")
	iv := hx(t, "000102030405060708090a0b0c0d0e0f")
	pt := hx(t, "6bc1bee22e409f96e93d7e117393172a")
	wantCT := hx(t, "7649abac8119b246cee98e9b12e9197d8964e0b149c10b7b682e6e39aaeb731c")

	block, err := NewAES(key)
	if err != nil {
		t.Fatalf("NewAES: %v", err)
	}
	enc, err := NewCBC(block, iv, true)
	if err != nil {
		t.Fatalf("NewCBC encrypt: %v", err)
	}
	out, err := enc.Update(pt)
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	tail, err := enc.Final()
	if err != nil {
		t.Fatalf("Final: %v", err)
	}
	ct := append(out, tail...)
	testutils.AssertBytesEqual(t, wantCT, ct)

	block2, err := NewAES(key)
	if err != nil {
		t.Fatalf("NewAES: %v", err)
	}
	dec, err := NewCBC(block2, iv, false)
	if err != nil {
		t.Fatalf("NewCBC decrypt: %v", err)
	}
	dout, err := dec.Update(ct)
	if err != nil {
		t.Fatalf("Update decrypt: %v", err)
	}
	dtail, err := dec.Final()
	if err != nil {
		t.Fatalf("Final decrypt: %v", err)
	}
	got := append(dout, dtail...)
	testutils.AssertBytesEqual(t, pt, got)
}

func TestCTRPartialFinalBlock(t *testing.T) {
	key := hx(t, "2b7e151628aed2a6abf7158809cf4f3c")
	iv := hx(t, "f0f1f2f3f4f5f6f7f8f9fafbfcfdfeff")
	pt := make([]byte, 17)
	for i := range pt {
		pt[i] = byte(i)
	}

	block, err := NewAES(key)
	if err != nil {
		t.Fatalf("NewAES: %v", err)
	}
	enc, err := NewCTR(block, iv, true)
	if err != nil {
		t.Fatalf("NewCTR: %v", err)
	}
	out, err := enc.Update(pt)
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	tail, err := enc.Final()
	if err != nil {
		t.Fatalf("Final: %v", err)
	}
	ct := append(out, tail...)
	testutils.AssertIntsEqual(t, "ciphertext length", 17, len(ct))

	block2, err := NewAES(key)
	if err != nil {
		t.Fatalf("NewAES: %v", err)
	}
	dec, err := NewCTR(block2, iv, false)
	if err != nil {
		t.Fatalf("NewCTR decrypt: %v", err)
	}
	dout, err := dec.Update(ct)
	if err != nil {
		t.Fatalf("Update decrypt: %v", err)
	}
	dtail, err := dec.Final()
	if err != nil {
		t.Fatalf("Final decrypt: %v", err)
	}
	got := append(dout, dtail...)
	testutils.AssertBytesEqual(t, pt, got)
}

func TestECBUninitializedAfterFinal(t *testing.T) {
	key := hx(t, "2b7e151628aed2a6abf7158809cf4f3c")
	block, err := NewAES(key)
	if err != nil {
		t.Fatalf("NewAES: %v", err)
	}
	m, err := NewECB(block, nil, true)
	if err != nil {
		t.Fatalf("NewECB: %v", err)
	}
	if _, err := m.Update(make([]byte, 16)); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if _, err := m.Final(); err != nil {
		t.Fatalf("Final: %v", err)
	}
	if _, err := m.Update(make([]byte, 16)); err != ErrNotInitialized {
		t.Fatalf("Update after Final: got %v, want ErrNotInitialized", err)
	}
}

func TestECBRejectsNonEmptyIV(t *testing.T) {
	key := hx(t, "2b7e151628aed2a6abf7158809cf4f3c")
	block, err := NewAES(key)
	if err != nil {
		t.Fatalf("NewAES: %v", err)
	}
	if _, err := NewECB(block, make([]byte, 16), true); err != ErrInvalidIVLength {
		t.Fatalf("NewECB with non-empty IV: got %v, want ErrInvalidIVLength", err)
	}
}

func TestCFBOFBRoundTrip(t *testing.T) {
	key := hx(t, "2b7e151628aed2a6abf7158809cf4f3c")
	iv := hx(t, "000102030405060708090a0b0c0d0e0f")
	pt := []byte("the quick brown fox jumps over the lazy dog, twice")

	for _, ctor := range []func(Block, []byte, bool) (*StreamingMode, error){NewCFB, NewOFB} {
		block, err := NewAES(key)
		if err != nil {
			t.Fatalf("NewAES: %v", err)
		}
		enc, err := ctor(block, iv, true)
		if err != nil {
			t.Fatalf("construct encrypt: %v", err)
		}
		out, err := enc.Update(pt)
		if err != nil {
			t.Fatalf("Update: %v", err)
		}
		tail, err := enc.Final()
		if err != nil {
			t.Fatalf("Final: %v", err)
		}
		ct := append(out, tail...)
		testutils.AssertIntsEqual(t, "ciphertext length", len(pt), len(ct))

		block2, err := NewAES(key)
		if err != nil {
			t.Fatalf("NewAES: %v", err)
		}
		dec, err := ctor(block2, iv, false)
		if err != nil {
			t.Fatalf("construct decrypt: %v", err)
		}
		dout, err := dec.Update(ct)
		if err != nil {
			t.Fatalf("Update decrypt: %v", err)
		}
		dtail, err := dec.Final()
		if err != nil {
			t.Fatalf("Final decrypt: %v", err)
		}
		got := append(dout, dtail...)
		testutils.AssertBytesEqual(t, pt, got)
	}
}

func TestCBCRejectsBadPadding(t *testing.T) {
	key := hx(t, "2b7e151628aed2a6abf7158809cf4f3c")
	iv := hx(t, "000102030405060708090a0b0c0d0e0f")

	block, err := NewAES(key)
	if err != nil {
		t.Fatalf("NewAES: %v", err)
	}
	enc, err := NewCBC(block, iv, true)
	if err != nil {
		t.Fatalf("NewCBC: %v", err)
	}
	out, err := enc.Update([]byte("0123456789abcdef"))
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	tail, err := enc.Final()
	if err != nil {
		t.Fatalf("Final: %v", err)
	}
	ct := append(out, tail...)
	ct[len(ct)-1] ^= 0xff

	block2, err := NewAES(key)
	if err != nil {
		t.Fatalf("NewAES: %v", err)
	}
	dec, err := NewCBC(block2, iv, false)
	if err != nil {
		t.Fatalf("NewCBC decrypt: %v", err)
	}
	if _, err := dec.Update(ct); err != nil {
		t.Fatalf("Update decrypt: %v", err)
	}
	if _, err := dec.Final(); err != ErrBadDecrypt {
		t.Fatalf("Final with tampered padding: got %v, want ErrBadDecrypt", err)
	}
}

func TestGetDispatchUnknownMode(t *testing.T) {
	key := hx(t, "2b7e151628aed2a6abf7158809cf4f3c")
	block, err := NewAES(key)
	if err != nil {
		t.Fatalf("NewAES: %v", err)
	}
	if _, err := Get("gcm", block, nil, true); err != ErrUnknownMode {
		t.Fatalf("Get(\"gcm\"): got %v, want ErrUnknownMode", err)
	}
	if _, err := Get("CBC", block, make([]byte, 16), true); err != nil {
		t.Fatalf("Get(\"CBC\") case-insensitive: %v", err)
	}
}
