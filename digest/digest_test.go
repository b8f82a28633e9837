package digest

import (
	"crypto/sha256"
	"crypto/sha512"
	"testing"

	"golang.org/x/crypto/blake2b"
	"threshold.network/cryptocore/internal/testutils"
)

func TestSHA512FinalMatchesStdlibNativeSize(t *testing.T) {
	h := (&SHA512{}).New()
	h.Init()
	h.Update([]byte("the quick brown fox"))
	got := h.Final(0)

	want := sha512.Sum512([]byte("the quick brown fox"))
	testutils.AssertBytesEqual(t, want[:], got)
}

func TestSHA512FinalExpandsPastNativeSize(t *testing.T) {
	h := (&SHA512{}).New()
	h.Init()
	h.Update([]byte("expand me"))
	out := h.Final(96)

	if len(out) != 96 {
		t.Fatalf("expected 96 bytes, got %d", len(out))
	}
	want := sha512.Sum512([]byte("expand me"))
	testutils.AssertBytesEqual(t, want[:], out[:64])
}

func TestBlake2b512RoundTrip(t *testing.T) {
	b := (&Blake2b512{}).New()
	b.Init()
	b.Update([]byte("hello"))
	got := b.Final(0)

	want := blake2b.Sum512([]byte("hello"))
	testutils.AssertBytesEqual(t, want[:], got)
}

func TestDigestHashesConcatenationOfInputs(t *testing.T) {
	h := &SHA512{}
	combined := Digest(h, 0, []byte("foo"), []byte("bar"))

	single := &SHA512{}
	single.Init()
	single.Update([]byte("foobar"))
	want := single.Final(0)

	testutils.AssertBytesEqual(t, want, combined)
}

func TestMultiOmitsNilThirdInput(t *testing.T) {
	h := &SHA512{}
	got := Multi(h, []byte("nonce"), []byte("tweak"), nil, 32)

	single := &SHA512{}
	single.Init()
	single.Update([]byte("nonce"))
	single.Update([]byte("tweak"))
	want := single.Final(32)

	testutils.AssertBytesEqual(t, want, got)
}

// TestTaggedHashMatchesDoubleSHA256Construction checks the BIP-340 tagged
// hash construction directly: SHA256(SHA256(tag) || SHA256(tag) || msg).
func TestTaggedHashMatchesDoubleSHA256Construction(t *testing.T) {
	tag := "BIP0340/challenge"
	msg := []byte("hello schnorr")

	got := TaggedHash(tag, msg)

	tagHash := sha256.Sum256([]byte(tag))
	h := sha256.New()
	h.Write(tagHash[:])
	h.Write(tagHash[:])
	h.Write(msg)
	want := h.Sum(nil)

	testutils.AssertBytesEqual(t, want, got[:])
}

func TestTaggedHashDiffersByTag(t *testing.T) {
	msg := []byte("same message")
	a := TaggedHash("BIP0340/nonce", msg)
	b := TaggedHash("BIP0340/aux", msg)
	if a == b {
		t.Fatalf("different tags produced the same tagged hash")
	}
}
