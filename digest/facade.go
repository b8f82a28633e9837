// Package digest contracts the hash functions the eddsa and schnorr engines
// inject: a streaming init/update/final interface plus one-shot digest and
// three-input multi convenience functions.
package digest

// Hash is a streaming hash with an optional extendable output length.
// final(outputLen) lets callers request more than the hash's native size,
// as RFC 8032 requires for Ed25519's SHA-512-based hash-to-scalar step
// (2*size output from a 64-byte-digest hash needs no extension, but a
// shorter-output hash such as Blake2s would).
type Hash interface {
	Init()
	Update(p []byte)
	// Final returns the digest. If outLen is 0, the hash's native size is
	// used.
	Final(outLen int) []byte
	// Size is the hash's native digest size in bytes.
	Size() int
	// New returns a fresh, independent instance of the same hash.
	New() Hash
}

// Digest is the one-shot convenience the engines use for hashKey/hashInt:
// hash the concatenation of data and return outLen bytes.
func Digest(h Hash, outLen int, data ...[]byte) []byte {
	n := h.New()
	n.Init()
	for _, d := range data {
		n.Update(d)
	}
	return n.Final(outLen)
}

// Multi hashes up to three byte slices in order, as signTweakAdd/Mul use to
// derive a tweaked nonce from (original nonce, tweak, nil).
func Multi(h Hash, a, b, c []byte, outLen int) []byte {
	n := h.New()
	n.Init()
	n.Update(a)
	n.Update(b)
	if c != nil {
		n.Update(c)
	}
	return n.Final(outLen)
}
