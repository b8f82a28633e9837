package digest

import "crypto/sha256"

// TaggedHash implements the BIP-340 tagged hash construction:
//
//	hash_tag(x) = SHA256(SHA256(tag) || SHA256(tag) || x)
//
// BIP-340 fixes both the algorithm and the hash function (SHA-256), so
// this is carried over unchanged rather than made pluggable.
func TaggedHash(tag string, parts ...[]byte) [32]byte {
	tagHash := sha256.Sum256([]byte(tag))

	h := sha256.New()
	h.Write(tagHash[:])
	h.Write(tagHash[:])
	for _, p := range parts {
		h.Write(p)
	}

	var out [32]byte
	copy(out[:], h.Sum(nil))
	return out
}
