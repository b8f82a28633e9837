package digest

import "golang.org/x/crypto/blake2b"

// Blake2b512 is an alternate injectable hash for the eddsa engine,
// satisfying the Hash facade. golang.org/x/crypto ships Blake2b, so that is
// the concrete alternate hash wired in here.
type Blake2b512 struct {
	buf []byte
}

func (b *Blake2b512) Init()           { b.buf = b.buf[:0] }
func (b *Blake2b512) Update(p []byte) { b.buf = append(b.buf, p...) }
func (b *Blake2b512) Size() int       { return 64 }
func (b *Blake2b512) New() Hash       { return &Blake2b512{} }

func (b *Blake2b512) Final(outLen int) []byte {
	if outLen == 0 {
		outLen = 64
	}
	sum := blake2b.Sum512(b.buf)
	if outLen <= 64 {
		return sum[:outLen]
	}
	return expand(blake2b.Sum512, b.buf, outLen)
}
