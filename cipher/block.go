// Package cipher implements the streaming block-cipher mode framework:
// ECB, CBC, CTR, CFB, and OFB built on a single update/finalize trait,
// composing a mode-specific trait over a shared streaming state machine
// instead of an inheritance hierarchy.
package cipher

import "crypto/aes"

// Block is the low-level block-cipher primitive every mode drives: a fixed
// block size, single-block encrypt/decrypt, and an explicit zeroization
// hook. AES is the concrete instantiation, via crypto/aes.
type Block interface {
	BlockSize() int
	Encrypt(dst, src []byte)
	Decrypt(dst, src []byte)
	// Destroy zeros any key-schedule state held by the implementation.
	Destroy()
}

// aesBlock adapts crypto/aes.Block to the Block facade. crypto/aes doesn't
// expose a destroy hook, so Destroy only drops our reference to let the GC
// reclaim it; the key material itself lives in the stdlib's unexported
// state.
type aesBlock struct {
	inner cipherBlock
}

// cipherBlock mirrors crypto/cipher.Block so this package doesn't need to
// import it just for a type alias.
type cipherBlock interface {
	BlockSize() int
	Encrypt(dst, src []byte)
	Decrypt(dst, src []byte)
}

// NewAES constructs the Block primitive for AES-128/192/256, selected by
// key length exactly as crypto/aes.NewCipher does.
func NewAES(key []byte) (Block, error) {
	b, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	return &aesBlock{inner: b}, nil
}

func (b *aesBlock) BlockSize() int          { return b.inner.BlockSize() }
func (b *aesBlock) Encrypt(dst, src []byte) { b.inner.Encrypt(dst, src) }
func (b *aesBlock) Decrypt(dst, src []byte) { b.inner.Decrypt(dst, src) }
func (b *aesBlock) Destroy()                { b.inner = nil }
