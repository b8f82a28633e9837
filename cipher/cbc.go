package cipher

// cbcTrait chains blocks through the previous ciphertext block: encrypt
// XORs plaintext with prev before the block cipher call; decrypt XORs the
// block-cipher output with prev (the previous ciphertext, held by value so
// a caller reusing their input buffer can't corrupt our state).
type cbcTrait struct {
	block   Block
	encrypt bool
	prev    []byte
}

func (t *cbcTrait) initIV(iv []byte) error {
	if len(iv) != t.block.BlockSize() {
		return ErrInvalidIVLength
	}
	t.prev = append([]byte{}, iv...)
	return nil
}

func (t *cbcTrait) processBlock(in, out []byte) {
	bs := t.block.BlockSize()
	if t.encrypt {
		mixed := make([]byte, bs)
		for i := 0; i < bs; i++ {
			mixed[i] = in[i] ^ t.prev[i]
		}
		t.block.Encrypt(out, mixed)
		t.prev = append([]byte{}, out...)
		return
	}

	t.block.Decrypt(out, in)
	for i := 0; i < bs; i++ {
		out[i] ^= t.prev[i]
	}
	t.prev = append([]byte{}, in...)
}

func (t *cbcTrait) padding() bool { return true }

// NewCBC constructs a CBC streaming mode; the IV length must equal the
// block size.
func NewCBC(block Block, iv []byte, encrypt bool) (*StreamingMode, error) {
	t := &cbcTrait{block: block, encrypt: encrypt}
	m := newStreamingMode(block, t, encrypt)
	if err := m.init(iv); err != nil {
		return nil, err
	}
	return m, nil
}
