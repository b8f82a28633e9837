package cipher

// ctrTrait treats the IV as a big-endian counter: encrypt the counter,
// increment it with wraparound, XOR the keystream with the input. Encrypt
// and decrypt are the identical operation.
type ctrTrait struct {
	block   Block
	counter []byte
}

func (t *ctrTrait) initIV(iv []byte) error {
	if len(iv) != t.block.BlockSize() {
		return ErrInvalidIVLength
	}
	t.counter = append([]byte{}, iv...)
	return nil
}

func (t *ctrTrait) processBlock(in, out []byte) {
	bs := t.block.BlockSize()
	keystream := make([]byte, bs)
	t.block.Encrypt(keystream, t.counter)
	for i := 0; i < bs; i++ {
		out[i] = in[i] ^ keystream[i]
	}
	incrementCounter(t.counter)
}

func (t *ctrTrait) padding() bool { return false }

// incrementCounter treats buf as a big-endian integer and adds one, with
// 255->0 byte-wise carry propagation.
func incrementCounter(buf []byte) {
	for i := len(buf) - 1; i >= 0; i-- {
		buf[i]++
		if buf[i] != 0 {
			return
		}
	}
}

// NewCTR constructs a CTR streaming mode; the IV (initial counter value)
// must equal the block size. CTR encrypt and decrypt are the same
// operation, so encrypt has no effect on the transform; it is kept for API
// symmetry with the padding modes.
func NewCTR(block Block, iv []byte, encrypt bool) (*StreamingMode, error) {
	t := &ctrTrait{block: block}
	m := newStreamingMode(block, t, encrypt)
	if err := m.init(iv); err != nil {
		return nil, err
	}
	return m, nil
}
