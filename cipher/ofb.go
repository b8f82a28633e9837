package cipher

// ofbTrait rolls a keystream block forward independent of the
// ciphertext/plaintext: state := E(state); output := input XOR state.
// Encrypt and decrypt are the same operation.
type ofbTrait struct {
	block Block
	state []byte
}

func (t *ofbTrait) initIV(iv []byte) error {
	if len(iv) != t.block.BlockSize() {
		return ErrInvalidIVLength
	}
	t.state = append([]byte{}, iv...)
	return nil
}

func (t *ofbTrait) processBlock(in, out []byte) {
	bs := t.block.BlockSize()
	next := make([]byte, bs)
	t.block.Encrypt(next, t.state)
	t.state = next
	for i := 0; i < bs; i++ {
		out[i] = in[i] ^ t.state[i]
	}
}

func (t *ofbTrait) padding() bool { return false }

// NewOFB constructs an OFB streaming mode; the IV length must equal the
// block size. encrypt has no effect on the transform but is kept for API
// symmetry.
func NewOFB(block Block, iv []byte, encrypt bool) (*StreamingMode, error) {
	t := &ofbTrait{block: block}
	m := newStreamingMode(block, t, encrypt)
	if err := m.init(iv); err != nil {
		return nil, err
	}
	return m, nil
}
