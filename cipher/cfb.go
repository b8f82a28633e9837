package cipher

// cfbTrait keeps a feedback block: state := E(prev); output := input XOR
// state. On encrypt prev becomes the output; on decrypt prev becomes the
// input, always a defensive copy so a caller reusing their input/output
// buffers can't alias this state.
type cfbTrait struct {
	block   Block
	encrypt bool
	prev    []byte
}

func (t *cfbTrait) initIV(iv []byte) error {
	if len(iv) != t.block.BlockSize() {
		return ErrInvalidIVLength
	}
	t.prev = append([]byte{}, iv...)
	return nil
}

func (t *cfbTrait) processBlock(in, out []byte) {
	bs := t.block.BlockSize()
	state := make([]byte, bs)
	t.block.Encrypt(state, t.prev)
	for i := 0; i < bs; i++ {
		out[i] = in[i] ^ state[i]
	}
	if t.encrypt {
		t.prev = append([]byte{}, out...)
	} else {
		t.prev = append([]byte{}, in...)
	}
}

func (t *cfbTrait) padding() bool { return false }

// NewCFB constructs a CFB streaming mode; the IV length must equal the
// block size.
func NewCFB(block Block, iv []byte, encrypt bool) (*StreamingMode, error) {
	t := &cfbTrait{block: block, encrypt: encrypt}
	m := newStreamingMode(block, t, encrypt)
	if err := m.init(iv); err != nil {
		return nil, err
	}
	return m, nil
}
