package cipher

// ecbTrait requires an empty IV and encrypts/decrypts each block
// independently with no chaining state.
type ecbTrait struct {
	block   Block
	encrypt bool
}

func (t *ecbTrait) initIV(iv []byte) error {
	if len(iv) != 0 {
		return ErrInvalidIVLength
	}
	return nil
}

func (t *ecbTrait) processBlock(in, out []byte) {
	if t.encrypt {
		t.block.Encrypt(out, in)
	} else {
		t.block.Decrypt(out, in)
	}
}

func (t *ecbTrait) padding() bool { return true }

// NewECB constructs an ECB streaming mode. ECB asserts a zero-length IV.
func NewECB(block Block, iv []byte, encrypt bool) (*StreamingMode, error) {
	t := &ecbTrait{block: block, encrypt: encrypt}
	m := newStreamingMode(block, t, encrypt)
	if err := m.init(iv); err != nil {
		return nil, err
	}
	return m, nil
}
