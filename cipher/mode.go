package cipher

// trait is the small hook set a concrete mode plugs into StreamingMode: how
// to consume the IV at Init, how to turn one input block into one output
// block, and what finalize does beyond the shared padding/partial-block
// logic (most modes need nothing extra here).
type trait interface {
	// initIV validates and consumes the IV. ECB requires it empty; every
	// other mode requires exactly one block.
	initIV(iv []byte) error
	// processBlock transforms one full block of input into output,
	// updating any mode-specific feedback state.
	processBlock(in, out []byte)
	// padding reports whether this mode pads (true for ECB/CBC).
	padding() bool
}

// StreamingMode is the shared update/finalize algorithm every block-cipher
// mode plugs into, parameterized by a trait and driving a single Block
// primitive. It holds the one mutable piece of state every mode needs: a
// block-sized buffer and a position into it. bpos == -1 means
// uninitialized or finalized.
type StreamingMode struct {
	block   Block
	t       trait
	encrypt bool

	buf  []byte
	bpos int

	// held is the previously-produced plaintext block of a padding mode's
	// decrypt (the only case that sets it), returned only once
	// the next Update or Final call proves it wasn't the final block,
	// so that Final can validate PKCS#7 padding on decrypt before
	// releasing it to the caller.
	held    []byte
	hasHeld bool
}

func newStreamingMode(block Block, t trait, encrypt bool) *StreamingMode {
	bs := block.BlockSize()
	return &StreamingMode{
		block:   block,
		t:       t,
		encrypt: encrypt,
		buf:     make([]byte, bs),
		bpos:    0,
	}
}

func (m *StreamingMode) init(iv []byte) error {
	if err := m.t.initIV(iv); err != nil {
		return err
	}
	return nil
}

// Update consumes input and returns as much output as can be produced
// without looking ahead past what Final needs. For padding modes on
// decrypt, the most recently completed block is held back until Final,
// since it might carry the padding that only Final validates.
func (m *StreamingMode) Update(input []byte) ([]byte, error) {
	if m.bpos == -1 {
		return nil, ErrNotInitialized
	}

	bs := len(m.buf)
	var out []byte
	i := 0

	for i < len(input) {
		n := bs - m.bpos
		if n > len(input)-i {
			n = len(input) - i
		}
		copy(m.buf[m.bpos:m.bpos+n], input[i:i+n])
		m.bpos += n
		i += n

		if m.bpos == bs {
			block := make([]byte, bs)
			m.t.processBlock(m.buf, block)

			if m.t.padding() && !m.encrypt {
				if m.hasHeld {
					out = append(out, m.held...)
				}
				m.held = block
				m.hasHeld = true
			} else {
				out = append(out, block...)
			}
			m.bpos = 0
		}
	}

	return out, nil
}

// Final pads-and-encrypts the trailing partial block, validates-and-strips
// PKCS#7 on decrypt, or XORs the trailing bpos bytes against keystream for
// the stream-like modes. It always destroys the underlying block context
// and zeros the buffer before returning, even on error.
func (m *StreamingMode) Final() ([]byte, error) {
	if m.bpos == -1 {
		return nil, ErrNotInitialized
	}
	defer m.destroy()

	bs := len(m.buf)

	if m.t.padding() {
		if m.encrypt {
			left := bs - m.bpos
			for j := m.bpos; j < bs; j++ {
				m.buf[j] = byte(left)
			}
			out := make([]byte, bs)
			m.t.processBlock(m.buf, out)
			return out, nil
		}

		if !m.hasHeld || m.bpos != 0 {
			return nil, ErrBadDecrypt
		}
		block := m.held
		p := int(block[bs-1])
		if p < 1 || p > bs {
			return nil, ErrBadDecrypt
		}
		for j := bs - p; j < bs; j++ {
			if int(block[j]) != p {
				return nil, ErrBadDecrypt
			}
		}
		return append([]byte{}, block[:bs-p]...), nil
	}

	if m.bpos == 0 {
		return []byte{}, nil
	}
	keystream := make([]byte, bs)
	m.t.processBlock(m.buf, keystream)
	return append([]byte{}, keystream[:m.bpos]...), nil
}

func (m *StreamingMode) destroy() {
	m.block.Destroy()
	for i := range m.buf {
		m.buf[i] = 0
	}
	m.held = nil
	m.hasHeld = false
	m.bpos = -1
}
