package cipher

import "strings"

// Get resolves a mode name ("ecb"|"cbc"|"ctr"|"cfb"|"ofb", case-insensitive)
// to a constructed streaming mode bound to block and iv.
func Get(name string, block Block, iv []byte, encrypt bool) (*StreamingMode, error) {
	switch strings.ToLower(name) {
	case "ecb":
		return NewECB(block, iv, encrypt)
	case "cbc":
		return NewCBC(block, iv, encrypt)
	case "ctr":
		return NewCTR(block, iv, encrypt)
	case "cfb":
		return NewCFB(block, iv, encrypt)
	case "ofb":
		return NewOFB(block, iv, encrypt)
	default:
		return nil, ErrUnknownMode
	}
}
