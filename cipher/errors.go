package cipher

import "errors"

var (
	// ErrNotInitialized is returned when Update/Final is called before Init
	// or after Final (bpos == -1).
	ErrNotInitialized = errors.New("cipher: not initialized")
	// ErrInvalidIVLength is returned when an IV's length doesn't match what
	// the mode requires (0 for ECB, blockSize for everything else).
	ErrInvalidIVLength = errors.New("cipher: invalid IV length")
	// ErrBadDecrypt covers every PKCS#7-unpadding failure: missing held-back
	// block, padding length out of [1, bs], or non-uniform pad bytes.
	ErrBadDecrypt = errors.New("cipher: bad decrypt")
	// ErrUnknownMode is returned by Get for an unrecognized mode name.
	ErrUnknownMode = errors.New("cipher: unknown mode")
)
