package schnorr

import "errors"

var (
	ErrInvalidKeyLength = errors.New("schnorr: key must be 32 bytes")
	ErrInvalidSigLength = errors.New("schnorr: signature must be 64 bytes")
	ErrZeroScalar       = errors.New("schnorr: scalar must be non-zero")
	ErrScalarOutOfRange = errors.New("schnorr: scalar exceeds curve order")
	ErrNonceIsZero      = errors.New("schnorr: derived nonce k is zero")
)
