// Package curve contracts the elliptic-curve point and scalar arithmetic
// that the eddsa and schnorr engines build on. The arithmetic itself lives
// in dedicated, audited libraries (filippo.io/edwards25519 for the Edwards
// group, golang.org/x/crypto/curve25519 for the Montgomery ladder,
// github.com/btcsuite/btcd/btcec/v2 for secp256k1); this package only
// adapts their concrete APIs to the shape the signature engines expect:
// mul, mulBlind, mulAdd, add, neg, dbl, encode/decode, clamp.
package curve

import (
	"encoding/binary"
	"math/big"
)

// ByteOrder selects how a curve's scalars and field elements are encoded.
// Edwards curves (Ed25519, Ed448) are little-endian; Weierstrass curves used
// for BIP-340 (secp256k1) are big-endian.
type ByteOrder int

const (
	LittleEndian ByteOrder = iota
	BigEndian
)

// Order returns the binary.ByteOrder matching b, for callers that need the
// stdlib interface.
func (b ByteOrder) Order() binary.ByteOrder {
	if b == BigEndian {
		return binary.BigEndian
	}
	return binary.LittleEndian
}

// Edwards is the facade component C (the EdDSA engine) consumes. A concrete
// implementation backs exactly one curve (Ed25519 here; a second instance
// such as Ed448 would satisfy the same interface once a Go field/group
// library for it exists).
type Edwards interface {
	// Name identifies the curve, e.g. "Ed25519".
	Name() string

	// Size is the field/point encoding length in bytes.
	Size() int
	// Bits is the field size in bits.
	Bits() int
	// ScalarLength is the encoded clamped-scalar length in bytes.
	ScalarLength() int
	// Cofactor is the raw curve cofactor (8 for Ed25519, 4 for Ed448).
	Cofactor() int
	// CofactorLog is log2(Cofactor), the number of doublings used to clear
	// the cofactor during verification.
	CofactorLog() int
	// Order returns the prime order n of the subgroup generated by the base
	// point.
	Order() *big.Int
	// Endian is the byte order used to encode/decode scalars and integers.
	Endian() ByteOrder

	// AlwaysPrefixed reports whether every hash-to-scalar call for this
	// curve must prepend the domain-separation prefix (true for Ed448),
	// versus only when the caller opts into pre-hash/context mode
	// (Ed25519/Ed25519ph/Ed25519ctx).
	AlwaysPrefixed() bool
	// Prefix is the domain-separation byte string prepended when the
	// hash-to-scalar algorithm activates domain separation.
	Prefix() []byte

	// Identity returns the group identity (point at infinity).
	Identity() Point
	// MulBase computes [s]G.
	MulBase(s Scalar) Point
	// Mul computes [s]P with no blinding; used where neither operand is
	// secret (verification), where blinding buys nothing but overhead.
	Mul(p Point, s Scalar) Point
	// MulBaseBlind computes [s]G using scalar splitting to avoid a single
	// multiplication operating on the raw secret scalar.
	MulBaseBlind(s Scalar) Point
	// MulBlind computes [s]P using scalar splitting.
	MulBlind(p Point, s Scalar) Point
	// MulAddBase computes [s1]G + [s2]P (fused double multiplication).
	MulAddBase(s1 Scalar, p Point, s2 Scalar) Point
	// MulAdd computes [s1]P1 + [s2]P2 (fused double multiplication over two
	// arbitrary points), the "fused mulAdd" batch verification needs.
	MulAdd(s1 Scalar, p1 Point, s2 Scalar, p2 Point) Point

	// NewScalar returns the additive identity of the scalar field.
	NewScalar() Scalar
	// ScalarFromInt builds a canonical (reduced mod n, unclamped) scalar
	// from an arbitrary integer. Used for tweaks and hash-to-scalar
	// results, which are always reduced before use, unlike clamped
	// private scalars.
	ScalarFromInt(i *big.Int) Scalar
	// RandomScalar draws a uniformly random scalar in [1, n) from the CSPRNG.
	RandomScalar() (Scalar, error)
	// DecodeScalar decodes a (possibly non-canonical, e.g. clamped)
	// little-endian scalar of ScalarLength bytes, applying the curve's clamp
	// to the input first; input that is not already clamped changes value.
	DecodeScalar(b []byte) (Scalar, error)
	// EncodeScalar encodes a scalar reduced mod n to ScalarLength bytes.
	EncodeScalar(s Scalar) []byte
	// DecodeInt decodes a Size-length byte string as an unreduced integer.
	DecodeInt(b []byte) *big.Int
	// EncodeInt encodes an integer, reduced mod n, to Size bytes. Curves
	// whose ScalarLength is one byte shorter than Size (Ed448) pad with one
	// high zero byte.
	EncodeInt(i *big.Int) []byte

	// Clamp applies the curve's clamp predicate, producing a valid clamped
	// scalar from arbitrary key-derivation output.
	Clamp(b []byte) []byte
	// IsClamped reports whether b already satisfies the clamp predicate.
	IsClamped(b []byte) bool

	// DecodePoint decodes an encoded point, rejecting invalid encodings.
	DecodePoint(b []byte) (Point, error)
	// EncodePoint encodes a point canonically.
	EncodePoint(p Point) []byte

	// ToMontgomeryU converts an Edwards point to its Montgomery u-coordinate
	// via the birational map (used by publicKeyConvert).
	ToMontgomeryU(p Point) []byte
	// FromMontgomeryU converts a Montgomery u-coordinate back to an Edwards
	// point, using sign to select the recovered point's x-sign
	// (publicKeyDeconvert).
	FromMontgomeryU(u []byte, sign bool) (Point, error)
}

// Montgomery is the facade for X25519/X448-style key agreement, consumed by
// eddsa's exchangeWithScalar.
type Montgomery interface {
	Name() string
	Size() int
	// Ladder computes the fixed-base-or-arbitrary-base X25519/X448 ladder
	// scalar multiplication; constant-time by construction, so it needs no
	// separate blinded variant.
	Ladder(scalar, u []byte) ([]byte, error)
	// BasePoint returns the curve's canonical base-point u-coordinate.
	BasePoint() []byte
}

// Point is an opaque group element. Concrete implementations wrap the
// underlying library's point type.
type Point interface {
	Add(q Point) Point
	Negate() Point
	Double() Point
	Equal(q Point) bool
	IsIdentity() bool
}

// Scalar is an opaque integer mod the curve's group order.
type Scalar interface {
	Bytes() []byte
	IsZero() bool
	Equal(t Scalar) bool
	Add(t Scalar) Scalar
	Subtract(t Scalar) Scalar
	Multiply(t Scalar) Scalar
	Negate() Scalar
	Invert() Scalar
}
