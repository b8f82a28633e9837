// Package eddsa implements the Edwards-curve signature engine: key
// derivation, signing with scalar blinding, verification with cofactor
// clearing, batch verification, scalar/public-key tweaks, and Edwards<->
// Montgomery key conversion and agreement.
//
// The heavy lifting (field and group arithmetic) is delegated to the
// curve and digest facades; this package wires them together the way
// RFC 8032 specifies.
package eddsa

import (
	"threshold.network/cryptocore/curve"
	"threshold.network/cryptocore/digest"
)

// Engine is parameterized by an Edwards curve, its Montgomery sibling (for
// X25519/X448-style key agreement and point conversion), and an injected
// hash. Construction follows a lazy two-phase pattern: the curve and its
// precomputation are built on first use and are thereafter immutable and
// safe to share read-only across goroutines.
type Engine struct {
	curveFn func() curve.Edwards
	xidFn   func() curve.Montgomery
	hash    digest.Hash

	c   curve.Edwards
	xid curve.Montgomery
}

// New constructs an engine from explicit curve/Montgomery factories and a
// hash. Most callers want NewEd25519 instead.
func New(curveFn func() curve.Edwards, xidFn func() curve.Montgomery, hash digest.Hash) *Engine {
	return &Engine{curveFn: curveFn, xidFn: xidFn, hash: hash}
}

// NewEd25519 returns an engine wired to Ed25519, X25519, and SHA-512,
// exactly the combination RFC 8032's Ed25519 test vectors exercise.
func NewEd25519() *Engine {
	return New(
		func() curve.Edwards { return curve.NewEd25519() },
		func() curve.Montgomery { return curve.NewX25519() },
		&digest.SHA512{},
	)
}

// Curve triggers (on first call) and returns the precomputed Edwards curve.
func (e *Engine) Curve() curve.Edwards {
	if e.c == nil {
		e.c = e.curveFn()
	}
	return e.c
}

// Montgomery triggers (on first call) and returns the precomputed
// Montgomery sibling curve.
func (e *Engine) Montgomery() curve.Montgomery {
	if e.xid == nil {
		e.xid = e.xidFn()
	}
	return e.xid
}

// Size is the field/point byte length.
func (e *Engine) Size() int { return e.Curve().Size() }

// Bits is the field size in bits.
func (e *Engine) Bits() int { return e.Curve().Bits() }

// ScalarLength is the encoded clamped-scalar length in bytes.
func (e *Engine) ScalarLength() int { return e.Curve().ScalarLength() }

// Cofactor is the raw curve cofactor.
func (e *Engine) Cofactor() int { return e.Curve().Cofactor() }

func (e *Engine) newHash() digest.Hash {
	h := e.hash.New()
	h.Init()
	return h
}
