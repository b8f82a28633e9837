package eddsa

// ScalarTweakAdd returns (a + t) mod n, rejecting a zero result.
func (e *Engine) ScalarTweakAdd(a, t []byte) ([]byte, error) {
	as, err := e.decodeScalar(a)
	if err != nil {
		return nil, err
	}
	ts, err := e.reducedScalar(t)
	if err != nil {
		return nil, err
	}
	sum := as.Add(ts)
	if sum.IsZero() {
		return nil, ErrZeroScalar
	}
	return e.Curve().EncodeScalar(sum), nil
}

// ScalarTweakMul returns (a * t) mod n, rejecting a zero result.
func (e *Engine) ScalarTweakMul(a, t []byte) ([]byte, error) {
	as, err := e.decodeScalar(a)
	if err != nil {
		return nil, err
	}
	ts, err := e.reducedScalar(t)
	if err != nil {
		return nil, err
	}
	prod := as.Multiply(ts)
	if prod.IsZero() {
		return nil, ErrZeroScalar
	}
	return e.Curve().EncodeScalar(prod), nil
}

// ScalarNegate returns (n - (a mod n)) mod n.
func (e *Engine) ScalarNegate(a []byte) ([]byte, error) {
	as, err := e.decodeScalar(a)
	if err != nil {
		return nil, err
	}
	return e.Curve().EncodeScalar(as.Negate()), nil
}

// ScalarInverse returns a^-1 mod n, rejecting a zero input.
func (e *Engine) ScalarInverse(a []byte) ([]byte, error) {
	as, err := e.decodeScalar(a)
	if err != nil {
		return nil, err
	}
	if as.IsZero() {
		return nil, ErrZeroScalar
	}
	return e.Curve().EncodeScalar(as.Invert()), nil
}

// ScalarClamp applies the clamp predicate if a is not already clamped.
func (e *Engine) ScalarClamp(a []byte) ([]byte, error) {
	if len(a) != e.ScalarLength() {
		return nil, ErrInvalidScalarLength
	}
	if e.Curve().IsClamped(a) {
		out := make([]byte, len(a))
		copy(out, a)
		return out, nil
	}
	return e.Curve().Clamp(a), nil
}
