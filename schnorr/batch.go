package schnorr

import "math/big"

// BatchEntry is one (message, signature, public key) triple to be checked
// together in BatchVerify.
type BatchEntry struct {
	Msg []byte
	Sig []byte
	Key []byte
}

// BatchVerify checks a batch of signatures at once: instead of checking
// R := [S]G + [-e]A per signature, it reconstructs each Ri from its x-only
// encoding (liftX, same Jacobi-parity convention Verify uses), then checks
// a single randomly-weighted linear combination (a1 = 1, later ai random)
//
//	[sum(ai*si)]G == sum([ai]Ri) + sum([ai*ei]Ai)
//
// An empty batch holds trivially. Any malformed entry fails the whole
// batch; it never raises. Internal failures collapse to false, matching
// Verify.
func (e *Engine) BatchVerify(entries []BatchEntry) (ok bool) {
	defer func() {
		if recover() != nil {
			ok = false
		}
	}()

	if len(entries) == 0 {
		return true
	}

	c := e.curve
	size := c.Size()
	n := c.Order()

	sSum := big.NewInt(0)
	var rSumX, rSumY *big.Int
	var aeSumX, aeSumY *big.Int

	for idx, ent := range entries {
		if len(ent.Sig) != 2*size || len(ent.Key) != size {
			return false
		}

		ax := new(big.Int).SetBytes(ent.Key)
		ay, err := e.liftX(ax)
		if err != nil {
			return false
		}

		rx := new(big.Int).SetBytes(ent.Sig[:size])
		if rx.Cmp(c.Field()) >= 0 {
			return false
		}
		s := new(big.Int).SetBytes(ent.Sig[size:])
		if s.Cmp(n) >= 0 {
			return false
		}

		ry, err := e.liftX(rx)
		if err != nil {
			return false
		}

		eVal := e.challengeHash(ent.Sig[:size], ent.Key, ent.Msg)

		var weight *big.Int
		if idx == 0 {
			weight = big.NewInt(1)
		} else {
			weight, err = c.RandomScalar()
			if err != nil {
				return false
			}
		}

		ws := new(big.Int).Mul(weight, s)
		sSum.Add(sSum, ws)
		sSum.Mod(sSum, n)

		wrx, wry := c.ScalarMult(rx, ry, weight)
		if rSumX == nil {
			rSumX, rSumY = wrx, wry
		} else {
			rSumX, rSumY = c.Add(rSumX, rSumY, wrx, wry)
		}

		wae := new(big.Int).Mul(weight, eVal)
		wae.Mod(wae, n)
		waex, waey := c.ScalarMult(ax, ay, wae)
		if aeSumX == nil {
			aeSumX, aeSumY = waex, waey
		} else {
			aeSumX, aeSumY = c.Add(aeSumX, aeSumY, waex, waey)
		}
	}

	lhsX, lhsY := c.ScalarBaseMult(sSum)
	rhsX, rhsY := c.Add(rSumX, rSumY, aeSumX, aeSumY)

	return lhsX.Cmp(rhsX) == 0 && lhsY.Cmp(rhsY) == 0
}
