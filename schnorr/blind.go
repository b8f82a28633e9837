package schnorr

import (
	"math/big"

	"threshold.network/cryptocore/curve"
)

// randomBlindFactor draws b uniformly from [1, n) and returns (b, b^-1 mod
// n), the inverse computed via Fermat's little theorem (b^(n-2) mod n)
// rather than the extended Euclidean algorithm, to avoid the data-dependent
// branching EGCD takes.
func randomBlindFactor(c *curve.Secp256k1, n *big.Int) (b, bInv *big.Int) {
	var err error
	b, err = c.RandomScalar()
	if err != nil {
		panic("schnorr: csprng unavailable: " + err.Error())
	}
	nMinus2 := new(big.Int).Sub(n, big.NewInt(2))
	bInv = new(big.Int).Exp(b, nMinus2, n)
	return b, bInv
}
