package shamir

import (
	"fmt"
	"math/big"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
)

// fieldPrime is the secp256k1 base field prime: 2^256 - 2^32 - 977.
var fieldPrime = new(big.Int).Set(secp256k1.S256().Params().P)

// FieldPrime returns a copy of the default prime used by ReconstructMod.
func FieldPrime() *big.Int {
	return new(big.Int).Set(fieldPrime)
}

// ReconstructMod computes f(0) mod modulus for shares dealt over a prime
// field. A nil modulus selects FieldPrime.
func ReconstructMod(points []Share, modulus *big.Int) (*big.Int, error) {
	if modulus == nil {
		modulus = fieldPrime
	}

	if modulus.Cmp(big.NewInt(1)) <= 0 {
		return nil, ErrInvalidModulus
	}

	if len(points) == 0 {
		return nil, ErrInsufficientShares
	}

	for i, p := range points {
		if !p.valid() {
			return nil, fmt.Errorf("%w: share %d", ErrInvalidShare, i)
		}
	}

	result := new(big.Int)
	factor := new(big.Int)

	for i := range points {
		xi := points[i].X

		num := big.NewInt(1)
		den := big.NewInt(1)

		for j := range points {
			if i == j {
				continue
			}

			xj := points[j].X

			// denominator *= (x_i - x_j)
			factor.Sub(xi, xj).Mod(factor, modulus)
			if factor.Sign() == 0 {
				return nil, &DegenerateError{I: min(i, j), J: max(i, j), X: new(big.Int).Set(xi)}
			}
			den.Mul(den, factor).Mod(den, modulus)

			// numerator *= (0 - x_j)
			factor.Neg(xj).Mod(factor, modulus)
			num.Mul(num, factor).Mod(num, modulus)
		}

		inv := new(big.Int).ModInverse(den, modulus)
		if inv == nil {
			return nil, fmt.Errorf("%w: denominator of share %d is not invertible", ErrDegenerateShare, i)
		}

		term := new(big.Int).Mul(points[i].Y, num)
		term.Mul(term, inv).Mod(term, modulus)

		result.Add(result, term).Mod(result, modulus)
	}

	return result, nil
}
