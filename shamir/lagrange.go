package shamir

import (
	"fmt"
	"math/big"
)

// Result is the outcome of reconstructing the constant term.
type Result struct {
	// Secret is the constant term, truncated toward zero when Exact is false.
	Secret *big.Int
	// Exact is true when the accumulated fraction has denominator ±1.
	Exact bool
	// Fraction is the reduced interpolation sum before integer extraction.
	Fraction Rational
}

// Err returns ErrInexactReconstruction when the result is not an exact integer.
func (r Result) Err() error {
	if r.Exact {
		return nil
	}
	return fmt.Errorf("%w: %s", ErrInexactReconstruction, r.Fraction)
}

// Reconstruct computes f(0) of the polynomial through points using exact
// Lagrange interpolation. All points are used in the order given.
//
// A non-integer result is not an error: Secret holds the truncated
// quotient and Exact is false.
func Reconstruct(points []Share) (Result, error) {
	sum, err := interpolate(points, new(big.Int))
	if err != nil {
		return Result{}, err
	}

	return Result{
		Secret:   sum.Truncate(),
		Exact:    sum.IsInt(),
		Fraction: sum,
	}, nil
}

// ReconstructThreshold reconstructs from the first k points.
func ReconstructThreshold(points []Share, k int) (Result, error) {
	selected, err := SelectThreshold(points, k)
	if err != nil {
		return Result{}, err
	}
	return Reconstruct(selected)
}

// Evaluate computes the exact value at x of the polynomial through points.
func Evaluate(points []Share, x *big.Int) (Rational, error) {
	if x == nil {
		return Rational{}, ErrInvalidShare
	}
	return interpolate(points, x)
}

// interpolate sums y_i * L_i(at) over all points, reducing after each term.
func interpolate(points []Share, at *big.Int) (Rational, error) {
	if len(points) == 0 {
		return Rational{}, ErrInsufficientShares
	}

	for i, p := range points {
		if !p.valid() {
			return Rational{}, fmt.Errorf("%w: share %d", ErrInvalidShare, i)
		}
	}

	sum := Rational{num: new(big.Int), den: big.NewInt(1)}

	for i := range points {
		num, den, err := basis(points, i, at)
		if err != nil {
			return Rational{}, err
		}

		num.Mul(num, points[i].Y)

		sum = sum.Add(Rational{num: num, den: den})
	}

	return sum, nil
}

// basis returns the numerator and denominator of L_i(at):
// the products of (at - x_j) and (x_i - x_j) over every j != i.
func basis(points []Share, i int, at *big.Int) (*big.Int, *big.Int, error) {
	xi := points[i].X

	num := big.NewInt(1)
	den := big.NewInt(1)
	factor := new(big.Int)

	for j := range points {
		if i == j {
			continue
		}

		xj := points[j].X

		factor.Sub(xi, xj)
		if factor.Sign() == 0 {
			lo, hi := min(i, j), max(i, j)
			return nil, nil, &DegenerateError{I: lo, J: hi, X: new(big.Int).Set(xi)}
		}
		den.Mul(den, factor)

		factor.Sub(at, xj)
		num.Mul(num, factor)
	}

	return num, den, nil
}
