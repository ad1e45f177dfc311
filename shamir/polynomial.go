package shamir

import (
	"crypto/rand"
	"math/big"
)

// Polynomial is a polynomial with integer coefficients.
// coefficients[0] is the constant term (the secret).
type Polynomial struct {
	coefficients []*big.Int
}

// NewPolynomial creates a polynomial from copies of the given coefficients,
// lowest degree first.
func NewPolynomial(coefficients ...*big.Int) *Polynomial {
	coeffs := make([]*big.Int, len(coefficients))
	for i, c := range coefficients {
		coeffs[i] = new(big.Int).Set(c)
	}
	return &Polynomial{coefficients: coeffs}
}

// NewRandomPolynomial creates a polynomial of degree (threshold-1) with the
// given secret as constant term and other coefficients drawn from [0, bound).
func NewRandomPolynomial(secret *big.Int, threshold int, bound *big.Int) (*Polynomial, error) {
	if threshold < 1 {
		return nil, ErrInvalidThreshold
	}

	if bound == nil || bound.Sign() <= 0 {
		return nil, ErrInvalidBound
	}

	coefficients := make([]*big.Int, threshold)
	coefficients[0] = new(big.Int).Set(secret)

	for i := 1; i < threshold; i++ {
		coef, err := rand.Int(rand.Reader, bound)
		if err != nil {
			return nil, err
		}
		coefficients[i] = coef
	}

	return &Polynomial{coefficients: coefficients}, nil
}

// Secret returns a copy of the constant term.
func (p *Polynomial) Secret() *big.Int {
	if len(p.coefficients) == 0 {
		return new(big.Int)
	}
	return new(big.Int).Set(p.coefficients[0])
}

// Degree returns the number of coefficients minus one.
func (p *Polynomial) Degree() int {
	return len(p.coefficients) - 1
}

// Evaluate evaluates the polynomial at x using Horner's method.
func (p *Polynomial) Evaluate(x *big.Int) *big.Int {
	if len(p.coefficients) == 0 {
		return new(big.Int)
	}

	result := new(big.Int).Set(p.coefficients[len(p.coefficients)-1])

	for i := len(p.coefficients) - 2; i >= 0; i-- {
		result.Mul(result, x)
		result.Add(result, p.coefficients[i])
	}

	return result
}

// Shares evaluates the polynomial at each x-coordinate.
func (p *Polynomial) Shares(xs ...*big.Int) []Share {
	shares := make([]Share, len(xs))
	for i, x := range xs {
		shares[i] = Share{X: new(big.Int).Set(x), Y: p.Evaluate(x)}
	}
	return shares
}

// Split deals total shares of secret at x = 1..total, any threshold of which
// reconstruct it exactly. Coefficients are drawn from [0, bound).
func Split(secret *big.Int, threshold, total int, bound *big.Int) ([]Share, error) {
	if secret == nil {
		return nil, ErrInvalidShare
	}

	if threshold < 2 {
		return nil, ErrInvalidThreshold
	}

	if total < threshold {
		return nil, ErrInvalidTotal
	}

	poly, err := NewRandomPolynomial(secret, threshold, bound)
	if err != nil {
		return nil, err
	}

	xs := make([]*big.Int, total)
	for i := range total {
		// x-coordinates are 1, 2, 3, ... (never 0)
		xs[i] = big.NewInt(int64(i + 1))
	}

	return poly.Shares(xs...), nil
}
