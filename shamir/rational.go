package shamir

import (
	"math/big"
)

// Rational is an exact fraction over arbitrary-precision integers.
// The denominator is never zero; its sign is not normalised.
// The zero value is 0/1.
type Rational struct {
	num *big.Int
	den *big.Int
}

// NewRational returns num/den without reducing it.
func NewRational(num, den *big.Int) (Rational, error) {
	if den.Sign() == 0 {
		return Rational{}, ErrZeroDenominator
	}

	return Rational{
		num: new(big.Int).Set(num),
		den: new(big.Int).Set(den),
	}, nil
}

// RationalFromInt returns n/1.
func RationalFromInt(n *big.Int) Rational {
	return Rational{num: new(big.Int).Set(n), den: big.NewInt(1)}
}

func (r Rational) numerator() *big.Int {
	if r.num == nil {
		return new(big.Int)
	}
	return r.num
}

func (r Rational) denominator() *big.Int {
	if r.den == nil {
		return big.NewInt(1)
	}
	return r.den
}

// Num returns a copy of the numerator.
func (r Rational) Num() *big.Int {
	return new(big.Int).Set(r.numerator())
}

// Denom returns a copy of the denominator.
func (r Rational) Denom() *big.Int {
	return new(big.Int).Set(r.denominator())
}

// Add returns (a.num*b.den + b.num*a.den) / (a.den*b.den) divided through
// by the gcd of the two parts. A zero sum is returned as 0/1.
func (r Rational) Add(b Rational) Rational {
	an, ad := r.numerator(), r.denominator()
	bn, bd := b.numerator(), b.denominator()

	num := new(big.Int).Mul(an, bd)
	num.Add(num, new(big.Int).Mul(bn, ad))

	if num.Sign() == 0 {
		return Rational{num: num, den: big.NewInt(1)}
	}

	den := new(big.Int).Mul(ad, bd)

	// GCD is always non-negative and non-zero here since den != 0.
	gcd := new(big.Int).GCD(nil, nil, num, den)
	num.Quo(num, gcd)
	den.Quo(den, gcd)

	return Rational{num: num, den: den}
}

// IsInt reports whether the denominator is 1 or -1.
func (r Rational) IsInt() bool {
	return r.denominator().CmpAbs(big.NewInt(1)) == 0
}

// Truncate returns num/den rounded toward zero.
func (r Rational) Truncate() *big.Int {
	return new(big.Int).Quo(r.numerator(), r.denominator())
}

// Equal reports whether both fractions denote the same value.
func (r Rational) Equal(b Rational) bool {
	lhs := new(big.Int).Mul(r.numerator(), b.denominator())
	rhs := new(big.Int).Mul(b.numerator(), r.denominator())
	return lhs.Cmp(rhs) == 0
}

// EqualInt reports whether the fraction equals n.
func (r Rational) EqualInt(n *big.Int) bool {
	return r.Equal(Rational{num: n, den: big.NewInt(1)})
}

// Rat converts the fraction to a normalised big.Rat.
func (r Rational) Rat() *big.Rat {
	return new(big.Rat).SetFrac(r.numerator(), r.denominator())
}

func (r Rational) String() string {
	return r.numerator().String() + "/" + r.denominator().String()
}
