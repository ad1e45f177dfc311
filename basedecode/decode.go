package basedecode

import (
	"fmt"
	"math/big"
)

const (
	MinBase = 2
	MaxBase = 36
)

// DigitValue returns the value of an alphanumeric digit, case-insensitive.
func DigitValue(r rune) (int, bool) {
	switch {
	case r >= '0' && r <= '9':
		return int(r - '0'), true
	case r >= 'a' && r <= 'z':
		return int(r-'a') + 10, true
	case r >= 'A' && r <= 'Z':
		return int(r-'A') + 10, true
	default:
		return 0, false
	}
}

func checkBase(base int) error {
	if base < MinBase || base > MaxBase {
		return fmt.Errorf("%w: got %d", ErrInvalidBase, base)
	}
	return nil
}

// Decode converts an unsigned digit string in the given base into an integer.
// Digits are accumulated left to right as result = result*base + digit.
func Decode(digits string, base int) (*big.Int, error) {
	if err := checkBase(base); err != nil {
		return nil, err
	}

	if len(digits) == 0 {
		return nil, ErrEmptyDigits
	}

	b := big.NewInt(int64(base))
	d := new(big.Int)
	result := new(big.Int)

	for pos, r := range digits {
		v, ok := DigitValue(r)
		if !ok || v >= base {
			return nil, &DigitError{Char: r, Pos: pos, Base: base}
		}

		result.Mul(result, b)
		result.Add(result, d.SetInt64(int64(v)))
	}

	return result, nil
}

// MustDecode is like Decode but panics on error.
func MustDecode(digits string, base int) *big.Int {
	n, err := Decode(digits, base)
	if err != nil {
		panic(err)
	}
	return n
}
