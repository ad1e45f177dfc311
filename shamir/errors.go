package shamir

import (
	"errors"
	"fmt"
	"math/big"
)

var (
	// ErrInvalidThreshold is returned when the threshold is out of range.
	ErrInvalidThreshold = errors.New("shamir: invalid threshold")

	// ErrInvalidTotal is returned when total shares is less than threshold.
	ErrInvalidTotal = errors.New("shamir: total shares must be at least equal to threshold")

	// ErrInsufficientShares is returned when not enough shares are provided for reconstruction.
	ErrInsufficientShares = errors.New("shamir: insufficient shares for reconstruction")

	// ErrInvalidShare is returned when a share is missing a coordinate.
	ErrInvalidShare = errors.New("shamir: share coordinates must be set")

	// ErrDegenerateShare is matched by every *DegenerateError.
	ErrDegenerateShare = errors.New("shamir: degenerate share set")

	// ErrInexactReconstruction signals that the interpolated constant term is not an integer.
	ErrInexactReconstruction = errors.New("shamir: reconstruction is not an exact integer")

	// ErrZeroDenominator is returned when building a fraction with a zero denominator.
	ErrZeroDenominator = errors.New("shamir: zero denominator")

	// ErrInvalidModulus is returned when the field modulus is less than 2.
	ErrInvalidModulus = errors.New("shamir: modulus must be greater than 1")

	// ErrInvalidBound is returned when the coefficient bound is not positive.
	ErrInvalidBound = errors.New("shamir: coefficient bound must be positive")
)

// DegenerateError reports a pair of shares that would force a division by zero.
type DegenerateError struct {
	// I and J are the positions of the conflicting shares, I < J.
	I, J int
	X    *big.Int
}

func (e *DegenerateError) Error() string {
	return fmt.Sprintf("shamir: shares %d and %d share x-coordinate %s", e.I, e.J, e.X)
}

func (e *DegenerateError) Is(target error) bool {
	return target == ErrDegenerateShare
}
