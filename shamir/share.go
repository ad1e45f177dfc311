package shamir

import (
	"fmt"
	"math/big"
)

// Share is a single evaluation point (X, Y) of the secret polynomial.
type Share struct {
	X *big.Int
	Y *big.Int
}

// NewShare creates a share holding copies of x and y.
func NewShare(x, y *big.Int) Share {
	return Share{
		X: new(big.Int).Set(x),
		Y: new(big.Int).Set(y),
	}
}

// Clone creates a deep copy of the share.
func (s Share) Clone() Share {
	return NewShare(s.X, s.Y)
}

// Equal checks if two shares are equal.
func (s Share) Equal(other Share) bool {
	if s.X == nil || s.Y == nil || other.X == nil || other.Y == nil {
		return s.X == other.X && s.Y == other.Y
	}
	return s.X.Cmp(other.X) == 0 && s.Y.Cmp(other.Y) == 0
}

func (s Share) String() string {
	return fmt.Sprintf("(%s, %s)", s.X, s.Y)
}

func (s Share) valid() bool {
	return s.X != nil && s.Y != nil
}

// SelectThreshold returns the first k shares in the order given.
// Shares are never sorted or re-selected; callers needing a specific
// subset must arrange it before calling.
func SelectThreshold(shares []Share, k int) ([]Share, error) {
	if k < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidThreshold, k)
	}

	if len(shares) < k {
		return nil, fmt.Errorf("%w: need %d, got %d", ErrInsufficientShares, k, len(shares))
	}

	return shares[:k:k], nil
}
