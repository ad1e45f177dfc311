package shamir

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPolynomialEvaluate(t *testing.T) {
	// f(x) = 5 + 3x + 2x^2
	poly := NewPolynomial(big.NewInt(5), big.NewInt(3), big.NewInt(2))

	tests := []struct {
		x        int64
		expected int64
	}{
		{0, 5},   // f(0) = 5
		{1, 10},  // f(1) = 5 + 3 + 2 = 10
		{2, 19},  // f(2) = 5 + 6 + 8 = 19
		{3, 32},  // f(3) = 5 + 9 + 18 = 32
		{-1, 4},  // f(-1) = 5 - 3 + 2 = 4
		{-2, 7},  // f(-2) = 5 - 6 + 8 = 7
	}

	for _, tt := range tests {
		result := poly.Evaluate(big.NewInt(tt.x))
		assert.Equal(t, tt.expected, result.Int64(), "f(%d)", tt.x)
	}

	assert.Equal(t, 2, poly.Degree())
	assert.Equal(t, int64(5), poly.Secret().Int64())
}

func TestPolynomialEvaluateEmpty(t *testing.T) {
	poly := NewPolynomial()
	assert.Equal(t, int64(0), poly.Evaluate(big.NewInt(5)).Int64())
	assert.Equal(t, int64(0), poly.Secret().Int64())
}

func TestNewPolynomialCopiesCoefficients(t *testing.T) {
	c := big.NewInt(9)
	poly := NewPolynomial(c)
	c.SetInt64(1)

	assert.Equal(t, int64(9), poly.Secret().Int64())
}

func TestNewRandomPolynomial(t *testing.T) {
	secret := big.NewInt(42)
	bound := big.NewInt(1000)

	t.Run("valid polynomial", func(t *testing.T) {
		poly, err := NewRandomPolynomial(secret, 3, bound)
		require.NoError(t, err)
		require.Len(t, poly.coefficients, 3)
		assert.Equal(t, int64(42), poly.coefficients[0].Int64())

		for _, c := range poly.coefficients[1:] {
			assert.True(t, c.Sign() >= 0 && c.Cmp(bound) < 0)
		}
	})

	t.Run("invalid threshold", func(t *testing.T) {
		_, err := NewRandomPolynomial(secret, 0, bound)
		assert.ErrorIs(t, err, ErrInvalidThreshold)
	})

	t.Run("invalid bound", func(t *testing.T) {
		_, err := NewRandomPolynomial(secret, 3, big.NewInt(0))
		assert.ErrorIs(t, err, ErrInvalidBound)

		_, err = NewRandomPolynomial(secret, 3, nil)
		assert.ErrorIs(t, err, ErrInvalidBound)
	})
}

func TestSplit(t *testing.T) {
	bound := new(big.Int).Lsh(big.NewInt(1), 128)

	tests := []struct {
		name      string
		secret    *big.Int
		threshold int
		total     int
		wantErr   error
	}{
		{name: "valid 2-of-3", secret: big.NewInt(3), threshold: 2, total: 3},
		{name: "valid 3-of-5", secret: big.NewInt(123456789), threshold: 3, total: 5},
		{name: "valid 5-of-5", secret: big.NewInt(0), threshold: 5, total: 5},
		{name: "negative secret", secret: big.NewInt(-77), threshold: 4, total: 6},
		{name: "nil secret", secret: nil, threshold: 2, total: 3, wantErr: ErrInvalidShare},
		{name: "threshold less than 2", secret: big.NewInt(1), threshold: 1, total: 3, wantErr: ErrInvalidThreshold},
		{name: "total less than threshold", secret: big.NewInt(1), threshold: 5, total: 3, wantErr: ErrInvalidTotal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			shares, err := Split(tt.secret, tt.threshold, tt.total, bound)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, shares)
				return
			}

			require.NoError(t, err)
			require.Len(t, shares, tt.total)

			for i, share := range shares {
				assert.Equal(t, int64(i+1), share.X.Int64())
			}

			result, err := ReconstructThreshold(shares, tt.threshold)
			require.NoError(t, err)
			assert.True(t, result.Exact)
			assert.Equal(t, 0, tt.secret.Cmp(result.Secret))
		})
	}
}
