package shamir

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewShareCopies(t *testing.T) {
	x := big.NewInt(1)
	y := big.NewInt(2)

	share := NewShare(x, y)
	x.SetInt64(10)
	y.SetInt64(20)

	assert.Equal(t, int64(1), share.X.Int64())
	assert.Equal(t, int64(2), share.Y.Int64())
}

func TestShareClone(t *testing.T) {
	original := shareOf(3, 12)
	clone := original.Clone()

	assert.True(t, original.Equal(clone))

	clone.Y.SetInt64(99)
	assert.Equal(t, int64(12), original.Y.Int64())
	assert.False(t, original.Equal(clone))
}

func TestShareEqual(t *testing.T) {
	tests := []struct {
		name string
		a, b Share
		want bool
	}{
		{name: "same values", a: shareOf(1, 4), b: shareOf(1, 4), want: true},
		{name: "different x", a: shareOf(1, 4), b: shareOf(2, 4), want: false},
		{name: "different y", a: shareOf(1, 4), b: shareOf(1, 5), want: false},
		{name: "both empty", a: Share{}, b: Share{}, want: true},
		{name: "one empty", a: shareOf(1, 4), b: Share{}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Equal(tt.b))
		})
	}
}

func TestShareString(t *testing.T) {
	assert.Equal(t, "(6, 39)", shareOf(6, 39).String())
}

func TestSelectThreshold(t *testing.T) {
	shares := []Share{shareOf(3, 12), shareOf(1, 4), shareOf(6, 39), shareOf(2, 7)}

	t.Run("first k in given order", func(t *testing.T) {
		selected, err := SelectThreshold(shares, 3)
		require.NoError(t, err)
		require.Len(t, selected, 3)

		assert.Equal(t, int64(3), selected[0].X.Int64())
		assert.Equal(t, int64(1), selected[1].X.Int64())
		assert.Equal(t, int64(6), selected[2].X.Int64())
	})

	t.Run("append does not clobber caller slice", func(t *testing.T) {
		selected, err := SelectThreshold(shares, 2)
		require.NoError(t, err)

		_ = append(selected, shareOf(100, 100))
		assert.Equal(t, int64(6), shares[2].X.Int64())
	})

	t.Run("exactly k", func(t *testing.T) {
		selected, err := SelectThreshold(shares, 4)
		require.NoError(t, err)
		assert.Len(t, selected, 4)
	})

	t.Run("fewer than k", func(t *testing.T) {
		_, err := SelectThreshold(shares, 5)
		assert.ErrorIs(t, err, ErrInsufficientShares)
	})

	t.Run("invalid k", func(t *testing.T) {
		_, err := SelectThreshold(shares, 0)
		assert.ErrorIs(t, err, ErrInvalidThreshold)
	})
}
