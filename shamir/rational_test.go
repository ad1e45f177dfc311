package shamir

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRational(t *testing.T) {
	r, err := NewRational(big.NewInt(6), big.NewInt(-4))
	require.NoError(t, err)

	// not reduced on construction
	assert.Equal(t, "6/-4", r.String())

	_, err = NewRational(big.NewInt(1), big.NewInt(0))
	assert.ErrorIs(t, err, ErrZeroDenominator)
}

func TestRationalZeroValue(t *testing.T) {
	var r Rational

	assert.Equal(t, "0/1", r.String())
	assert.True(t, r.IsInt())
	assert.Equal(t, int64(0), r.Truncate().Int64())

	sum := r.Add(ratOf(t, 3, 4))
	assert.Equal(t, "3/4", sum.String())
}

func TestRationalAdd(t *testing.T) {
	tests := []struct {
		name string
		a, b [2]int64
		want string
	}{
		{name: "integers", a: [2]int64{2, 1}, b: [2]int64{3, 1}, want: "5/1"},
		{name: "halves", a: [2]int64{1, 2}, b: [2]int64{1, 2}, want: "1/1"},
		{name: "reduces by gcd", a: [2]int64{1, 6}, b: [2]int64{1, 3}, want: "1/2"},
		{name: "zero sum is canonical", a: [2]int64{3, 7}, b: [2]int64{-6, 14}, want: "0/1"},
		{name: "negative denominator kept", a: [2]int64{1, -3}, b: [2]int64{0, 1}, want: "1/-3"},
		{name: "mixed signs", a: [2]int64{12, -2}, b: [2]int64{0, 1}, want: "6/-1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := ratOf(t, tt.a[0], tt.a[1])
			b := ratOf(t, tt.b[0], tt.b[1])

			assert.Equal(t, tt.want, a.Add(b).String())
		})
	}
}

func TestRationalAddDoesNotMutate(t *testing.T) {
	a := ratOf(t, 1, 2)
	b := ratOf(t, 1, 3)

	_ = a.Add(b)

	assert.Equal(t, "1/2", a.String())
	assert.Equal(t, "1/3", b.String())
}

func TestRationalIsIntAndTruncate(t *testing.T) {
	tests := []struct {
		num, den int64
		isInt    bool
		trunc    int64
	}{
		{6, 1, true, 6},
		{6, -1, true, -6},
		{7, 2, false, 3},
		{-7, 2, false, -3},
		{7, -2, false, -3},
	}

	for _, tt := range tests {
		r := ratOf(t, tt.num, tt.den)
		assert.Equal(t, tt.isInt, r.IsInt(), r.String())
		assert.Equal(t, tt.trunc, r.Truncate().Int64(), r.String())
	}
}

func TestRationalEqual(t *testing.T) {
	assert.True(t, ratOf(t, 1, 2).Equal(ratOf(t, -2, -4)))
	assert.False(t, ratOf(t, 1, 2).Equal(ratOf(t, 1, 3)))
	assert.True(t, ratOf(t, 39, -1).EqualInt(big.NewInt(-39)))
	assert.False(t, ratOf(t, 79, 2).EqualInt(big.NewInt(39)))
}

func TestRationalRat(t *testing.T) {
	r := ratOf(t, 6, -4)
	assert.Equal(t, "-3/2", r.Rat().String())
}

func TestRationalAccessorsCopy(t *testing.T) {
	r := ratOf(t, 5, 7)

	r.Num().SetInt64(0)
	r.Denom().SetInt64(0)

	assert.Equal(t, "5/7", r.String())
}
