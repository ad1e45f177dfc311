package shamir

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func shareOf(x, y int64) Share {
	return Share{X: big.NewInt(x), Y: big.NewInt(y)}
}

func shareOfString(t *testing.T, x, y string) Share {
	t.Helper()

	xv, ok := new(big.Int).SetString(x, 10)
	require.True(t, ok, "x %q", x)

	yv, ok := new(big.Int).SetString(y, 10)
	require.True(t, ok, "y %q", y)

	return Share{X: xv, Y: yv}
}

func ratOf(t *testing.T, num, den int64) Rational {
	t.Helper()

	r, err := NewRational(big.NewInt(num), big.NewInt(den))
	require.NoError(t, err)
	return r
}
