package basedecode

import (
	"math/big"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode(t *testing.T) {
	tests := []struct {
		name   string
		digits string
		base   int
		want   string
	}{
		{name: "hex", digits: "7b", base: 16, want: "123"},
		{name: "hex upper case", digits: "7B", base: 16, want: "123"},
		{name: "binary", digits: "111", base: 2, want: "7"},
		{name: "base 4", digits: "213", base: 4, want: "39"},
		{name: "decimal", digits: "12", base: 10, want: "12"},
		{name: "base 36", digits: "zz", base: 36, want: "1295"},
		{name: "leading zeros", digits: "000101", base: 2, want: "5"},
		{name: "zero", digits: "0", base: 7, want: "0"},
		{
			name:   "larger than uint64",
			digits: "ffffffffffffffffffffffffffffffff",
			base:   16,
			want:   "340282366920938463463374607431768211455",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Decode(tt.digits, tt.base)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name    string
		digits  string
		base    int
		wantErr error
	}{
		{name: "base 1", digits: "0", base: 1, wantErr: ErrInvalidBase},
		{name: "base 37", digits: "0", base: 37, wantErr: ErrInvalidBase},
		{name: "negative base", digits: "1", base: -10, wantErr: ErrInvalidBase},
		{name: "empty", digits: "", base: 10, wantErr: ErrEmptyDigits},
		{name: "digit equals base", digits: "102", base: 2, wantErr: ErrInvalidDigit},
		{name: "letter in decimal", digits: "12a", base: 10, wantErr: ErrInvalidDigit},
		{name: "sign", digits: "-12", base: 10, wantErr: ErrInvalidDigit},
		{name: "whitespace", digits: "1 2", base: 10, wantErr: ErrInvalidDigit},
		{name: "prefix", digits: "0x1f", base: 16, wantErr: ErrInvalidDigit},
		{name: "non ascii", digits: "1é", base: 36, wantErr: ErrInvalidDigit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Decode(tt.digits, tt.base)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, got)
		})
	}
}

func TestDecodeDigitErrorContext(t *testing.T) {
	_, err := Decode("7g1", 16)

	var digitErr *DigitError
	require.ErrorAs(t, err, &digitErr)
	assert.Equal(t, 'g', digitErr.Char)
	assert.Equal(t, 1, digitErr.Pos)
	assert.Equal(t, 16, digitErr.Base)
	assert.Contains(t, err.Error(), `'g'`)
}

func TestDecodeMatchesPositionalValue(t *testing.T) {
	for base := MinBase; base <= MaxBase; base++ {
		digits := digitAlphabet[:base]

		got, err := Decode(digits, base)
		require.NoError(t, err)

		want, ok := new(big.Int).SetString(digits, base)
		require.True(t, ok)
		assert.Equal(t, 0, want.Cmp(got), "base %d", base)
	}
}

func TestDecodeLongInput(t *testing.T) {
	digits := strings.Repeat("z", 4096)

	got, err := Decode(digits, 36)
	require.NoError(t, err)

	// 36^4096 - 1
	want := new(big.Int).Exp(big.NewInt(36), big.NewInt(4096), nil)
	want.Sub(want, big.NewInt(1))
	assert.Equal(t, 0, want.Cmp(got))
}

func TestDigitValue(t *testing.T) {
	tests := []struct {
		r    rune
		want int
		ok   bool
	}{
		{'0', 0, true},
		{'9', 9, true},
		{'a', 10, true},
		{'A', 10, true},
		{'z', 35, true},
		{'Z', 35, true},
		{'_', 0, false},
		{'{', 0, false},
	}

	for _, tt := range tests {
		got, ok := DigitValue(tt.r)
		assert.Equal(t, tt.ok, ok, "%q", tt.r)
		assert.Equal(t, tt.want, got, "%q", tt.r)
	}
}

func TestMustDecode(t *testing.T) {
	assert.Equal(t, int64(123), MustDecode("7b", 16).Int64())
	assert.Panics(t, func() { MustDecode("7b", 10) })
}

func BenchmarkDecode(b *testing.B) {
	digits := strings.Repeat("7b3f", 256)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = Decode(digits, 16)
	}
}
