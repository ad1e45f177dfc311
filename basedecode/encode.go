package basedecode

import (
	"math/big"
)

const digitAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// Encode renders n in the given base using lowercase digits, without
// leading zeros. Zero encodes as "0".
func Encode(n *big.Int, base int) (string, error) {
	if err := checkBase(base); err != nil {
		return "", err
	}

	if n.Sign() < 0 {
		return "", ErrNegative
	}

	if n.Sign() == 0 {
		return "0", nil
	}

	b := big.NewInt(int64(base))
	q := new(big.Int).Set(n)
	r := new(big.Int)

	var out []byte
	for q.Sign() > 0 {
		q.QuoRem(q, b, r)
		out = append(out, digitAlphabet[r.Int64()])
	}

	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}

	return string(out), nil
}
