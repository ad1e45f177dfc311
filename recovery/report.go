package recovery

import (
	"math/big"

	"github.com/vitalvas/sharerecover/shamir"
)

// Report describes the reconstruction of one share document.
type Report struct {
	Path string
	N    int
	K    int
	Mode Mode

	// Used holds the shares fed to interpolation, in order.
	Used []shamir.Share

	Secret *big.Int
	Exact  bool

	// Fraction is the reduced interpolation sum; empty in ModeField.
	Fraction string

	// Inconsistent lists surplus shares off the reconstructed polynomial.
	Inconsistent []shamir.Share
}
