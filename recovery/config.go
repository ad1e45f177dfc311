package recovery

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/vitalvas/sharerecover/shareset"
)

type Mode string

const (
	// ModeExact reconstructs over the rationals.
	ModeExact Mode = "exact"
	// ModeField reconstructs modulo a prime.
	ModeField Mode = "field"
)

var (
	ErrInvalidMode    = errors.New("recovery: unknown mode")
	ErrInvalidModulus = errors.New("recovery: modulus must be a decimal integer")
)

type Config struct {
	Mode Mode `yaml:"mode" json:"mode" default:"exact"`

	// Modulus is the decimal field prime for ModeField. Empty selects the
	// secp256k1 field prime.
	Modulus string `yaml:"modulus" json:"modulus"`

	Order       shareset.Order `yaml:"order" json:"order" default:"document"`
	Verify      bool           `yaml:"verify" json:"verify" default:"true"`
	StrictExact bool           `yaml:"strict_exact" json:"strict_exact"`
	Workers     int            `yaml:"workers" json:"workers" default:"4"`
}

func (c Config) modulus() (*big.Int, error) {
	if c.Modulus == "" {
		return nil, nil
	}

	m, ok := new(big.Int).SetString(c.Modulus, 10)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrInvalidModulus, c.Modulus)
	}
	return m, nil
}

// Validate checks the mode, order and modulus.
func (c Config) Validate() error {
	switch c.Mode {
	case ModeExact, ModeField:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidMode, c.Mode)
	}

	switch c.Order {
	case shareset.OrderDocument, shareset.OrderAscendingX:
	default:
		return fmt.Errorf("%w: %q", shareset.ErrInvalidOrder, c.Order)
	}

	if _, err := c.modulus(); err != nil {
		return err
	}

	return nil
}
