package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"math/big"

	"github.com/vitalvas/sharerecover/shamir"
	"github.com/vitalvas/sharerecover/shareset"
)

func runDeal(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("deal", flag.ContinueOnError)
	fs.SetOutput(stderr)

	secretFlag := fs.String("secret", "", "decimal secret to split")
	threshold := fs.Int("k", 3, "shares required to reconstruct")
	total := fs.Int("n", 5, "shares to generate")
	base := fs.Int("base", 10, "base used to encode share values (2-36)")
	boundBits := fs.Uint("bound-bits", 64, "random coefficients are below 2^bound-bits")
	format := fs.String("format", "json", "output format: json or yaml")

	if err := fs.Parse(args); err != nil {
		return err
	}

	secret, ok := new(big.Int).SetString(*secretFlag, 10)
	if !ok {
		return fmt.Errorf("deal: invalid secret %q", *secretFlag)
	}

	if secret.Sign() < 0 {
		return errors.New("deal: secret must not be negative")
	}

	if *boundBits == 0 {
		return errors.New("deal: bound-bits must be positive")
	}

	var outFormat shareset.Format
	switch *format {
	case "json":
		outFormat = shareset.FormatJSON
	case "yaml", "yml":
		outFormat = shareset.FormatYAML
	default:
		return fmt.Errorf("deal: %w: %s", shareset.ErrUnsupportedFormat, *format)
	}

	bound := new(big.Int).Lsh(big.NewInt(1), *boundBits)

	shares, err := shamir.Split(secret, *threshold, *total, bound)
	if err != nil {
		return err
	}

	doc, err := shareset.NewDocument(*threshold, shares, *base)
	if err != nil {
		return err
	}

	return doc.Encode(stdout, outFormat)
}
