package recovery

import (
	"context"
	"fmt"
	"log/slog"
	"math/big"

	"github.com/vitalvas/sharerecover/shamir"
	"github.com/vitalvas/sharerecover/shareset"
	"github.com/vitalvas/sharerecover/xcmd"
)

// Service drives share documents through decoding, threshold selection,
// interpolation and surplus verification.
type Service struct {
	conf    Config
	modulus *big.Int
	logger  *slog.Logger
}

func New(conf Config, logger *slog.Logger) (*Service, error) {
	if err := conf.Validate(); err != nil {
		return nil, err
	}

	modulus, err := conf.modulus()
	if err != nil {
		return nil, err
	}

	if modulus != nil && modulus.Cmp(big.NewInt(1)) <= 0 {
		return nil, shamir.ErrInvalidModulus
	}

	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &Service{
		conf:    conf,
		modulus: modulus,
		logger:  logger,
	}, nil
}

// Recover loads and reconstructs a single document.
func (s *Service) Recover(ctx context.Context, path string) (*Report, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	doc, err := shareset.Load(path)
	if err != nil {
		return nil, err
	}

	return s.RecoverDocument(ctx, path, doc)
}

// RecoverDocument reconstructs the secret of an already parsed document.
func (s *Service) RecoverDocument(ctx context.Context, source string, doc *shareset.Document) (*Report, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	logger := s.logger.With("source", source)

	logger.Debug("processing share document", "n", doc.N, "k", doc.K, "degree", doc.K-1)

	if doc.CountMismatch() {
		logger.Warn("declared share count differs from entries", "n", doc.N, "entries", len(doc.Entries))
	}

	used, surplus, err := doc.Threshold(s.conf.Order)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", source, err)
	}

	for _, share := range used {
		logger.Debug("using share", "x", share.X.String(), "y", share.Y.String())
	}

	report := &Report{
		Path: source,
		N:    doc.N,
		K:    doc.K,
		Mode: s.conf.Mode,
		Used: used,
	}

	switch s.conf.Mode {
	case ModeField:
		err = s.reconstructField(report)
	default:
		err = s.reconstructExact(logger, report)
	}

	if err != nil {
		return nil, fmt.Errorf("%s: %w", source, err)
	}

	if s.conf.Verify && len(surplus) > 0 {
		if err := s.verify(logger, report, surplus); err != nil {
			return nil, fmt.Errorf("%s: %w", source, err)
		}
	}

	logger.Info("secret reconstructed", "secret", report.Secret.String(), "exact", report.Exact)

	return report, nil
}

func (s *Service) reconstructExact(logger *slog.Logger, report *Report) error {
	result, err := shamir.Reconstruct(report.Used)
	if err != nil {
		return err
	}

	report.Secret = result.Secret
	report.Exact = result.Exact
	report.Fraction = result.Fraction.String()

	if !result.Exact {
		if s.conf.StrictExact {
			return result.Err()
		}

		logger.Warn("secret is not an integer, result truncated",
			"fraction", report.Fraction,
			"truncated", result.Secret.String(),
		)
	}

	return nil
}

func (s *Service) reconstructField(report *Report) error {
	secret, err := shamir.ReconstructMod(report.Used, s.modulus)
	if err != nil {
		return err
	}

	report.Secret = secret
	report.Exact = true

	return nil
}

func (s *Service) verify(logger *slog.Logger, report *Report, surplus []shamir.Share) error {
	if s.conf.Mode == ModeField {
		logger.Debug("surplus verification skipped in field mode", "surplus", len(surplus))
		return nil
	}

	mismatched, err := shamir.Verify(report.Used, surplus)
	if err != nil {
		return err
	}

	report.Inconsistent = mismatched

	for _, share := range mismatched {
		logger.Warn("share does not lie on the reconstructed polynomial", "x", share.X.String())
	}

	return nil
}

// RecoverAll processes documents concurrently, bounded by Workers, and
// returns reports in the order of paths. The first failure cancels the rest.
func (s *Service) RecoverAll(ctx context.Context, paths []string) ([]*Report, error) {
	reports := make([]*Report, len(paths))

	group, _ := xcmd.ErrGroup(ctx)
	group.SetLimit(s.conf.Workers)

	for i, path := range paths {
		group.Go(func(ctx context.Context) error {
			report, err := s.Recover(ctx, path)
			if err != nil {
				return err
			}

			reports[i] = report
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}

	// queued documents are skipped silently once the parent is canceled
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return reports, nil
}
