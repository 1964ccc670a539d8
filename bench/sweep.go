package bench

import (
	"context"
	"errors"
	"fmt"
	"io"
	"slices"

	"github.com/arloliu/fbst/errs"
	"github.com/arloliu/fbst/regression"
)

// SweepReport holds one Report per table size and a latency model per
// strategy.
type SweepReport struct {
	Sizes   []int
	Reports []*Report
	// Fits maps a strategy name to the regression of its per-query latency
	// against the table size. Strategies no model could be fitted to are
	// missing.
	Fits map[string]*regression.Result
}

// Sweep runs the configured benchmark once per size in sizes, overriding
// Config.Entries, and fits every strategy's latency curve. Steps never
// write to the save output set by SetSaveOutput.
//
// Returns a wrapped errs.ErrInsufficientData when fewer than two sizes are
// given.
func (r *Runner) Sweep(ctx context.Context, sizes []int) (*SweepReport, error) {
	if len(sizes) < 2 {
		return nil, fmt.Errorf("%w: sweep needs at least two sizes, got %d", errs.ErrInsufficientData, len(sizes))
	}

	sizes = slices.Clone(sizes)
	slices.Sort(sizes)

	sweep := &SweepReport{
		Sizes:   sizes,
		Reports: make([]*Report, 0, len(sizes)),
		Fits:    make(map[string]*regression.Result),
	}

	for _, size := range sizes {
		step := *r
		step.cfg.Entries = size
		step.save = nil

		report, err := step.RunWidth(ctx)
		if err != nil {
			return nil, fmt.Errorf("size %d: %w", size, err)
		}
		sweep.Reports = append(sweep.Reports, report)

		r.logger.Info().Int("entries", size).Msg("sweep step done")
	}

	x := make([]float64, len(sizes))
	for i, size := range sizes {
		x[i] = float64(size)
	}

	for _, name := range sweep.strategies() {
		y := make([]float64, len(sweep.Reports))
		for i, report := range sweep.Reports {
			res, _ := report.Result(name)
			y[i] = res.AvgNs
		}

		fit, err := regression.Fit(x, y)
		if err != nil {
			if errors.Is(err, errs.ErrInsufficientData) {
				r.logger.Warn().Err(err).Str("strategy", name).Msg("no latency model")
				continue
			}

			return nil, err
		}
		sweep.Fits[name] = fit
	}

	return sweep, nil
}

// strategies returns the strategy names in the order of the first report.
func (s *SweepReport) strategies() []string {
	if len(s.Reports) == 0 {
		return nil
	}

	names := make([]string, 0, len(s.Reports[0].Results))
	for _, res := range s.Reports[0].Results {
		names = append(names, res.Name)
	}

	return names
}

// Write prints the per-size latencies followed by the best model per strategy.
func (s *SweepReport) Write(w io.Writer) error {
	names := s.strategies()

	if _, err := fmt.Fprintf(w, "%12s", "entries"); err != nil {
		return err
	}
	for _, name := range names {
		if _, err := fmt.Fprintf(w, " %12s", name); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintln(w); err != nil {
		return err
	}

	for i, report := range s.Reports {
		if _, err := fmt.Fprintf(w, "%12d", s.Sizes[i]); err != nil {
			return err
		}
		for _, name := range names {
			res, _ := report.Result(name)
			if _, err := fmt.Fprintf(w, " %12.2f", res.AvgNs); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}

	if _, err := fmt.Fprintln(w); err != nil {
		return err
	}

	for _, name := range names {
		fit, ok := s.Fits[name]
		if !ok {
			continue
		}
		best := fit.BestFit
		if _, err := fmt.Fprintf(w, "%-12s %-12s R²=%.4f  %s\n", name+":", best.Type, best.RSquared, best.Formula); err != nil {
			return err
		}
	}

	return nil
}
