package bench

import (
	"context"
	"io"
	"runtime"
	"time"

	"github.com/RoaringBitmap/roaring"
	"github.com/rs/zerolog"
	"golang.org/x/exp/constraints"
	"gonum.org/v1/gonum/stat"

	"github.com/arloliu/fbst/format"
	"github.com/arloliu/fbst/search"
	"github.com/arloliu/fbst/stringify"
	"github.com/arloliu/fbst/table"
)

// Runner drives benchmark runs for a fixed Config.
type Runner struct {
	cfg    Config
	logger zerolog.Logger
	debug  io.Writer

	save       io.Writer
	encodeOpts []table.EncodeOption
}

// NewRunner creates a Runner. The logger is attached to the context of every
// run, so Run and Verify log through it.
func NewRunner(cfg Config, logger zerolog.Logger) *Runner {
	return &Runner{cfg: cfg, logger: logger, debug: io.Discard}
}

// SetDebugOutput sets where debug dumps are written when Config.Debug is set.
func (r *Runner) SetDebugOutput(w io.Writer) {
	r.debug = w
}

// SetSaveOutput makes every run encode its table with opts and write the
// blob to w before timing. A nil w disables saving.
func (r *Runner) SetSaveOutput(w io.Writer, opts ...table.EncodeOption) {
	r.save = w
	r.encodeOpts = opts
}

// Config returns the run configuration.
func (r *Runner) Config() Config {
	return r.cfg
}

// RunWidth generates a dataset for the configured width and runs every
// strategy over it. This is the only place that switches on the width.
func (r *Runner) RunWidth(ctx context.Context) (*Report, error) {
	if err := r.cfg.Validate(); err != nil {
		return nil, err
	}

	logger := r.logger.With().
		Str("width", r.cfg.Width.String()).
		Int("entries", r.cfg.Entries).
		Int("queries", r.cfg.Queries).
		Logger()
	ctx = logger.WithContext(ctx)

	switch r.cfg.Width {
	case format.Width8:
		return runFor[uint8](ctx, r)
	case format.Width16:
		return runFor[uint16](ctx, r)
	case format.Width32:
		return runFor[uint32](ctx, r)
	default:
		return runFor[uint64](ctx, r)
	}
}

func runFor[T constraints.Unsigned](ctx context.Context, r *Runner) (*Report, error) {
	logger := zerolog.Ctx(ctx)

	start := time.Now()
	ds, err := Generate[T](r.cfg)
	if err != nil {
		return nil, err
	}
	logger.Debug().Dur("elapsed", time.Since(start)).Msg("dataset generated")

	if r.cfg.Debug {
		if err := WriteDebug(r.debug, ds); err != nil {
			return nil, err
		}
	}

	if r.save != nil {
		blob, err := ds.Table.Encode(r.encodeOpts...)
		if err != nil {
			return nil, err
		}
		if _, err := r.save.Write(blob); err != nil {
			return nil, err
		}
		logger.Info().Int("bytes", len(blob)).Msg("table saved")
	}

	if r.cfg.Verify {
		if err := Verify(ctx, ds, r.cfg.workers()); err != nil {
			return nil, err
		}
		logger.Info().Msg("search entry points agree")
	}

	return Run(ctx, ds, r.cfg)
}

// Run times every Strategy over ds.Queries.
//
// Each strategy gets cfg.Warmup untimed passes followed by cfg.Repeat timed
// passes. The context is checked between passes; a cancelled run returns the
// context error and no report.
func Run[T constraints.Unsigned](ctx context.Context, ds *Dataset[T], cfg Config) (*Report, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger := zerolog.Ctx(ctx)
	strategies := Strategies(ds)

	report := &Report{
		Width:   ds.Table.Width(),
		Layout:  ds.Table.LayoutType(),
		Entries: len(ds.Values),
		Queries: len(ds.Queries),
		Repeat:  cfg.Repeat,
		Results: make([]Result, 0, len(strategies)),
	}

	for _, s := range strategies {
		for range cfg.Warmup {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			report.Sink += s.Run(ds.Queries)
		}

		runtime.GC()

		samples := make([]float64, 0, cfg.Repeat)
		var total time.Duration
		for range cfg.Repeat {
			if err := ctx.Err(); err != nil {
				return nil, err
			}

			start := time.Now()
			report.Sink += s.Run(ds.Queries)
			elapsed := time.Since(start)

			total += elapsed
			samples = append(samples, perQuery(elapsed, len(ds.Queries)))
		}

		res := Result{
			Name:    s.Name,
			Elapsed: total / time.Duration(cfg.Repeat),
			Samples: samples,
		}
		res.AvgNs, res.StdDevNs = meanStdDev(samples)
		report.Results = append(report.Results, res)

		logger.Debug().
			Str("strategy", s.Name).
			Float64("avg_ns", res.AvgNs).
			Float64("stddev_ns", res.StdDevNs).
			Msg("strategy timed")
	}

	report.normalize()
	report.Coverage = coverage(ds)

	return report, nil
}

// WriteDebug writes the sorted values, the flat layout and the layout weights,
// one per line.
func WriteDebug[T constraints.Unsigned](w io.Writer, ds *Dataset[T]) error {
	var buf []byte
	buf = stringify.AppendSequence(buf, ds.Values)
	buf = append(buf, '\n')
	buf = stringify.AppendSequence(buf, ds.Table.Layout())
	buf = append(buf, '\n')
	buf = stringify.AppendSequence(buf, ds.Weights())
	buf = append(buf, '\n')

	_, err := w.Write(buf)

	return err
}

func perQuery(elapsed time.Duration, queries int) float64 {
	if queries == 0 {
		return 0
	}

	return float64(elapsed.Nanoseconds()) / float64(queries)
}

func meanStdDev(samples []float64) (float64, float64) {
	if len(samples) < 2 {
		return stat.Mean(samples, nil), 0
	}

	return stat.MeanStdDev(samples, nil)
}

// coverage records which terminal positions the descent reached over the
// query set.
func coverage[T constraints.Unsigned](ds *Dataset[T]) Coverage {
	buf := ds.Table.Layout()
	n := len(buf)

	reached := roaring.New()
	for _, q := range ds.Queries {
		reached.Add(uint32(search.Index(buf, n, q)))
	}

	return Coverage{
		Slots:    n,
		Terminal: n - (n-1)/2,
		Reached:  reached.GetCardinality(),
	}
}
