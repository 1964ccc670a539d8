package bench

import (
	"fmt"
	"runtime"

	"github.com/arloliu/fbst/errs"
	"github.com/arloliu/fbst/format"
)

// Config describes one benchmark run.
type Config struct {
	// Entries is the number of values in the table. Must be at least 1.
	Entries int
	// Queries is the number of random queries per timed pass.
	Queries int
	// Width selects the unsigned entry type.
	Width format.Width
	// Layout selects the flat layout builder.
	Layout format.LayoutType
	// Seed seeds the data generator. Zero picks a random seed.
	Seed int64
	// Repeat is the number of timed passes per strategy.
	Repeat int
	// Warmup is the number of untimed passes per strategy before timing.
	Warmup int
	// Workers bounds the goroutines used by Verify.
	Workers int
	// Verify checks that all search entry points agree before timing.
	Verify bool
	// Debug writes the values, layout and weights before timing.
	Debug bool
}

// DefaultConfig returns a Config with the harness defaults for the given
// sizes.
func DefaultConfig(entries, queries int) Config {
	return Config{
		Entries: entries,
		Queries: queries,
		Width:   format.Width64,
		Layout:  format.LayoutInOrder,
		Repeat:  1,
		Warmup:  0,
		Workers: runtime.GOMAXPROCS(0),
	}
}

// Validate checks the configuration.
//
// Returns errs.ErrEmptyInput when Entries is zero, errs.ErrInvalidWidth or
// errs.ErrInvalidLayout for unsupported selectors, and a wrapped
// errs.ErrOutOfRange for negative counts.
func (c Config) Validate() error {
	if c.Entries == 0 {
		return fmt.Errorf("%w: table must have at least 1 entry", errs.ErrEmptyInput)
	}
	if c.Entries < 0 {
		return fmt.Errorf("%w: entries %d", errs.ErrOutOfRange, c.Entries)
	}
	if c.Queries < 0 {
		return fmt.Errorf("%w: queries %d", errs.ErrOutOfRange, c.Queries)
	}
	if !c.Width.IsValid() {
		return fmt.Errorf("%w: %d", errs.ErrInvalidWidth, c.Width)
	}

	switch c.Layout {
	case format.LayoutInOrder, format.LayoutMidpoint:
	default:
		return fmt.Errorf("%w: %s", errs.ErrInvalidLayout, c.Layout)
	}

	if c.Repeat < 1 {
		return fmt.Errorf("%w: repeat %d", errs.ErrOutOfRange, c.Repeat)
	}
	if c.Warmup < 0 {
		return fmt.Errorf("%w: warmup %d", errs.ErrOutOfRange, c.Warmup)
	}

	return nil
}

func (c Config) workers() int {
	if c.Workers > 0 {
		return c.Workers
	}

	return runtime.GOMAXPROCS(0)
}
