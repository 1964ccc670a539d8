// Command fbstbench times the flattened tree descent against a no-op pass,
// linear scan, binary search and a B-tree.
//
// Usage:
//
//	fbstbench [flags] <number_of_entries> <entry_size> <number_of_queries>
//
// entry_size selects the unsigned entry width in bytes (1, 2, 4 or 8); any
// other value selects 8. Results go to stdout, logs to stderr.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/rs/zerolog"

	"github.com/arloliu/fbst/bench"
	"github.com/arloliu/fbst/format"
	"github.com/arloliu/fbst/table"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()

	os.Exit(code)
}

func run(ctx context.Context, argv []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("fbstbench", flag.ContinueOnError)
	fs.SetOutput(stderr)

	configPath := fs.String("config", "", "Optional YAML config file")
	seed := fs.Int64("seed", 0, "Random seed (0 picks one from the clock)")
	repeat := fs.Int("repeat", 1, "Timed passes per strategy")
	warmup := fs.Int("warmup", 0, "Untimed passes per strategy")
	layoutName := fs.String("layout", "inorder", "Flat layout: inorder or midpoint")
	verify := fs.Bool("verify", false, "Check that all search entry points agree before timing")
	workers := fs.Int("workers", 0, "Verify goroutines (0 uses GOMAXPROCS)")
	debug := fs.Bool("debug", false, "Print values, layout and weights")
	jsonOut := fs.Bool("json", false, "Print one JSON object per strategy")
	sweep := fs.String("sweep", "", "Comma-separated table sizes to sweep instead of number_of_entries")
	save := fs.String("save", "", "Write the encoded table to this file")
	compression := fs.String("compression", "none", "Codec for -save: none, zstd, s2 or lz4")
	logLevel := fs.String("log-level", "info", "Log level")

	if err := fs.Parse(argv); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}

		return 1
	}

	args, err := parseArgs(fs.Args())
	if err != nil {
		fmt.Fprintln(stderr, err)
		if errors.Is(err, errUsage) {
			fs.PrintDefaults()
		}

		return 1
	}

	cfg, err := LoadConfig(*configPath)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "seed":
			cfg.Seed = *seed
		case "repeat":
			cfg.Repeat = *repeat
		case "warmup":
			cfg.Warmup = *warmup
		case "layout":
			cfg.Layout = *layoutName
		case "verify":
			cfg.Verify = *verify
		case "workers":
			cfg.Workers = *workers
		case "debug":
			cfg.Debug = *debug
		case "json":
			cfg.JSON = *jsonOut
		case "sweep":
			cfg.Sweep = *sweep
		case "save":
			cfg.Save = *save
		case "compression":
			cfg.Compression = *compression
		case "log-level":
			cfg.LogLevel = *logLevel
		}
	})

	logger, err := newLogger(stderr, cfg.LogLevel)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}

	if err := execute(ctx, args, cfg, logger, stdout); err != nil {
		logger.Error().Err(err).Msg("benchmark failed")
		return 1
	}

	return 0
}

func execute(ctx context.Context, args Args, cfg *Config, logger zerolog.Logger, stdout io.Writer) (err error) {
	layoutType, ok := format.ParseLayout(cfg.Layout)
	if !ok {
		return fmt.Errorf("unknown layout %q", cfg.Layout)
	}

	compressionType, ok := format.ParseCompression(cfg.Compression)
	if !ok {
		return fmt.Errorf("unknown compression %q", cfg.Compression)
	}

	if cfg.Save != "" && cfg.Sweep != "" {
		return errors.New("-save cannot be combined with -sweep")
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	benchCfg := bench.DefaultConfig(args.Entries, args.Queries)
	benchCfg.Width = args.Width
	benchCfg.Layout = layoutType
	benchCfg.Seed = seed
	benchCfg.Repeat = cfg.Repeat
	benchCfg.Warmup = cfg.Warmup
	benchCfg.Workers = cfg.Workers
	benchCfg.Verify = cfg.Verify
	benchCfg.Debug = cfg.Debug

	logger = logger.With().Int64("seed", seed).Logger()
	logger.Info().
		Str("width", args.Width.String()).
		Int("entries", args.Entries).
		Int("queries", args.Queries).
		Str("layout", layoutType.String()).
		Msg("starting benchmark")

	runner := bench.NewRunner(benchCfg, logger)
	if cfg.Debug {
		runner.SetDebugOutput(stdout)
	}

	if cfg.Save != "" {
		f, createErr := os.Create(cfg.Save)
		if createErr != nil {
			return createErr
		}
		defer func() {
			if cerr := f.Close(); cerr != nil && err == nil {
				err = cerr
			}
		}()
		runner.SetSaveOutput(f, table.WithCompression(compressionType))
	}

	if cfg.Sweep != "" {
		sizes, err := parseSizes(cfg.Sweep)
		if err != nil {
			return err
		}

		result, err := runner.Sweep(ctx, sizes)
		if err != nil {
			return err
		}

		return result.Write(stdout)
	}

	report, err := runner.RunWidth(ctx)
	if err != nil {
		return err
	}

	if cfg.JSON {
		return report.WriteJSON(stdout)
	}

	return report.Write(stdout)
}
