// Command gmsample evaluates a set of interpolation curves and writes the
// samples as CSV.
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/oliverbestmann/gm/internal/sample"
	"github.com/pkg/profile"
)

func main() {
	// deferred calls, like stopping the profiler, run before exiting
	os.Exit(sampleMain())
}

func sampleMain() int {
	var (
		configPath  = flag.String("config", "", "curve set to merge over the built-in defaults")
		outPath     = flag.String("out", "", "output csv file, stdout if empty")
		profileMode = flag.String("profile", "", "enable profiling: cpu|mem")
		verbose     = flag.Bool("v", false, "enable debug logging")
	)

	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	switch *profileMode {
	case "":
	case "cpu":
		defer profile.Start(profile.CPUProfile, profile.Quiet).Stop()
	case "mem":
		defer profile.Start(profile.MemProfile, profile.Quiet).Stop()
	default:
		logger.Error("Unknown profile mode", slog.String("profile", *profileMode))
		return 1
	}

	if err := run(logger, *configPath, *outPath); err != nil {
		logger.Error("Sampling failed", slog.String("error", err.Error()))
		return 1
	}

	return 0
}

func run(logger *slog.Logger, configPath, outPath string) (err error) {
	cfg, err := sample.Load(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger.Debug("Config loaded",
		slog.String("path", configPath),
		slog.Int("samples", cfg.Samples),
		slog.Int("curves", len(cfg.Curves)),
	)

	rows := sample.NewSampler(logger).Sample(cfg)

	var out io.Writer = os.Stdout

	if outPath != "" {
		fp, createErr := os.Create(outPath)
		if createErr != nil {
			return fmt.Errorf("creating output file: %w", createErr)
		}

		defer func() {
			if closeErr := fp.Close(); closeErr != nil && err == nil {
				err = fmt.Errorf("closing output file: %w", closeErr)
			}
		}()

		out = fp
	}

	return sample.WriteCSV(out, rows)
}
