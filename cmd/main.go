package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	app "github.com/okian/tally/internal/app"
	"github.com/okian/tally/internal/config"
	"github.com/okian/tally/pkg/logger"
)

func main() {
	// Initialize logging first; logs go to stderr so stdout carries only
	// report output.
	if err := logger.Init(); err != nil {
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		return
	}
	log := logger.Get()

	// Root context with cancel on SIGINT/SIGTERM.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Load configuration (defaults -> optional file -> env). Flags below
	// take their defaults from it and override it.
	cfg, err := config.Load(ctx)
	if err != nil {
		log.Error(ctx, "failed to load config", logger.Error(err))
		return
	}

	var (
		topCount  = flag.Int("top", cfg.TopCount, "Number of top records to display")
		normalize = flag.Bool("normalize", cfg.Normalize, "Normalize values so they sum to 1.0")
		jsonOut   = flag.Bool("json", cfg.JSONOutput, "Emit structured JSON instead of text")
		logLevel  = flag.String("log-level", cfg.LogLevel, "Log level: debug, info, warn, error")
	)
	// Short spellings share the destination with the long ones.
	flag.IntVar(topCount, "t", cfg.TopCount, "Shorthand for -top")
	flag.BoolVar(normalize, "n", cfg.Normalize, "Shorthand for -normalize")
	flag.BoolVar(jsonOut, "j", cfg.JSONOutput, "Shorthand for -json")
	flag.Parse()

	// Apply configured log level (fallback to info on invalid input).
	if err := logger.SetLevelString(*logLevel); err != nil {
		log.Warn(ctx, "invalid log level; falling back to info", logger.String("log_level", *logLevel), logger.Error(err))
		_ = logger.SetLevelString("info")
	}

	svc := app.New(
		app.WithLogger(log),
		app.WithTopCount(*topCount),
		app.WithNormalize(*normalize),
		app.WithJSONOutput(*jsonOut),
	)

	// Run errors are reported but do not change the exit code: this scope
	// defines no failure exit path.
	if err := svc.Run(ctx); err != nil {
		log.Error(ctx, "run failed", logger.Error(err))
	}
}
