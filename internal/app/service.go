// Package service provides the core business service that drives a single
// report run: build the working set, optionally normalize it, rank it, and
// render the result.
package service

import (
	"context"
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/okian/tally/internal/dataset"
	"github.com/okian/tally/internal/domain/stats"
	"github.com/okian/tally/internal/report"
	"github.com/okian/tally/pkg/logger"
)

// defaultTopCount matches the config default; New must work without options.
const defaultTopCount = 3

// Service runs the record ranking pipeline.
type Service struct {
	// Configuration
	topCount   int
	normalize  bool
	jsonOutput bool

	// Output destination, stdout unless overridden.
	out io.Writer

	// Logging
	logger logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithTopCount sets how many top records to display. Non-positive counts
// are legal and yield an empty top list.
func WithTopCount(count int) Option {
	return func(s *Service) {
		s.topCount = count
	}
}

// WithNormalize enables normalization of the working set before ranking
// and statistics.
func WithNormalize(normalize bool) Option {
	return func(s *Service) {
		s.normalize = normalize
	}
}

// WithJSONOutput selects structured output instead of human-readable text.
func WithJSONOutput(jsonOutput bool) Option {
	return func(s *Service) {
		s.jsonOutput = jsonOutput
	}
}

// WithOutput sets a custom output writer, e.g. a buffer in tests.
func WithOutput(w io.Writer) Option {
	return func(s *Service) {
		if w != nil {
			s.out = w
		}
	}
}

// WithLogger sets a custom logger for the service.
func WithLogger(log logger.Logger) Option {
	return func(s *Service) {
		if log != nil {
			s.logger = log
		}
	}
}

// New creates a Service with the provided options.
func New(opts ...Option) *Service {
	s := &Service{
		topCount: defaultTopCount,
		out:      os.Stdout,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = logger.Get()
	}
	return s
}

// Run performs one straight-line pass over the demo working set and writes
// the report. Statistics are computed over the full (possibly normalized)
// working set, never over the displayed top subset. The only failure mode
// is a write error on the output.
func (s *Service) Run(ctx context.Context) error {
	runID := uuid.New().String()
	s.logger.Info(ctx, "starting run",
		logger.String("run_id", runID),
		logger.Int("top", s.topCount),
		logger.Bool("normalize", s.normalize),
		logger.Bool("json", s.jsonOutput),
	)

	working := dataset.BuildSample()
	if s.normalize {
		working = stats.Normalize(ctx, working)
	}

	top := stats.TopN(ctx, working, s.topCount)
	summary := stats.Summarize(ctx, working)

	var err error
	if s.jsonOutput {
		err = report.WriteJSON(s.out, top, summary)
	} else {
		err = report.WriteText(s.out, top, summary)
	}
	if err != nil {
		return err
	}

	s.logger.Info(ctx, "run completed", logger.String("run_id", runID), logger.Int("displayed", len(top)))
	return nil
}
