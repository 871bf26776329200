// Package stats provides pure statistics operations over ordered sets of
// records. None of the operations mutate their input; the context is used
// only for log correlation.
package stats

import (
	"context"
	"math"
	"sort"

	"github.com/okian/tally/internal/domain/model"
	"github.com/okian/tally/pkg/logger"
)

// Summary holds aggregate statistics for a working set. Mean and Stddev
// are nil when Count is 0: "no data" is distinct from "zero variance",
// and both fields marshal to JSON null in that case.
type Summary struct {
	Count  int      `json:"count"`
	Sum    float64  `json:"sum"`
	Mean   *float64 `json:"mean"`
	Stddev *float64 `json:"stddev"`
}

// Normalize rescales record values so they sum to 1.0. When the values sum
// to exactly 0 there is no meaningful scale; the input is returned
// unchanged and a warning is logged. Never fails.
func Normalize(ctx context.Context, records []model.Record) []model.Record {
	total := 0.0
	for _, r := range records {
		total += r.Value
	}

	if total == 0 {
		logger.Get().Warn(ctx, "total value is zero, skipping normalization", logger.Int("count", len(records)))
		return records
	}

	logger.Get().Debug(ctx, "normalizing records", logger.Float64("total", total), logger.Int("count", len(records)))

	normalized := make([]model.Record, len(records))
	for i, r := range records {
		normalized[i] = model.Record{ID: r.ID, Name: r.Name, Value: r.Value / total}
	}
	return normalized
}

// TopN returns the n highest-valued records, sorted descending by value.
// Ties keep their input order. n <= 0 yields an empty slice; n beyond the
// set length yields the whole set sorted.
func TopN(ctx context.Context, records []model.Record, n int) []model.Record {
	if n <= 0 {
		logger.Get().Debug(ctx, "top-n requested with non-positive n", logger.Int("n", n))
		return []model.Record{}
	}

	sorted := make([]model.Record, len(records))
	copy(sorted, records)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Value > sorted[j].Value
	})

	if n > len(sorted) {
		n = len(sorted)
	}
	return sorted[:n]
}

// Summarize computes count, sum, mean, and population standard deviation
// (divisor = count, not count-1) for a working set. Never fails; NaN or
// overflow in the input propagates to the caller.
func Summarize(ctx context.Context, records []model.Record) Summary {
	count := len(records)
	if count == 0 {
		return Summary{Count: 0, Sum: 0.0}
	}

	sum := 0.0
	for _, r := range records {
		sum += r.Value
	}
	mean := sum / float64(count)

	variance := 0.0
	for _, r := range records {
		d := r.Value - mean
		variance += d * d
	}
	variance /= float64(count)
	stddev := math.Sqrt(variance)

	return Summary{Count: count, Sum: sum, Mean: &mean, Stddev: &stddev}
}
