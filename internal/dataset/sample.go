// Package dataset builds the fixed demo working set.
package dataset

import (
	"github.com/okian/tally/internal/domain/model"
)

// BuildSample returns the five-record demo set. Deterministic; each call
// returns a fresh slice so callers may reorder it freely.
func BuildSample() []model.Record {
	return []model.Record{
		{ID: 1, Name: "alpha", Value: 10.0},
		{ID: 2, Name: "beta", Value: 5.0},
		{ID: 3, Name: "gamma", Value: 0.0},
		{ID: 4, Name: "delta", Value: 2.5},
		{ID: 5, Name: "epsilon", Value: 7.5},
	}
}
