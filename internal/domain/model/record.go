// Package model contains domain models passed between layers.
package model

// Record represents one data point in a working set. Records are value
// types: operations that change a record's value build a new Record
// rather than mutating in place.
type Record struct {
	ID    int     `json:"id"`    // unique within a working set by convention, not enforced
	Name  string  `json:"name"`  // text label
	Value float64 `json:"value"` // may be zero or negative
}
