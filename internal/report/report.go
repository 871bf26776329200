// Package report renders a ranked working set and its summary statistics,
// either as human-readable text or as a pretty-printed JSON document.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/okian/tally/internal/domain/model"
	"github.com/okian/tally/internal/domain/stats"
)

// undefinedMarker renders a nil mean/stddev in text mode.
const undefinedMarker = "undefined"

// jsonIndent is the indent unit for structured output.
const jsonIndent = "  "

// Document is the structured output shape: the displayed top records plus
// statistics over the full working set.
type Document struct {
	Top   []model.Record `json:"top"`
	Stats stats.Summary  `json:"stats"`
}

// WriteText writes the human-readable report: a header, one line per top
// record, a blank line, then a one-line statistics summary.
func WriteText(w io.Writer, top []model.Record, summary stats.Summary) error {
	if _, err := fmt.Fprintln(w, "Top records:"); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	for _, r := range top {
		if _, err := fmt.Fprintf(w, " - (%d) %s: %s\n", r.ID, r.Name, formatFloat(r.Value)); err != nil {
			return fmt.Errorf("write report: %w", err)
		}
	}

	line := fmt.Sprintf("\nStats — count: %d, sum: %s, mean: %s, stddev: %s\n",
		summary.Count,
		formatFloat(summary.Sum),
		formatOptional(summary.Mean),
		formatOptional(summary.Stddev),
	)
	if _, err := io.WriteString(w, line); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}

// WriteJSON writes the report as a single pretty-printed JSON object.
// Undefined mean/stddev appear as null.
func WriteJSON(w io.Writer, top []model.Record, summary stats.Summary) error {
	doc := Document{Top: top, Stats: summary}
	if doc.Top == nil {
		doc.Top = []model.Record{}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", jsonIndent)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encode report: %w", err)
	}
	return nil
}

// formatFloat renders a float with the minimal digits that round-trip.
func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// formatOptional renders an absent value as the undefined marker.
func formatOptional(v *float64) string {
	if v == nil {
		return undefinedMarker
	}
	return formatFloat(*v)
}
