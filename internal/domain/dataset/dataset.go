// Package dataset builds the derived AFL datasets from a base match
// schedule. Each builder overlays randomized but internally consistent
// fields and emits a tabular Frame.
package dataset

import (
	"math/rand"
	"time"
)

// Timestamp layouts used across datasets.
const (
	dateTimeLayout = "2006-01-02 15:04:05"
	dateLayout     = "2006-01-02"
)

// Frame is an ordered tabular dataset: column names plus rows of values.
type Frame struct {
	Columns []string
	Rows    [][]any
}

// Len returns the number of rows.
func (f Frame) Len() int {
	return len(f.Rows)
}

// Records converts the frame to a list of column-keyed mappings.
func (f Frame) Records() []map[string]any {
	records := make([]map[string]any, 0, len(f.Rows))
	for _, row := range f.Rows {
		record := make(map[string]any, len(f.Columns))
		for i, col := range f.Columns {
			record[col] = row[i]
		}
		records = append(records, record)
	}
	return records
}

// randBetween returns a random int in [lo, hi), matching the half-open
// convention used for all the stat ranges in this package.
func randBetween(rng *rand.Rand, lo, hi int) int {
	return lo + rng.Intn(hi-lo)
}

// maxRoundPerSeason maps each season to its highest round number.
func maxRoundPerSeason(seasons []int, rounds []int) map[int]int {
	out := make(map[int]int)
	for i, season := range seasons {
		if rounds[i] > out[season] {
			out[season] = rounds[i]
		}
	}
	return out
}

// seasonGameCounter numbers matches within a season, starting at 0.
type seasonGameCounter map[int]int

func (c seasonGameCounter) next(season int) int {
	n := c[season]
	c[season] = n + 1
	return n
}

func formatDateTime(t time.Time) string { return t.Format(dateTimeLayout) }
func formatDate(t time.Time) string     { return t.Format(dateLayout) }
