// Package factory is the public surface of the sherrin data generator.
// A Factory is constructed for a set of seasons and hands out the
// derived AFL datasets in either tabular or record form.
//
// Conventions:
// - Keep fields unexported where possible and use functional options.
// - Invalid season configuration fails at construction, never later.
package factory

import (
	"math/rand"
	"time"

	"github.com/brianvoe/gofakeit/v7"

	"github.com/okian/sherrin/internal/domain/dataset"
	"github.com/okian/sherrin/internal/domain/schedule"
)

// Shape selects the output shape of a dataset.
type Shape int

const (
	// ShapeRecords returns rows as a list of column-keyed mappings.
	ShapeRecords Shape = iota
	// ShapeTable returns ordered columns plus rows of values.
	ShapeTable
)

// Dataset holds a generated dataset in the requested shape.
type Dataset struct {
	shape   Shape
	columns []string
	rows    [][]any
	records []map[string]any
}

// Shape reports the shape this dataset was built with.
func (d *Dataset) Shape() Shape { return d.shape }

// Columns returns the ordered column names.
func (d *Dataset) Columns() []string { return d.columns }

// Rows returns the tabular rows. Nil unless built with ShapeTable.
func (d *Dataset) Rows() [][]any { return d.rows }

// Records returns the rows as column-keyed mappings. Nil unless built
// with ShapeRecords.
func (d *Dataset) Records() []map[string]any { return d.records }

// Len returns the number of rows regardless of shape.
func (d *Dataset) Len() int {
	if d.shape == ShapeTable {
		return len(d.rows)
	}
	return len(d.records)
}

// Per-dataset offsets applied to the factory seed so that each dataset
// draws from its own deterministic stream and repeated calls return
// identical data.
const (
	resultsSeedOffset = 1
	oddsSeedOffset    = 2
	playersSeedOffset = 3
)

// Factory generates the AFL datasets for a fixed set of seasons. The
// base match schedule is generated once at construction; every derived
// dataset decorates the same match set.
type Factory struct {
	seed        int64
	seasonCount int
	seasonRange *schedule.Range

	seasons int
	matches []schedule.Match
}

// New creates a Factory using provided options and eagerly generates
// the base match schedule. It returns an error when the configured
// seasons fall outside [1897, current year].
func New(opts ...Option) (*Factory, error) {
	f := &Factory{
		seed:        time.Now().UnixNano(),
		seasonCount: 1,
	}
	for _, opt := range opts {
		opt(f)
	}

	rng := rand.New(rand.NewSource(f.seed)) //nolint:gosec // deterministic fixtures, not crypto

	var (
		r   schedule.Range
		err error
	)
	if f.seasonRange != nil {
		r, err = schedule.NewRange(f.seasonRange.Start, f.seasonRange.End)
	} else {
		r, err = schedule.RandomRange(rng, f.seasonCount)
	}
	if err != nil {
		return nil, err
	}

	gen := schedule.New(schedule.WithRand(rng))
	f.seasons = r.Len()
	f.matches = gen.Matches(r)
	return f, nil
}

// Matches exposes the base match schedule shared by all datasets.
func (f *Factory) Matches() []schedule.Match {
	return f.matches
}

// Seasons reports how many seasons the schedule covers.
func (f *Factory) Seasons() int {
	return f.seasons
}

// Seed reports the seed the factory was built with.
func (f *Factory) Seed() int64 {
	return f.seed
}

// Fixtures generates the fixture dataset in the requested shape.
func (f *Factory) Fixtures(shape Shape) *Dataset {
	return shaped(dataset.Fixtures(f.matches), shape)
}

// MatchResults generates the match results dataset in the requested shape.
func (f *Factory) MatchResults(shape Shape) *Dataset {
	return shaped(dataset.MatchResults(f.datasetRand(resultsSeedOffset), f.matches), shape)
}

// BettingOdds generates the betting odds dataset in the requested shape.
func (f *Factory) BettingOdds(shape Shape) *Dataset {
	return shaped(dataset.BettingOdds(f.datasetRand(oddsSeedOffset), f.matches), shape)
}

// Players generates the player stats dataset in the requested shape.
func (f *Factory) Players(shape Shape) *Dataset {
	faker := gofakeit.New(uint64(f.seed) + playersSeedOffset)
	return shaped(dataset.Players(f.datasetRand(playersSeedOffset), faker, f.matches), shape)
}

// datasetRand derives a per-dataset random source from the factory seed
// so each dataset call is independently reproducible.
func (f *Factory) datasetRand(offset int64) *rand.Rand {
	return rand.New(rand.NewSource(f.seed + offset)) //nolint:gosec // deterministic fixtures, not crypto
}

func shaped(frame dataset.Frame, shape Shape) *Dataset {
	d := &Dataset{shape: shape, columns: frame.Columns}
	if shape == ShapeTable {
		d.rows = frame.Rows
		return d
	}
	d.records = frame.Records()
	return d
}
