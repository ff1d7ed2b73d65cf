package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/okian/sherrin/internal/sink"
	"github.com/okian/sherrin/pkg/factory"
	"github.com/okian/sherrin/pkg/logger"
	"github.com/okian/sherrin/pkg/metrics"
)

// Default configuration constants.
const (
	defaultSeasons      = 1
	defaultFormat       = "json"
	defaultDatasets     = "fixtures,match_results,betting_odds,players"
	directoryPermission = 0750
)

var errUnknownDataset = errors.New("unknown dataset")

func main() {
	var (
		seasons  = flag.Int("seasons", defaultSeasons, "Number of seasons to generate, starting from a random year")
		start    = flag.Int("start", 0, "First season of an explicit range (requires -end)")
		end      = flag.Int("end", 0, "Last season of an explicit range, inclusive (requires -start)")
		seed     = flag.Int64("seed", 0, "Random seed; 0 picks one from the clock")
		format   = flag.String("format", defaultFormat, "Output format: json, csv or sqlite")
		outDir   = flag.String("out", ".", "Output directory")
		datasets = flag.String("datasets", defaultDatasets, "Comma-separated datasets to write")
	)
	flag.Parse()

	if err := logger.Init(); err != nil {
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		os.Exit(1)
	}

	ctx := context.Background()
	log := logger.Get()
	runID := uuid.New().String()

	outFormat, err := sink.ParseFormat(*format)
	if err != nil {
		log.Error(ctx, "invalid format", logger.Error(err))
		os.Exit(1)
	}

	opts := []factory.Option{}
	switch {
	case *start != 0 || *end != 0:
		opts = append(opts, factory.WithSeasonRange(*start, *end+1))
	default:
		opts = append(opts, factory.WithSeasonCount(*seasons))
	}
	if *seed != 0 {
		opts = append(opts, factory.WithSeed(*seed))
	}

	f, err := factory.New(opts...)
	if err != nil {
		log.Error(ctx, "invalid season configuration", logger.Error(err))
		os.Exit(1)
	}

	metrics.RecordSeasonsGenerated(f.Seasons())
	metrics.RecordMatchesGenerated(len(f.Matches()))

	log.Info(ctx, "generating datasets",
		logger.String("runID", runID),
		logger.Int("matches", len(f.Matches())),
		logger.Int64("seed", f.Seed()),
		logger.String("format", string(outFormat)),
		logger.String("out", *outDir))

	if err := os.MkdirAll(*outDir, directoryPermission); err != nil {
		log.Error(ctx, "failed to create output directory", logger.Error(err))
		os.Exit(1)
	}

	startTime := time.Now()
	for _, name := range strings.Split(*datasets, ",") {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		if err := writeDataset(ctx, f, outFormat, *outDir, name); err != nil {
			log.Error(ctx, "failed to write dataset", logger.String("dataset", name), logger.Error(err))
			os.Exit(1)
		}
	}

	log.Info(ctx, "generation complete",
		logger.String("runID", runID),
		logger.Duration("elapsed", time.Since(startTime)))
}

func writeDataset(ctx context.Context, f *factory.Factory, format sink.Format, outDir, name string) error {
	var ds *factory.Dataset
	switch name {
	case "fixtures":
		ds = f.Fixtures(factory.ShapeTable)
	case "match_results":
		ds = f.MatchResults(factory.ShapeTable)
	case "betting_odds":
		ds = f.BettingOdds(factory.ShapeTable)
	case "players":
		ds = f.Players(factory.ShapeTable)
	default:
		return fmt.Errorf("%w: %q", errUnknownDataset, name)
	}

	start := time.Now()
	path := filepath.Join(outDir, name+"."+format.Extension())
	if err := sink.Write(ctx, format, path, name, ds); err != nil {
		return err
	}

	metrics.RecordRowsGenerated(name, ds.Len())
	metrics.ObserveGenerationDuration(name, time.Since(start).Seconds())

	logger.Get().Info(ctx, "dataset written",
		logger.String("dataset", name),
		logger.String("path", path),
		logger.Int("rows", ds.Len()))
	return nil
}
