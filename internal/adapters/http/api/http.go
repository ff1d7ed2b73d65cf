// Package api declares HTTP contracts and route registration helpers
// for the fixture service.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/okian/sherrin/internal/config"
	"github.com/okian/sherrin/internal/domain/schedule"
	"github.com/okian/sherrin/pkg/factory"
	"github.com/okian/sherrin/pkg/logger"
	"github.com/okian/sherrin/pkg/metrics"
)

// Dataset endpoint names, also used as metric labels.
const (
	datasetFixtures     = "fixtures"
	datasetMatchResults = "match_results"
	datasetBettingOdds  = "betting_odds"
	datasetPlayers      = "players"
)

// Server wires HTTP routes for the fixture service.
type Server struct {
	cfg *config.Config
	log logger.Logger
}

// NewServer creates a new API server.
func NewServer(cfg *config.Config) *Server {
	return &Server{
		cfg: cfg,
		log: logger.Named("api"),
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(_ context.Context, mux *http.ServeMux) {
	mux.HandleFunc("/healthz", MetricsMiddleware(HandleHealth, "healthz"))
	mux.Handle("/metrics", MetricsHandler())
	mux.HandleFunc("/fixtures", MetricsMiddleware(s.datasetHandler(datasetFixtures), datasetFixtures))
	mux.HandleFunc("/match-results", MetricsMiddleware(s.datasetHandler(datasetMatchResults), datasetMatchResults))
	mux.HandleFunc("/betting-odds", MetricsMiddleware(s.datasetHandler(datasetBettingOdds), datasetBettingOdds))
	mux.HandleFunc("/players", MetricsMiddleware(s.datasetHandler(datasetPlayers), datasetPlayers))
}

// datasetRequest captures the query parameters shared by every dataset
// endpoint: an inclusive season range (or none for a random one) and an
// optional seed for reproducible responses.
type datasetRequest struct {
	start   int
	end     int
	hasSpan bool
	seed    int64
	hasSeed bool
}

func (s *Server) parseRequest(r *http.Request) (datasetRequest, error) {
	var req datasetRequest
	q := r.URL.Query()

	startStr, endStr := q.Get("start"), q.Get("end")
	switch {
	case startStr == "" && endStr == "":
		// Random seasons; span defaults from config.
	case startStr == "" || endStr == "":
		return req, fmt.Errorf("%w: start and end must be provided together", ErrBadRequest)
	default:
		start, err := strconv.Atoi(startStr)
		if err != nil {
			return req, fmt.Errorf("%w: invalid start season %q", ErrBadRequest, startStr)
		}
		end, err := strconv.Atoi(endStr)
		if err != nil {
			return req, fmt.Errorf("%w: invalid end season %q", ErrBadRequest, endStr)
		}
		if end-start+1 > s.cfg.MaxSeasonSpan {
			return req, fmt.Errorf("%w: at most %d seasons per request", ErrSpanExceeded, s.cfg.MaxSeasonSpan)
		}
		req.start, req.end, req.hasSpan = start, end, true
	}

	if seedStr := q.Get("seed"); seedStr != "" {
		seed, err := strconv.ParseInt(seedStr, 10, 64)
		if err != nil {
			return req, fmt.Errorf("%w: invalid seed %q", ErrBadRequest, seedStr)
		}
		req.seed, req.hasSeed = seed, true
	}
	return req, nil
}

func (s *Server) newFactory(req datasetRequest) (*factory.Factory, error) {
	opts := []factory.Option{}
	if req.hasSpan {
		// The API takes inclusive season ranges; the factory range is
		// half-open.
		opts = append(opts, factory.WithSeasonRange(req.start, req.end+1))
	} else {
		opts = append(opts, factory.WithSeasonCount(s.cfg.DefaultSeasonCount))
	}
	if req.hasSeed {
		opts = append(opts, factory.WithSeed(req.seed))
	}
	return factory.New(opts...)
}

// datasetHandler builds the GET handler for one dataset endpoint.
func (s *Server) datasetHandler(name string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.NotFound(w, r)
			return
		}

		req, err := s.parseRequest(r)
		if err != nil {
			writeError(w, http.StatusBadRequest, "bad_request", err)
			return
		}

		f, err := s.newFactory(req)
		if err != nil {
			if errors.Is(err, schedule.ErrInvalidSeasons) {
				writeError(w, http.StatusBadRequest, "invalid_seasons", err)
				return
			}
			writeError(w, http.StatusInternalServerError, "internal_error", err)
			return
		}

		start := time.Now()
		ds := s.buildDataset(f, name)
		metrics.ObserveGenerationDuration(name, time.Since(start).Seconds())
		metrics.RecordRowsGenerated(name, ds.Len())
		metrics.RecordMatchesGenerated(len(f.Matches()))
		metrics.RecordSeasonsGenerated(f.Seasons())

		s.log.Debug(r.Context(), "dataset generated",
			logger.String("dataset", name),
			logger.Int("rows", ds.Len()),
			logger.Int64("seed", f.Seed()))

		writeJSON(w, http.StatusOK, ds.Records())
	}
}

func (s *Server) buildDataset(f *factory.Factory, name string) *factory.Dataset {
	switch name {
	case datasetMatchResults:
		return f.MatchResults(factory.ShapeRecords)
	case datasetBettingOdds:
		return f.BettingOdds(factory.ShapeRecords)
	case datasetPlayers:
		return f.Players(factory.ShapeRecords)
	default:
		return f.Fixtures(factory.ShapeRecords)
	}
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}
