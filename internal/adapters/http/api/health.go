package api

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/okian/sherrin/pkg/metrics"
)

// HandleHealth handles GET /healthz requests with a minimal JSON body.
// The service has no external dependencies, so liveness is the only
// signal worth reporting.
func HandleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// MetricsHandler serves Prometheus metrics from the custom registry.
func MetricsHandler() http.Handler {
	return promhttp.HandlerFor(metrics.GetRegistry(), promhttp.HandlerOpts{})
}
