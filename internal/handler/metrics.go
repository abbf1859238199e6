package handler

import (
	"fmt"
	"net/http"

	"github.com/dishly/dishly/internal/metrics"
)

// MetricsHandler exposes in-memory metrics.
type MetricsHandler struct {
	snapshotter metrics.Snapshotter
}

// NewMetricsHandler creates a new MetricsHandler.
func NewMetricsHandler(snapshotter metrics.Snapshotter) *MetricsHandler {
	return &MetricsHandler{snapshotter: snapshotter}
}

// Metrics returns metrics in Prometheus exposition format.
func (h *MetricsHandler) Metrics(w http.ResponseWriter, r *http.Request) {
	if h.snapshotter == nil {
		w.WriteHeader(http.StatusServiceUnavailable)
		return
	}

	snap := h.snapshotter.Snapshot()

	w.Header().Set("Content-Type", "text/plain; version=0.0.4")

	writeMetric(w, "dishly_users_registered_total %d\n", snap.UsersRegistered)
	writeMetric(w, "dishly_logins_total{status=\"success\"} %d\n", snap.LoginsSucceeded)
	writeMetric(w, "dishly_logins_total{status=\"failed\"} %d\n", snap.LoginsFailed)

	writeMetric(w, "dishly_recipes_created_total %d\n", snap.RecipesCreated)
	writeMetric(w, "dishly_recipes_updated_total %d\n", snap.RecipesUpdated)
	writeMetric(w, "dishly_recipes_deleted_total %d\n", snap.RecipesDeleted)
}

func writeMetric(w http.ResponseWriter, format string, args ...any) {
	_, _ = fmt.Fprintf(w, format, args...)
}
