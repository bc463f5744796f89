package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/yuhakway/tracker/internal/metrics"
	"github.com/yuhakway/tracker/internal/progress"
)

type statusTableResponse struct {
	Statuses []progress.Projection `json:"statuses"`
	Steps    []progress.Step       `json:"steps"`
}

type statusResponse struct {
	Projection progress.Projection  `json:"projection"`
	Steps      []progress.StepState `json:"steps"`
}

// ListStatuses handles GET /statuses with the full status table in canonical order.
func ListStatuses(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, statusTableResponse{
		Statuses: progress.Table(),
		Steps:    progress.Steps(),
	})
}

// GetStatus handles GET /statuses/{status}. Unknown statuses get the fallback
// projection, never an error.
func GetStatus(w http.ResponseWriter, r *http.Request) {
	status := chi.URLParam(r, "status")
	p := progress.Project(status)
	metrics.ObserveProjection(status, p.Known)

	writeJSON(w, http.StatusOK, statusResponse{
		Projection: p,
		Steps:      progress.Track(status),
	})
}
