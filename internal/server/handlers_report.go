package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/claude/healthfuture/internal/charts"
	"github.com/claude/healthfuture/internal/dashboard"
	"github.com/claude/healthfuture/internal/models"
	"github.com/claude/healthfuture/internal/report"
	"github.com/go-chi/chi/v5"
)

// handleReport streams the current profile as a CSV attachment.
func (s *Server) handleReport(w http.ResponseWriter, r *http.Request) {
	body, filename, err := s.dash.Report(r.Context(), s.now())
	if errors.Is(err, report.ErrNoProfile) {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": err.Error()})
		return
	}
	if err != nil {
		s.log.Error("report error", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	w.Header().Set("Content-Type", "text/csv;charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	w.Write(body)
}

// handleChartPage renders one metric as a standalone ECharts page.
func (s *Server) handleChartPage(w http.ResponseWriter, r *http.Request) {
	metric, err := models.ParseMetric(chi.URLParam(r, "metric"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	p, err := s.dash.CurrentProfile(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	points, err := s.dash.Chart(r.Context(), metric)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, dashboard.ErrNotCharted) {
			status = http.StatusBadRequest
		}
		http.Error(w, err.Error(), status)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := charts.Render(w, p.Name, metric, points); err != nil {
		s.log.Error("chart render error", "metric", metric, "error", err)
	}
}
