package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/claude/healthfuture/internal/dashboard"
	"github.com/claude/healthfuture/internal/mockdata"
	"github.com/claude/healthfuture/internal/models"
	"github.com/claude/healthfuture/internal/mood"
	"github.com/go-chi/chi/v5"
)

func (s *Server) handleProfiles(w http.ResponseWriter, r *http.Request) {
	profiles, err := s.dash.Profiles(r.Context())
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, profiles)
}

func (s *Server) handleCurrentProfile(w http.ResponseWriter, r *http.Request) {
	p, err := s.dash.CurrentProfile(r.Context())
	if err != nil {
		writeDashboardError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (s *Server) handleSelectProfile(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ID string `json:"id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}
	if err := s.dash.SelectProfile(r.Context(), req.ID); err != nil {
		writeDashboardError(w, err)
		return
	}
	s.handleCurrentProfile(w, r)
}

func (s *Server) handleTimeRange(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]models.TimeRange{"range": s.dash.TimeRange(r.Context())})
}

func (s *Server) handleSetTimeRange(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Range string `json:"range"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}
	tr, err := models.ParseTimeRange(req.Range)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	s.dash.SetTimeRange(r.Context(), tr)
	writeJSON(w, http.StatusOK, map[string]models.TimeRange{"range": tr})
}

func (s *Server) handleSimulation(w http.ResponseWriter, r *http.Request) {
	sim, err := s.dash.Simulation(r.Context())
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, sim)
}

func (s *Server) handleUpdateSimulation(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Value *float64 `json:"value"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}
	if req.Value == nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "value is required"})
		return
	}
	sim, err := s.dash.UpdateSimulation(r.Context(), chi.URLParam(r, "key"), *req.Value)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, sim)
}

func (s *Server) handleProjection(w http.ResponseWriter, r *http.Request) {
	data, err := s.dash.Projection(r.Context())
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, data)
}

func (s *Server) handleToggleProjections(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]bool{"show_projections": s.dash.ToggleProjections(r.Context())})
}

func (s *Server) handleChart(w http.ResponseWriter, r *http.Request) {
	metric, err := models.ParseMetric(chi.URLParam(r, "metric"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	points, err := s.dash.Chart(r.Context(), metric)
	if err != nil {
		writeDashboardError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, points)
}

type moodRequest struct {
	Text string      `json:"text"`
	Mood models.Mood `json:"mood"`
}

// handleAnalyzeMood accepts either free text or a quick-select mood, which
// is expanded to the canned prompt for that mood.
func (s *Server) handleAnalyzeMood(w http.ResponseWriter, r *http.Request) {
	var req moodRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}
	text := req.Text
	if text == "" && req.Mood != "" {
		text = mood.Prompt(req.Mood)
	}
	res, err := s.dash.AnalyzeMood(r.Context(), text)
	if err != nil {
		writeDashboardError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

type moodOption struct {
	Mood   models.Mood `json:"mood"`
	Emoji  string      `json:"emoji"`
	Prompt string      `json:"prompt"`
}

// handleMoods lists the quick-select moods with their emoji and the text
// each one submits for analysis.
func (s *Server) handleMoods(w http.ResponseWriter, r *http.Request) {
	out := make([]moodOption, len(models.Moods))
	for i, m := range models.Moods {
		out[i] = moodOption{Mood: m, Emoji: mockdata.MoodEmoji(m), Prompt: mood.Prompt(m)}
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleSuggestions(w http.ResponseWriter, r *http.Request) {
	suggestions, err := s.dash.Suggestions(r.Context())
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, suggestions)
}

func (s *Server) handleGoals(w http.ResponseWriter, r *http.Request) {
	goals, err := s.dash.Goals(r.Context())
	if err != nil {
		writeDashboardError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, goals)
}

func (s *Server) handleAddGoal(w http.ResponseWriter, r *http.Request) {
	var req models.NewGoal
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}
	if _, err := models.ParseMetric(string(req.Metric)); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	goal, err := s.dash.AddGoal(r.Context(), req)
	if err != nil {
		writeDashboardError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, goal)
}

func (s *Server) handleUpdateGoal(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Current *float64 `json:"current"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}
	if req.Current == nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "current is required"})
		return
	}
	id := chi.URLParam(r, "id")
	found, err := s.dash.UpdateGoal(r.Context(), id, *req.Current)
	if err != nil {
		writeDashboardError(w, err)
		return
	}
	if !found {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "goal not found: " + id})
		return
	}
	s.handleGoals(w, r)
}

func (s *Server) handleIncrementGoal(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	goal, found := s.dash.IncrementGoal(r.Context(), id)
	if !found {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "goal not found: " + id})
		return
	}
	writeJSON(w, http.StatusOK, goal)
}

func (s *Server) handleGoalProgress(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]float64{"progress": s.dash.GoalProgress(r.Context())})
}

// writeDashboardError maps dashboard sentinel errors onto HTTP statuses.
func writeDashboardError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, dashboard.ErrNoProfile), errors.Is(err, dashboard.ErrUnknownProfile):
		status = http.StatusNotFound
	case errors.Is(err, dashboard.ErrEmptyMoodInput), errors.Is(err, dashboard.ErrNotCharted):
		status = http.StatusBadRequest
	}
	writeJSON(w, status, map[string]string{"error": err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
