package server

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/claude/healthfuture/internal/auth"
	"github.com/claude/healthfuture/internal/dashboard"
	"github.com/go-chi/chi/v5"
)

// Server holds dependencies for HTTP handlers.
type Server struct {
	dash   *dashboard.Service
	auth   *auth.Authenticator
	log    *slog.Logger
	now    func() time.Time
	router chi.Router
}

// New creates a new Server with all routes configured.
func New(dash *dashboard.Service, authn *auth.Authenticator, log *slog.Logger) *Server {
	s := &Server{
		dash:   dash,
		auth:   authn,
		log:    log,
		now:    time.Now,
		router: chi.NewRouter(),
	}
	s.routes()
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) routes() {
	s.router.Use(RequestLogging(s.log))
	s.router.Use(CORS)

	// Session endpoints (public)
	s.router.Route("/api/v1/auth", func(r chi.Router) {
		r.Post("/login", s.handleLogin)
		r.Post("/logout", s.handleLogout)
		r.Get("/session", s.handleSession)
	})

	// Dashboard endpoints (logged-in session required)
	s.router.Group(func(r chi.Router) {
		r.Use(RequireSession(s.auth, s.log))

		r.Get("/api/v1/profiles", s.handleProfiles)
		r.Get("/api/v1/profiles/current", s.handleCurrentProfile)
		r.Put("/api/v1/profiles/current", s.handleSelectProfile)

		r.Get("/api/v1/time-range", s.handleTimeRange)
		r.Put("/api/v1/time-range", s.handleSetTimeRange)

		r.Get("/api/v1/simulation", s.handleSimulation)
		r.Put("/api/v1/simulation/{key}", s.handleUpdateSimulation)
		r.Get("/api/v1/projection", s.handleProjection)
		r.Post("/api/v1/projection/toggle", s.handleToggleProjections)
		r.Get("/api/v1/chart/{metric}", s.handleChart)
		r.Get("/charts/{metric}", s.handleChartPage)

		r.Get("/api/v1/moods", s.handleMoods)
		r.Post("/api/v1/mood", s.handleAnalyzeMood)
		r.Get("/api/v1/suggestions", s.handleSuggestions)

		r.Get("/api/v1/goals", s.handleGoals)
		r.Post("/api/v1/goals", s.handleAddGoal)
		r.Get("/api/v1/goals/progress", s.handleGoalProgress)
		r.Put("/api/v1/goals/{id}", s.handleUpdateGoal)
		r.Post("/api/v1/goals/{id}/increment", s.handleIncrementGoal)

		r.Get("/api/v1/report", s.handleReport)
	})
}
