package dashboard

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/claude/healthfuture/internal/models"
	"github.com/claude/healthfuture/internal/mood"
	"github.com/claude/healthfuture/internal/report"
)

// Service serialises access to one dashboard State so it can be shared by
// HTTP and MCP handlers. Every read returns a copy.
type Service struct {
	mu  sync.Mutex
	st  *State
	gen Generator
	log *slog.Logger
}

// NewService wraps st. gen supplies the fallback series when no profile is selected.
func NewService(st *State, gen Generator, log *slog.Logger) *Service {
	return &Service{st: st, gen: gen, log: log}
}

// Profiles returns every profile.
func (s *Service) Profiles(ctx context.Context) ([]models.Profile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Profile, len(s.st.Profiles))
	for i, p := range s.st.Profiles {
		out[i] = p.Clone()
	}
	return out, nil
}

// CurrentProfile returns the selected profile or ErrNoProfile.
func (s *Service) CurrentProfile(ctx context.Context) (models.Profile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p := CurrentProfile(s.st)
	if p == nil {
		return models.Profile{}, ErrNoProfile
	}
	return p.Clone(), nil
}

// SelectProfile makes id the current profile.
func (s *Service) SelectProfile(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := SelectProfile(s.st, id); err != nil {
		return err
	}
	s.log.Info("profile selected", "profile_id", id)
	return nil
}

// TimeRange returns the selected time range.
func (s *Service) TimeRange(ctx context.Context) models.TimeRange {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.st.TimeRange
}

// SetTimeRange changes the selected time range. Existing series are kept.
func (s *Service) SetTimeRange(ctx context.Context, tr models.TimeRange) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.st.TimeRange = tr
}

// Simulation returns the session simulation.
func (s *Service) Simulation(ctx context.Context) (models.Simulation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.st.Simulation, nil
}

// UpdateSimulation sets one simulation field by key. Values outside the
// slider ranges are stored but logged.
func (s *Service) UpdateSimulation(ctx context.Context, key string, value float64) (models.Simulation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sim := s.st.Simulation
	if err := sim.Set(key, value); err != nil {
		return s.st.Simulation, err
	}
	if problems := ValidateSimulation(sim); len(problems) > 0 {
		s.log.Warn("simulation outside slider range", "problems", problems)
	}
	s.st.Simulation = sim
	return sim, nil
}

// Projection returns the projected series for the current profile.
func (s *Service) Projection(ctx context.Context) (models.HealthData, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return ProjectedData(s.st, s.gen), nil
}

// ToggleProjections flips whether charts include projected values and
// returns the new setting.
func (s *Service) ToggleProjections(ctx context.Context) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.st.ShowProjections = !s.st.ShowProjections
	return s.st.ShowProjections
}

// Chart returns the chart series for metric.
func (s *Service) Chart(ctx context.Context, metric models.Metric) ([]ChartPoint, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return ChartSeries(s.st, metric, s.gen)
}

// AnalyzeMood classifies text and stores the resulting suggestions.
func (s *Service) AnalyzeMood(ctx context.Context, text string) (mood.Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	res, err := AnalyzeMood(s.st, text)
	if err != nil {
		return res, err
	}
	s.log.Debug("mood analyzed", "sentiment", res.Sentiment)
	return res, nil
}

// Suggestions returns the current suggestion list.
func (s *Service) Suggestions(ctx context.Context) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.st.Suggestions...), nil
}

// Goals returns the current profile's goals.
func (s *Service) Goals(ctx context.Context) ([]models.Goal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if CurrentProfile(s.st) == nil {
		return nil, ErrNoProfile
	}
	return Goals(s.st), nil
}

// AddGoal appends a goal to the current profile.
func (s *Service) AddGoal(ctx context.Context, g models.NewGoal) (models.Goal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	goal, err := AddGoal(s.st, g)
	if err != nil {
		return goal, err
	}
	s.log.Info("goal added", "goal_id", goal.ID, "metric", goal.Metric, "target", goal.Target)
	return goal, nil
}

// UpdateGoal sets a goal's current value and reports whether it existed.
func (s *Service) UpdateGoal(ctx context.Context, id string, current float64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return UpdateGoal(s.st, id, current), nil
}

// IncrementGoal bumps a goal by one, capped at its target.
func (s *Service) IncrementGoal(ctx context.Context, id string) (models.Goal, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return IncrementGoal(s.st, id)
}

// GoalProgress returns the mean completion percentage of the current goals.
func (s *Service) GoalProgress(ctx context.Context) float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return GoalProgress(Goals(s.st))
}

// Report renders the current profile as CSV and returns it with its
// download filename. With no profile selected it returns report.ErrNoProfile.
func (s *Service) Report(ctx context.Context, now time.Time) ([]byte, string, error) {
	s.mu.Lock()
	in := report.Input{TimeRange: s.st.TimeRange, Generated: now}
	if p := CurrentProfile(s.st); p != nil {
		c := p.Clone()
		in.Profile = &c
	}
	s.mu.Unlock()

	body, err := report.Render(in)
	if err != nil {
		return nil, "", err
	}
	s.log.Info("report exported", "profile_id", in.Profile.ID, "bytes", len(body))
	return body, report.Filename(in.Profile.Name, now), nil
}
