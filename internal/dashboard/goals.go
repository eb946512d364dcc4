package dashboard

import (
	"math"

	"github.com/claude/healthfuture/internal/mockdata"
	"github.com/claude/healthfuture/internal/models"
	"github.com/google/uuid"
)

// AddGoal appends g to the current profile under a new identifier. An empty
// unit is filled from the metric's default.
func AddGoal(st *State, g models.NewGoal) (models.Goal, error) {
	p := CurrentProfile(st)
	if p == nil {
		return models.Goal{}, ErrNoProfile
	}
	unit := g.Unit
	if unit == "" {
		unit = mockdata.UnitFor(g.Metric)
	}
	goal := models.Goal{
		ID:      uuid.NewString(),
		Metric:  g.Metric,
		Target:  g.Target,
		Current: g.Current,
		Unit:    unit,
		Title:   g.Title,
	}
	p.Goals = append(p.Goals, goal)
	return goal, nil
}

// UpdateGoal sets the current value of goal id on the current profile.
// It reports whether a goal was changed; an unknown id is a no-op.
func UpdateGoal(st *State, id string, current float64) bool {
	g := findGoal(st, id)
	if g == nil {
		return false
	}
	g.Current = current
	return true
}

// IncrementGoal adds one to goal id, stopping at its target.
func IncrementGoal(st *State, id string) (models.Goal, bool) {
	g := findGoal(st, id)
	if g == nil {
		return models.Goal{}, false
	}
	g.Current = math.Min(g.Current+1, g.Target)
	return *g, true
}

// Goals returns a copy of the current profile's goals.
func Goals(st *State) []models.Goal {
	p := CurrentProfile(st)
	if p == nil {
		return nil
	}
	return append([]models.Goal(nil), p.Goals...)
}

// GoalProgress is the mean completion of goals as a percentage. Goals with
// a non-positive target count as zero.
func GoalProgress(goals []models.Goal) float64 {
	if len(goals) == 0 {
		return 0
	}
	var total float64
	for _, g := range goals {
		if g.Target > 0 {
			total += g.Current / g.Target
		}
	}
	return total / float64(len(goals)) * 100
}

func findGoal(st *State, id string) *models.Goal {
	p := CurrentProfile(st)
	if p == nil {
		return nil
	}
	for i := range p.Goals {
		if p.Goals[i].ID == id {
			return &p.Goals[i]
		}
	}
	return nil
}
