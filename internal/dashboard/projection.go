package dashboard

import (
	"errors"
	"fmt"
	"math"

	"github.com/claude/healthfuture/internal/models"
)

// ErrNotCharted is returned for metrics without a numeric series.
var ErrNotCharted = errors.New("metric has no numeric series")

const (
	restingHeartRateFloor = 60
	maxHeartRateGain      = 10
	sleepCeiling          = 9
)

// Generator produces a fresh series for a time range.
type Generator interface {
	Generate(tr models.TimeRange) models.HealthData
}

// Project returns a copy of base in which only the last bucket reflects the
// simulated deltas. base is not modified. An empty or ragged series is
// returned unchanged.
func Project(base models.HealthData, sim models.Simulation) models.HealthData {
	out := base.Clone()
	n := base.Len()
	if n == 0 || base.Validate() != nil {
		return out
	}
	last := n - 1

	if sim.SleepChange > 0 {
		gain := math.Min(sim.SleepChange*2, maxHeartRateGain)
		out.HeartRate[last] = math.Max(restingHeartRateFloor, base.HeartRate[last]-gain)
	}
	out.Sleep[last] = math.Min(sleepCeiling, base.Sleep[last]+sim.SleepChange)
	out.Steps[last] = base.Steps[last] + sim.StepsChange
	out.Water[last] = base.Water[last] + sim.WaterChange

	total := sim.SleepChange + sim.StepsChange/1000 + sim.WaterChange
	switch {
	case total > 2:
		out.Mood[last] = models.MoodHappy
	case total > 1:
		out.Mood[last] = models.MoodExcited
	}
	return out
}

// ProjectedData projects the current profile's series with the session
// simulation. With no current profile it returns a freshly generated day
// series.
func ProjectedData(st *State, gen Generator) models.HealthData {
	p := CurrentProfile(st)
	if p == nil {
		return gen.Generate(models.RangeDay)
	}
	return Project(p.Data, st.Simulation)
}

// ChartPoint is one bucket of a chart series. Projected is nil when
// projections are hidden.
type ChartPoint struct {
	Label     string   `json:"label"`
	Actual    float64  `json:"actual"`
	Projected *float64 `json:"projected"`
}

// ChartSeries pairs the current profile's values for metric with their
// projected counterparts.
func ChartSeries(st *State, metric models.Metric, gen Generator) ([]ChartPoint, error) {
	p := CurrentProfile(st)
	if p == nil {
		return nil, ErrNoProfile
	}
	actual := p.Data.Values(metric)
	if actual == nil {
		return nil, fmt.Errorf("%w: %s", ErrNotCharted, metric)
	}

	var projected []float64
	if st.ShowProjections {
		projected = ProjectedData(st, gen).Values(metric)
	}

	points := make([]ChartPoint, len(actual))
	for i, v := range actual {
		points[i] = ChartPoint{Label: p.Data.Timestamps[i], Actual: v}
		if projected != nil {
			pv := projected[i]
			points[i].Projected = &pv
		}
	}
	return points, nil
}

// simulationLimits are the ranges the dashboard sliders allow.
var simulationLimits = []struct {
	key      string
	min, max float64
	value    func(models.Simulation) float64
}{
	{"sleep_change", -2, 2, func(s models.Simulation) float64 { return s.SleepChange }},
	{"steps_change", -2000, 5000, func(s models.Simulation) float64 { return s.StepsChange }},
	{"water_change", -3, 3, func(s models.Simulation) float64 { return s.WaterChange }},
	{"projection_days", 1, 30, func(s models.Simulation) float64 { return s.ProjectionDays }},
}

// ValidateSimulation lists the fields of sim outside the slider ranges.
// Out-of-range values are still accepted by the store.
func ValidateSimulation(sim models.Simulation) []string {
	var out []string
	for _, l := range simulationLimits {
		v := l.value(sim)
		if v < l.min || v > l.max {
			out = append(out, fmt.Sprintf("%s=%g outside [%g, %g]", l.key, v, l.min, l.max))
		}
	}
	return out
}
