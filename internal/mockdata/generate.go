// Package mockdata produces the synthetic health series and seed profiles
// the dashboard starts with.
package mockdata

import (
	"math/rand/v2"
	"time"

	"github.com/claude/healthfuture/internal/models"
)

// Generator draws random health series. It is not safe for concurrent use.
type Generator struct {
	rng *rand.Rand
	now func() time.Time
}

// NewGenerator returns a generator seeded with seed. A zero seed draws a
// random one so each process start gets different data.
func NewGenerator(seed uint64) *Generator {
	if seed == 0 {
		seed = rand.Uint64()
	}
	return &Generator{
		rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		now: time.Now,
	}
}

// WithClock overrides the reference time used for timestamp labels.
func (g *Generator) WithClock(now func() time.Time) *Generator {
	g.now = now
	return g
}

// Generate returns a series of tr.Points() buckets ending at the current
// time. Value ranges: heart rate 60-89 bpm, sleep 5-9 h, steps 3000-7999,
// calories 1500-2499, water 3-7 glasses.
func (g *Generator) Generate(tr models.TimeRange) models.HealthData {
	n := tr.Points()
	now := g.now()
	d := models.NewHealthData(n)

	for i := 0; i < n; i++ {
		back := n - i - 1
		switch tr {
		case models.RangeWeek:
			d.Timestamps[i] = now.AddDate(0, 0, -back).Format("Mon")
		case models.RangeMonth:
			d.Timestamps[i] = now.AddDate(0, 0, -back).Format("Jan 2")
		default:
			d.Timestamps[i] = now.Add(-time.Duration(back) * time.Hour).Format("15:04")
		}

		d.HeartRate[i] = float64(g.rng.IntN(30) + 60)
		d.Sleep[i] = g.rng.Float64()*4 + 5
		d.Steps[i] = float64(g.rng.IntN(5000) + 3000)
		d.Calories[i] = float64(g.rng.IntN(1000) + 1500)
		d.Water[i] = float64(g.rng.IntN(5) + 3)
		d.Mood[i] = models.Moods[g.rng.IntN(len(models.Moods))]
	}
	return d
}

// Profiles returns the two demo profiles with freshly generated day series.
func (g *Generator) Profiles() []models.Profile {
	return []models.Profile{
		{
			ID:     "1",
			Name:   "Alex Johnson",
			Avatar: avatarURL("Alex"),
			Data:   g.Generate(models.RangeDay),
			Goals: []models.Goal{
				{ID: "g1", Metric: models.MetricSteps, Target: 10000, Current: 6500, Unit: "steps", Title: "Daily Steps"},
				{ID: "g2", Metric: models.MetricWater, Target: 8, Current: 5, Unit: "glasses", Title: "Water Intake"},
				{ID: "g3", Metric: models.MetricSleep, Target: 8, Current: 6.5, Unit: "hours", Title: "Sleep Time"},
			},
		},
		{
			ID:     "2",
			Name:   "Sam Wilson",
			Avatar: avatarURL("Sam"),
			Data:   g.Generate(models.RangeDay),
			Goals: []models.Goal{
				{ID: "g4", Metric: models.MetricSteps, Target: 8000, Current: 7200, Unit: "steps", Title: "Daily Steps"},
				{ID: "g5", Metric: models.MetricCalories, Target: 2000, Current: 1800, Unit: "cal", Title: "Calorie Limit"},
			},
		},
	}
}

func avatarURL(seed string) string {
	return "https://api.dicebear.com/7.x/avataaars/svg?seed=" + seed
}
