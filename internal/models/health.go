package models

import (
	"errors"
	"fmt"
)

// ErrRaggedSeries is returned when the arrays of a HealthData differ in length.
var ErrRaggedSeries = errors.New("health data arrays differ in length")

// Mood is the categorical mood recorded for a time bucket.
type Mood string

const (
	MoodHappy    Mood = "happy"
	MoodNeutral  Mood = "neutral"
	MoodSad      Mood = "sad"
	MoodExcited  Mood = "excited"
	MoodTired    Mood = "tired"
	MoodStressed Mood = "stressed"
)

// Moods lists every mood in generator order.
var Moods = []Mood{MoodHappy, MoodNeutral, MoodSad, MoodExcited, MoodTired, MoodStressed}

// Metric names one series of a HealthData.
type Metric string

const (
	MetricHeartRate Metric = "heart_rate"
	MetricSleep     Metric = "sleep"
	MetricSteps     Metric = "steps"
	MetricCalories  Metric = "calories"
	MetricWater     Metric = "water"
	MetricMood      Metric = "mood"
)

// Metrics lists all metrics.
var Metrics = []Metric{MetricHeartRate, MetricSleep, MetricSteps, MetricCalories, MetricWater, MetricMood}

// ParseMetric validates a metric name.
func ParseMetric(s string) (Metric, error) {
	for _, m := range Metrics {
		if string(m) == s {
			return m, nil
		}
	}
	return "", fmt.Errorf("unknown metric %q", s)
}

// TimeRange selects how many buckets a series covers and how they are labelled.
type TimeRange string

const (
	RangeDay   TimeRange = "day"
	RangeWeek  TimeRange = "week"
	RangeMonth TimeRange = "month"
)

// Points returns the number of buckets in the range: hourly for a day,
// daily for a week or month.
func (r TimeRange) Points() int {
	switch r {
	case RangeWeek:
		return 7
	case RangeMonth:
		return 30
	default:
		return 24
	}
}

// ParseTimeRange validates a time range name.
func ParseTimeRange(s string) (TimeRange, error) {
	switch TimeRange(s) {
	case RangeDay, RangeWeek, RangeMonth:
		return TimeRange(s), nil
	}
	return "", fmt.Errorf("unknown time range %q", s)
}

// HealthData is a set of index-aligned series. Index i of every array
// describes the same time bucket.
type HealthData struct {
	HeartRate  []float64 `json:"heart_rate"`
	Sleep      []float64 `json:"sleep"`
	Steps      []float64 `json:"steps"`
	Calories   []float64 `json:"calories"`
	Water      []float64 `json:"water"`
	Mood       []Mood    `json:"mood"`
	Timestamps []string  `json:"timestamps"`
}

// NewHealthData allocates a series of n zero-valued buckets.
func NewHealthData(n int) HealthData {
	return HealthData{
		HeartRate:  make([]float64, n),
		Sleep:      make([]float64, n),
		Steps:      make([]float64, n),
		Calories:   make([]float64, n),
		Water:      make([]float64, n),
		Mood:       make([]Mood, n),
		Timestamps: make([]string, n),
	}
}

// Len returns the number of buckets, taken from the heart rate series.
func (d HealthData) Len() int {
	return len(d.HeartRate)
}

// Validate checks that all arrays share the same length.
func (d HealthData) Validate() error {
	n := d.Len()
	lens := map[string]int{
		"sleep":      len(d.Sleep),
		"steps":      len(d.Steps),
		"calories":   len(d.Calories),
		"water":      len(d.Water),
		"mood":       len(d.Mood),
		"timestamps": len(d.Timestamps),
	}
	for name, l := range lens {
		if l != n {
			return fmt.Errorf("%w: %s has %d, heart_rate has %d", ErrRaggedSeries, name, l, n)
		}
	}
	return nil
}

// Clone returns a deep copy.
func (d HealthData) Clone() HealthData {
	return HealthData{
		HeartRate:  append([]float64(nil), d.HeartRate...),
		Sleep:      append([]float64(nil), d.Sleep...),
		Steps:      append([]float64(nil), d.Steps...),
		Calories:   append([]float64(nil), d.Calories...),
		Water:      append([]float64(nil), d.Water...),
		Mood:       append([]Mood(nil), d.Mood...),
		Timestamps: append([]string(nil), d.Timestamps...),
	}
}

// Values returns the numeric series for a metric. Mood has no numeric
// series and returns nil.
func (d HealthData) Values(m Metric) []float64 {
	switch m {
	case MetricHeartRate:
		return d.HeartRate
	case MetricSleep:
		return d.Sleep
	case MetricSteps:
		return d.Steps
	case MetricCalories:
		return d.Calories
	case MetricWater:
		return d.Water
	}
	return nil
}

// Simulation holds hypothetical lifestyle deltas. It is not tied to a profile.
type Simulation struct {
	SleepChange    float64 `json:"sleep_change"`
	StepsChange    float64 `json:"steps_change"`
	WaterChange    float64 `json:"water_change"`
	ProjectionDays float64 `json:"projection_days"`
}

// DefaultSimulation is the session's starting simulation.
func DefaultSimulation() Simulation {
	return Simulation{ProjectionDays: 7}
}

// Set updates one field by its JSON key.
func (s *Simulation) Set(key string, value float64) error {
	switch key {
	case "sleep_change":
		s.SleepChange = value
	case "steps_change":
		s.StepsChange = value
	case "water_change":
		s.WaterChange = value
	case "projection_days":
		s.ProjectionDays = value
	default:
		return fmt.Errorf("unknown simulation key %q", key)
	}
	return nil
}
