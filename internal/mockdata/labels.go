package mockdata

import "github.com/claude/healthfuture/internal/models"

var moodEmoji = map[models.Mood]string{
	models.MoodHappy:    "😊",
	models.MoodNeutral:  "😐",
	models.MoodSad:      "😢",
	models.MoodExcited:  "😃",
	models.MoodTired:    "😴",
	models.MoodStressed: "😰",
}

var metricIcon = map[models.Metric]string{
	models.MetricHeartRate: "❤️",
	models.MetricSleep:     "💤",
	models.MetricSteps:     "👣",
	models.MetricCalories:  "🔥",
	models.MetricWater:     "💧",
	models.MetricMood:      "😊",
}

var metricUnit = map[models.Metric]string{
	models.MetricSteps:     "steps",
	models.MetricHeartRate: "bpm",
	models.MetricSleep:     "hours",
	models.MetricWater:     "glasses",
	models.MetricCalories:  "cal",
	models.MetricMood:      "score",
}

// MoodEmoji returns the emoji for a mood, or "❓" for an unknown one.
func MoodEmoji(m models.Mood) string {
	if e, ok := moodEmoji[m]; ok {
		return e
	}
	return "❓"
}

// MetricIcon returns the icon for a metric, or "📊" for an unknown one.
func MetricIcon(m models.Metric) string {
	if i, ok := metricIcon[m]; ok {
		return i
	}
	return "📊"
}

// UnitFor returns the default goal unit for a metric.
func UnitFor(m models.Metric) string {
	return metricUnit[m]
}
