// Package mood buckets free text into a sentiment by keyword matching and
// maps each sentiment to a fixed list of health suggestions.
package mood

import (
	"strings"

	"github.com/claude/healthfuture/internal/models"
	"golang.org/x/text/cases"
)

// Sentiment is the bucket a piece of text falls into.
type Sentiment string

const (
	Negative Sentiment = "negative"
	Positive Sentiment = "positive"
	Neutral  Sentiment = "neutral"
)

var negativeWords = []string{"sad", "bad", "tired", "exhausted", "stressed", "anxious"}

var positiveWords = []string{"happy", "great", "good", "excellent", "amazing", "well"}

var suggestions = map[Sentiment][]string{
	Negative: {
		"You seem to be feeling down. Consider taking a short walk outside.",
		"Deep breathing exercises might help reduce your stress levels.",
		"Try to get an extra hour of sleep tonight to help recovery.",
		"Consider a 10-minute meditation to clear your mind.",
	},
	Positive: {
		"Great to hear you're feeling well! Keep it up with your healthy habits.",
		"Your positive mood may benefit from some physical activity today.",
		"Consider setting a new health goal while you're motivated!",
		"Share your positive energy by connecting with friends or family.",
	},
	Neutral: {
		"Try to get 7-9 hours of sleep tonight for better recovery.",
		"Consider taking a short walk to reach your step goal.",
		"Stay hydrated! Aim for 8 glasses of water today.",
		"Take a few minutes for mindfulness practice today.",
	},
}

var defaultSuggestions = []string{
	"Try to get 7-9 hours of sleep tonight for better recovery.",
	"Consider taking a short walk to reach your step goal.",
	"Stay hydrated! You're a bit behind on your water goal.",
}

// Result is the outcome of analysing one piece of text.
type Result struct {
	Sentiment   Sentiment `json:"sentiment"`
	Suggestions []string  `json:"suggestions"`
}

// Classify case-folds text and checks it for any negative keyword, then any
// positive keyword. Matching is by substring, so "unwell" counts as "well".
func Classify(text string) Sentiment {
	folded := cases.Fold().String(text)
	if containsAny(folded, negativeWords) {
		return Negative
	}
	if containsAny(folded, positiveWords) {
		return Positive
	}
	return Neutral
}

// Suggestions returns a copy of the suggestion list for s. Unknown
// sentiments get the neutral list.
func Suggestions(s Sentiment) []string {
	list, ok := suggestions[s]
	if !ok {
		list = suggestions[Neutral]
	}
	return append([]string(nil), list...)
}

// Analyze classifies text and returns the matching suggestions.
func Analyze(text string) Result {
	s := Classify(text)
	return Result{Sentiment: s, Suggestions: Suggestions(s)}
}

// DefaultSuggestions is the list shown before any text has been analysed.
func DefaultSuggestions() []string {
	return append([]string(nil), defaultSuggestions...)
}

// Prompt is the canned sentence used when a mood is picked from a list
// instead of typed.
func Prompt(m models.Mood) string {
	return "I'm feeling " + string(m) + " today"
}

func containsAny(s string, words []string) bool {
	for _, w := range words {
		if strings.Contains(s, w) {
			return true
		}
	}
	return false
}
