package mood

import (
	"testing"

	"github.com/claude/healthfuture/internal/models"
)

// TestClassify verifies keyword matching, case folding and negative precedence.
func TestClassify(t *testing.T) {
	cases := []struct {
		input string
		want  Sentiment
	}{
		{"I feel sad today", Negative},
		{"Today was GREAT", Positive},
		{"just an ordinary afternoon", Neutral},
		{"great workout but sad news", Negative},
		{"", Neutral},
		{"Feeling Anxious", Negative},
		{"doing well", Positive},
	}
	for _, tc := range cases {
		if got := Classify(tc.input); got != tc.want {
			t.Errorf("Classify(%q) = %q, want %q", tc.input, got, tc.want)
		}
	}
}

// TestAnalyzeSelectsList verifies that each sentiment maps to its own
// four-item suggestion list.
func TestAnalyzeSelectsList(t *testing.T) {
	neg := Analyze("so tired")
	pos := Analyze("amazing day")
	neu := Analyze("hello")

	if neg.Sentiment != Negative || pos.Sentiment != Positive || neu.Sentiment != Neutral {
		t.Fatalf("sentiments = %q, %q, %q", neg.Sentiment, pos.Sentiment, neu.Sentiment)
	}
	for _, r := range []Result{neg, pos, neu} {
		if len(r.Suggestions) != 4 {
			t.Errorf("%s: %d suggestions, want 4", r.Sentiment, len(r.Suggestions))
		}
	}
	if neg.Suggestions[0] == pos.Suggestions[0] || pos.Suggestions[0] == neu.Suggestions[0] {
		t.Error("suggestion lists should differ between sentiments")
	}
}

// TestSuggestionsReturnsCopy verifies callers cannot mutate the static lists.
func TestSuggestionsReturnsCopy(t *testing.T) {
	s := Suggestions(Positive)
	s[0] = "changed"
	if Suggestions(Positive)[0] == "changed" {
		t.Error("Suggestions returned the shared backing array")
	}
}

// TestPromptRoundTrip verifies that the canned prompt for each mood
// classifies the way the mood name itself does.
func TestPromptRoundTrip(t *testing.T) {
	if got := Prompt(models.MoodStressed); got != "I'm feeling stressed today" {
		t.Errorf("Prompt = %q", got)
	}
	if got := Classify(Prompt(models.MoodHappy)); got != Positive {
		t.Errorf("Classify(happy prompt) = %q, want positive", got)
	}
	if got := Classify(Prompt(models.MoodNeutral)); got != Neutral {
		t.Errorf("Classify(neutral prompt) = %q, want neutral", got)
	}
}

// TestDefaultSuggestions verifies the three suggestions shown before any analysis.
func TestDefaultSuggestions(t *testing.T) {
	if got := len(DefaultSuggestions()); got != 3 {
		t.Errorf("len(DefaultSuggestions()) = %d, want 3", got)
	}
}
