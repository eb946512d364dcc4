// Package dashboard holds the session state of the health dashboard and the
// pure functions that derive views from it: the current profile, projected
// series, chart series and goal progress.
package dashboard

import (
	"errors"
	"fmt"
	"strings"

	"github.com/claude/healthfuture/internal/models"
	"github.com/claude/healthfuture/internal/mood"
)

var (
	// ErrNoProfile is returned when an operation needs a current profile and none is selected.
	ErrNoProfile = errors.New("no current profile")
	// ErrUnknownProfile is returned when selecting a profile id that does not exist.
	ErrUnknownProfile = errors.New("unknown profile")
	// ErrEmptyMoodInput is returned when analysing blank mood text.
	ErrEmptyMoodInput = errors.New("mood input is empty")
)

// State is the whole dashboard session. Derived values are computed by the
// package-level functions rather than stored.
type State struct {
	Profiles         []models.Profile  `json:"profiles"`
	CurrentProfileID string            `json:"current_profile_id"`
	TimeRange        models.TimeRange  `json:"time_range"`
	Simulation       models.Simulation `json:"simulation"`
	MoodInput        string            `json:"mood_input"`
	Suggestions      []string          `json:"suggestions"`
	ShowProjections  bool              `json:"show_projections"`
}

// NewState builds a session over profiles with the first one selected.
func NewState(profiles []models.Profile, tr models.TimeRange) *State {
	st := &State{
		Profiles:    profiles,
		TimeRange:   tr,
		Simulation:  models.DefaultSimulation(),
		Suggestions: mood.DefaultSuggestions(),
	}
	if len(profiles) > 0 {
		st.CurrentProfileID = profiles[0].ID
	}
	return st
}

// CurrentProfile returns a pointer into st.Profiles for the selected
// profile, or nil.
func CurrentProfile(st *State) *models.Profile {
	for i := range st.Profiles {
		if st.Profiles[i].ID == st.CurrentProfileID {
			return &st.Profiles[i]
		}
	}
	return nil
}

// SelectProfile changes the current profile.
func SelectProfile(st *State, id string) error {
	for _, p := range st.Profiles {
		if p.ID == id {
			st.CurrentProfileID = id
			return nil
		}
	}
	return fmt.Errorf("%w: %s", ErrUnknownProfile, id)
}

// AnalyzeMood stores text as the mood input and replaces the suggestions
// with the list for its sentiment.
func AnalyzeMood(st *State, text string) (mood.Result, error) {
	if strings.TrimSpace(text) == "" {
		return mood.Result{}, ErrEmptyMoodInput
	}
	st.MoodInput = text
	res := mood.Analyze(text)
	st.Suggestions = res.Suggestions
	return res, nil
}
