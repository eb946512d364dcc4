package models

import (
	"encoding/json"
	"errors"
	"testing"
)

// TestNewHealthDataEqualLengths verifies that a freshly allocated series has
// every array at the requested length.
func TestNewHealthDataEqualLengths(t *testing.T) {
	d := NewHealthData(24)
	if d.Len() != 24 {
		t.Fatalf("Len() = %d, want 24", d.Len())
	}
	if err := d.Validate(); err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}
}

// TestValidateRagged verifies that a series with one short array is rejected
// with ErrRaggedSeries.
func TestValidateRagged(t *testing.T) {
	d := NewHealthData(7)
	d.Water = d.Water[:6]
	err := d.Validate()
	if !errors.Is(err, ErrRaggedSeries) {
		t.Fatalf("Validate() = %v, want ErrRaggedSeries", err)
	}
}

// TestCloneIsDeep verifies that mutating a clone leaves the original intact.
func TestCloneIsDeep(t *testing.T) {
	d := NewHealthData(3)
	d.HeartRate[2] = 80
	d.Mood[2] = MoodSad

	c := d.Clone()
	c.HeartRate[2] = 60
	c.Mood[2] = MoodHappy

	if d.HeartRate[2] != 80 {
		t.Errorf("original heart rate = %v, want 80", d.HeartRate[2])
	}
	if d.Mood[2] != MoodSad {
		t.Errorf("original mood = %q, want %q", d.Mood[2], MoodSad)
	}
}

// TestTimeRangePoints verifies bucket counts per range.
func TestTimeRangePoints(t *testing.T) {
	cases := []struct {
		r    TimeRange
		want int
	}{
		{RangeDay, 24},
		{RangeWeek, 7},
		{RangeMonth, 30},
	}
	for _, tc := range cases {
		if got := tc.r.Points(); got != tc.want {
			t.Errorf("%s.Points() = %d, want %d", tc.r, got, tc.want)
		}
	}
}

// TestParseTimeRangeUnknown verifies that unknown range names are rejected.
func TestParseTimeRangeUnknown(t *testing.T) {
	if _, err := ParseTimeRange("year"); err == nil {
		t.Error("expected error for unknown range")
	}
	if r, err := ParseTimeRange("week"); err != nil || r != RangeWeek {
		t.Errorf("ParseTimeRange(week) = %q, %v", r, err)
	}
}

// TestSimulationSet verifies key-based updates and rejection of unknown keys.
func TestSimulationSet(t *testing.T) {
	s := DefaultSimulation()
	if s.ProjectionDays != 7 {
		t.Errorf("default projection_days = %v, want 7", s.ProjectionDays)
	}
	if err := s.Set("steps_change", 1500); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if s.StepsChange != 1500 {
		t.Errorf("steps_change = %v, want 1500", s.StepsChange)
	}
	if err := s.Set("coffee_change", 1); err == nil {
		t.Error("expected error for unknown key")
	}
}

// TestAuthStateJSON verifies the persisted session record keeps the
// camel-cased isAuthenticated key and a null user when logged out.
func TestAuthStateJSON(t *testing.T) {
	data, err := json.Marshal(AuthState{})
	if err != nil {
		t.Fatal(err)
	}
	if got, want := string(data), `{"user":null,"isAuthenticated":false}`; got != want {
		t.Errorf("json = %s, want %s", got, want)
	}
}
