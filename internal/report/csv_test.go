package report

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/claude/healthfuture/internal/models"
)

var generated = time.Date(2024, 3, 5, 9, 0, 0, 0, time.UTC)

func sampleProfile() *models.Profile {
	d := models.NewHealthData(2)
	copy(d.HeartRate, []float64{72, 80})
	copy(d.Sleep, []float64{7.5, 6})
	copy(d.Steps, []float64{4000, 5200})
	copy(d.Water, []float64{4, 6})
	copy(d.Timestamps, []string{"13:00", ""})
	return &models.Profile{
		ID:   "1",
		Name: "Alex Johnson",
		Data: d,
		Goals: []models.Goal{
			{ID: "g1", Title: "Daily Steps", Target: 10000, Current: 6500, Unit: "steps"},
			{ID: "g3", Title: "Sleep, nightly", Target: 8, Current: 6.5, Unit: "hours"},
		},
	}
}

// TestWriteLayout verifies the header block, metrics table and goals table
// appear in order with the expected rows.
func TestWriteLayout(t *testing.T) {
	out, err := Render(Input{Profile: sampleProfile(), TimeRange: models.RangeWeek, Generated: generated})
	if err != nil {
		t.Fatal(err)
	}

	want := strings.Join([]string{
		"HealthFuture Report",
		"Profile: Alex Johnson",
		"Date Range: week",
		"Generated: 3/5/2024",
		"",
		"Day,Heart Rate (bpm),Sleep (hours),Steps,Water (glasses)",
		"13:00,72,7.5,4000,4",
		"Day 2,80,6,5200,6",
		"",
		"Goals:",
		"Title,Target,Current Progress,Unit",
		"Daily Steps,10000,6500,steps",
		`"Sleep, nightly",8,6.5,hours`,
		"",
	}, "\n")
	if got := string(out); got != want {
		t.Errorf("report mismatch\n got:\n%s\nwant:\n%s", got, want)
	}
}

// TestWriteNoProfile verifies a missing profile fails without writing.
func TestWriteNoProfile(t *testing.T) {
	var buf bytes.Buffer
	err := Write(&buf, Input{TimeRange: models.RangeDay, Generated: generated})
	if !errors.Is(err, ErrNoProfile) {
		t.Fatalf("err = %v, want ErrNoProfile", err)
	}
	if buf.Len() != 0 {
		t.Errorf("wrote %d bytes for a failed export", buf.Len())
	}
}

// TestWriteNoGoals verifies the goals header is still present with no goals.
func TestWriteNoGoals(t *testing.T) {
	p := sampleProfile()
	p.Goals = nil
	out, err := Render(Input{Profile: p, TimeRange: models.RangeDay, Generated: generated})
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasSuffix(string(out), "Goals:\nTitle,Target,Current Progress,Unit\n") {
		t.Errorf("unexpected tail: %q", out)
	}
}

// TestFilename verifies the slugged name and MM-DD-YYYY date in the report filename.
func TestFilename(t *testing.T) {
	got := Filename("Alex  Johnson", generated)
	if want := "health-report-alex-johnson-03-05-2024.csv"; got != want {
		t.Errorf("Filename = %q, want %q", got, want)
	}
}
