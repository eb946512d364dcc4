package charts

import (
	"bytes"
	"strings"
	"testing"

	"github.com/claude/healthfuture/internal/dashboard"
	"github.com/claude/healthfuture/internal/models"
)

func points(withProjection bool) []dashboard.ChartPoint {
	pts := []dashboard.ChartPoint{
		{Label: "13:00", Actual: 4000},
		{Label: "14:00", Actual: 5000},
	}
	if withProjection {
		for i := range pts {
			v := pts[i].Actual + 500
			pts[i].Projected = &v
		}
	}
	return pts
}

// TestRenderActualOnly verifies the page contains the actual series and no
// projected series when projections are off.
func TestRenderActualOnly(t *testing.T) {
	var buf bytes.Buffer
	if err := Render(&buf, "Alex Johnson", models.MetricSteps, points(false)); err != nil {
		t.Fatal(err)
	}
	html := buf.String()
	if !strings.Contains(html, "Actual") {
		t.Error("missing Actual series")
	}
	if strings.Contains(html, "Projected") {
		t.Error("unexpected Projected series")
	}
	if !strings.Contains(html, "Alex Johnson") {
		t.Error("missing profile name subtitle")
	}
}

// TestRenderWithProjection verifies the projected series is included.
func TestRenderWithProjection(t *testing.T) {
	var buf bytes.Buffer
	if err := Render(&buf, "Alex Johnson", models.MetricSteps, points(true)); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "Projected") {
		t.Error("missing Projected series")
	}
}
