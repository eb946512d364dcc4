// Package charts renders dashboard chart series as standalone HTML pages.
package charts

import (
	"fmt"
	"io"

	"github.com/claude/healthfuture/internal/dashboard"
	"github.com/claude/healthfuture/internal/mockdata"
	"github.com/claude/healthfuture/internal/models"
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

var metricTitles = map[models.Metric]string{
	models.MetricHeartRate: "Heart Rate",
	models.MetricSleep:     "Sleep",
	models.MetricSteps:     "Steps",
	models.MetricCalories:  "Calories",
	models.MetricWater:     "Water",
}

// Line builds an actual-vs-projected line chart. The projected series is
// only added when at least one point carries a projected value.
func Line(profileName string, metric models.Metric, points []dashboard.ChartPoint) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Theme: "macarons", PageTitle: "HealthFuture"}),
		charts.WithTitleOpts(opts.Title{
			Title:    fmt.Sprintf("%s %s", mockdata.MetricIcon(metric), title(metric)),
			Subtitle: profileName,
		}),
		charts.WithYAxisOpts(opts.YAxis{Name: mockdata.UnitFor(metric)}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
	)

	labels := make([]string, len(points))
	actual := make([]opts.LineData, len(points))
	projected := make([]opts.LineData, len(points))
	hasProjection := false
	for i, p := range points {
		labels[i] = p.Label
		actual[i] = opts.LineData{Value: p.Actual}
		if p.Projected != nil {
			projected[i] = opts.LineData{Value: *p.Projected}
			hasProjection = true
		}
	}

	line.SetXAxis(labels).AddSeries("Actual", actual)
	if hasProjection {
		line.AddSeries("Projected", projected,
			charts.WithLineStyleOpts(opts.LineStyle{Type: "dashed"}))
	}
	line.SetSeriesOptions(charts.WithLineChartOpts(opts.LineChart{Smooth: opts.Bool(true)}))
	return line
}

// Render writes the chart page to w.
func Render(w io.Writer, profileName string, metric models.Metric, points []dashboard.ChartPoint) error {
	if err := Line(profileName, metric, points).Render(w); err != nil {
		return fmt.Errorf("rendering %s chart: %w", metric, err)
	}
	return nil
}

func title(m models.Metric) string {
	if t, ok := metricTitles[m]; ok {
		return t
	}
	return string(m)
}
