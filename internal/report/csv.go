// Package report renders a profile's health series and goals as a CSV
// report for download.
package report

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/claude/healthfuture/internal/models"
)

// ErrNoProfile is returned when there is no profile to export.
var ErrNoProfile = errors.New("could not find profile data to export")

// Title is the first line of every report.
const Title = "HealthFuture Report"

// Input is everything a report is built from.
type Input struct {
	Profile   *models.Profile
	TimeRange models.TimeRange
	Generated time.Time
}

// Write renders the report to w. Nothing is written when in.Profile is nil.
func Write(w io.Writer, in Input) error {
	if in.Profile == nil {
		return ErrNoProfile
	}
	p := in.Profile
	cw := csv.NewWriter(w)

	records := [][]string{
		{Title},
		{"Profile: " + p.Name},
		{"Date Range: " + string(in.TimeRange)},
		{"Generated: " + FormatDate(in.Generated)},
		{},
		{"Day", "Heart Rate (bpm)", "Sleep (hours)", "Steps", "Water (glasses)"},
	}

	d := p.Data
	for i := 0; i < d.Len(); i++ {
		day := fmt.Sprintf("Day %d", i+1)
		if i < len(d.Timestamps) && d.Timestamps[i] != "" {
			day = d.Timestamps[i]
		}
		records = append(records, []string{
			day,
			formatNum(d.HeartRate[i]),
			formatNum(d.Sleep[i]),
			formatNum(d.Steps[i]),
			formatNum(d.Water[i]),
		})
	}

	records = append(records,
		[]string{},
		[]string{"Goals:"},
		[]string{"Title", "Target", "Current Progress", "Unit"},
	)
	for _, g := range p.Goals {
		records = append(records, []string{g.Title, formatNum(g.Target), formatNum(g.Current), g.Unit})
	}

	if err := cw.WriteAll(records); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}
	return nil
}

// Render returns the report as bytes.
func Render(in Input) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(&buf, in); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Filename is the suggested download name:
// health-report-<lowercased name, spaces as dashes>-<MM-DD-YYYY>.csv
func Filename(profileName string, generated time.Time) string {
	slug := strings.Join(strings.Fields(strings.ToLower(profileName)), "-")
	return fmt.Sprintf("health-report-%s-%s.csv", slug, generated.Format("01-02-2006"))
}

// FormatDate renders the generation date the way the report header shows it.
func FormatDate(t time.Time) string {
	return t.Format("1/2/2006")
}

func formatNum(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
