package mcp

import (
	"context"
	"time"

	"github.com/claude/healthfuture/internal/dashboard"
	"github.com/claude/healthfuture/internal/models"
	"github.com/claude/healthfuture/internal/mood"
)

// DataSource abstracts the dashboard for MCP tools. Both *dashboard.Service
// (local) and HTTPClient (remote via REST API) satisfy this interface.
type DataSource interface {
	Profiles(ctx context.Context) ([]models.Profile, error)
	CurrentProfile(ctx context.Context) (models.Profile, error)
	SelectProfile(ctx context.Context, id string) error
	Projection(ctx context.Context) (models.HealthData, error)
	Chart(ctx context.Context, metric models.Metric) ([]dashboard.ChartPoint, error)
	UpdateSimulation(ctx context.Context, key string, value float64) (models.Simulation, error)
	AnalyzeMood(ctx context.Context, text string) (mood.Result, error)
	Suggestions(ctx context.Context) ([]string, error)
	Goals(ctx context.Context) ([]models.Goal, error)
	AddGoal(ctx context.Context, g models.NewGoal) (models.Goal, error)
	UpdateGoal(ctx context.Context, id string, current float64) (bool, error)
	Report(ctx context.Context, now time.Time) ([]byte, string, error)
}

// Compile-time check: *dashboard.Service satisfies DataSource.
var _ DataSource = (*dashboard.Service)(nil)
