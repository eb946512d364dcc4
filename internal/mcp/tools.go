package mcp

import (
	"context"

	"github.com/claude/healthfuture/internal/dashboard"
	"github.com/claude/healthfuture/internal/models"
	"github.com/claude/healthfuture/internal/mood"
	"github.com/mark3labs/mcp-go/mcp"
)

func metricNames() []string {
	names := make([]string, len(models.Metrics))
	for i, m := range models.Metrics {
		names[i] = string(m)
	}
	return names
}

func moodNames() []string {
	names := make([]string, len(models.Moods))
	for i, m := range models.Moods {
		names[i] = string(m)
	}
	return names
}

// --- Tool definitions ---

var toolListProfiles = mcp.NewTool("list_profiles",
	mcp.WithDescription("List the available health profiles and which one is currently selected."),
)

var toolSelectProfile = mcp.NewTool("select_profile",
	mcp.WithDescription("Make a profile the current one. Projections, goals and reports all act on the current profile."),
	mcp.WithString("id", mcp.Required(), mcp.Description("Profile id from list_profiles")),
)

var toolGetProjection = mcp.NewTool("get_projection",
	mcp.WithDescription("Project the current profile's series under the active simulation. Only the latest bucket changes. With a metric, returns actual-vs-projected chart points for that metric (projected values are present only when projections are toggled on)."),
	mcp.WithString("metric", mcp.Description("Optional metric for chart points"), mcp.Enum("heart_rate", "sleep", "steps", "calories", "water")),
)

var toolSetSimulation = mcp.NewTool("set_simulation",
	mcp.WithDescription("Set one lifestyle what-if value. Slider ranges: sleep_change -2..2 hours, steps_change -2000..5000, water_change -3..3 glasses, projection_days 1..30."),
	mcp.WithString("key", mcp.Required(), mcp.Description("Simulation field"), mcp.Enum("sleep_change", "steps_change", "water_change", "projection_days")),
	mcp.WithNumber("value", mcp.Required(), mcp.Description("New value")),
)

var toolAnalyzeMood = mcp.NewTool("analyze_mood",
	mcp.WithDescription("Classify how the user feels as negative, positive or neutral and return matching health suggestions. Pass free text, or a quick-select mood."),
	mcp.WithString("text", mcp.Description("Free text describing how the user feels")),
	mcp.WithString("mood", mcp.Description("Quick-select mood, used when text is empty"), mcp.Enum(moodNames()...)),
)

var toolListGoals = mcp.NewTool("list_goals",
	mcp.WithDescription("List the current profile's goals with the overall completion percentage."),
)

var toolAddGoal = mcp.NewTool("add_goal",
	mcp.WithDescription("Add a goal to the current profile. The unit defaults to the metric's unit."),
	mcp.WithString("metric", mcp.Required(), mcp.Description("Metric the goal tracks"), mcp.Enum(metricNames()...)),
	mcp.WithNumber("target", mcp.Required(), mcp.Description("Target value")),
	mcp.WithNumber("current", mcp.Description("Starting progress. Defaults to 0.")),
	mcp.WithString("title", mcp.Required(), mcp.Description("Display title")),
	mcp.WithString("unit", mcp.Description("Display unit")),
)

var toolUpdateGoal = mcp.NewTool("update_goal",
	mcp.WithDescription("Set the current progress of one of the current profile's goals."),
	mcp.WithString("id", mcp.Required(), mcp.Description("Goal id from list_goals")),
	mcp.WithNumber("current", mcp.Required(), mcp.Description("New progress value")),
)

var toolExportReport = mcp.NewTool("export_report",
	mcp.WithDescription("Export the current profile's series and goals as a CSV report."),
)

// --- Tool handlers ---

type profileSummary struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Avatar  string `json:"avatar"`
	Goals   int    `json:"goals"`
	Current bool   `json:"current"`
}

func (h *handlers) listProfiles(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	profiles, err := h.ds.Profiles(ctx)
	if err != nil {
		h.log.Error("mcp list_profiles", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}
	var currentID string
	if cur, err := h.ds.CurrentProfile(ctx); err == nil {
		currentID = cur.ID
	}

	out := make([]profileSummary, len(profiles))
	for i, p := range profiles {
		out[i] = profileSummary{ID: p.ID, Name: p.Name, Avatar: p.Avatar, Goals: len(p.Goals), Current: p.ID == currentID}
	}
	return jsonResult(out)
}

func (h *handlers) selectProfile(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := req.RequireString("id")
	if err != nil {
		return mcp.NewToolResultError("id parameter is required"), nil
	}
	if err := h.ds.SelectProfile(ctx, id); err != nil {
		return mcp.NewToolResultError("select failed: " + err.Error()), nil
	}
	p, err := h.ds.CurrentProfile(ctx)
	if err != nil {
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}
	return jsonResult(profileSummary{ID: p.ID, Name: p.Name, Avatar: p.Avatar, Goals: len(p.Goals), Current: true})
}

func (h *handlers) getProjection(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if name := req.GetString("metric", ""); name != "" {
		metric, err := models.ParseMetric(name)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		points, err := h.ds.Chart(ctx, metric)
		if err != nil {
			return mcp.NewToolResultError("chart failed: " + err.Error()), nil
		}
		return jsonResult(points)
	}

	data, err := h.ds.Projection(ctx)
	if err != nil {
		h.log.Error("mcp get_projection", "error", err)
		return mcp.NewToolResultError("projection failed: " + err.Error()), nil
	}
	return jsonResult(data)
}

func (h *handlers) setSimulation(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	key, err := req.RequireString("key")
	if err != nil {
		return mcp.NewToolResultError("key parameter is required"), nil
	}
	value, err := req.RequireFloat("value")
	if err != nil {
		return mcp.NewToolResultError("value parameter is required"), nil
	}
	sim, err := h.ds.UpdateSimulation(ctx, key, value)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(map[string]any{
		"simulation": sim,
		"warnings":   dashboard.ValidateSimulation(sim),
	})
}

func (h *handlers) analyzeMood(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	text := req.GetString("text", "")
	if text == "" {
		if m := req.GetString("mood", ""); m != "" {
			text = mood.Prompt(models.Mood(m))
		}
	}
	if text == "" {
		return mcp.NewToolResultError("text or mood parameter is required"), nil
	}
	res, err := h.ds.AnalyzeMood(ctx, text)
	if err != nil {
		return mcp.NewToolResultError("analysis failed: " + err.Error()), nil
	}
	return jsonResult(res)
}

func (h *handlers) listGoals(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	goals, err := h.ds.Goals(ctx)
	if err != nil {
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}
	return jsonResult(map[string]any{
		"goals":    goals,
		"progress": dashboard.GoalProgress(goals),
	})
}

func (h *handlers) addGoal(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, err := req.RequireString("metric")
	if err != nil {
		return mcp.NewToolResultError("metric parameter is required"), nil
	}
	metric, err := models.ParseMetric(name)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	target, err := req.RequireFloat("target")
	if err != nil {
		return mcp.NewToolResultError("target parameter is required"), nil
	}
	title, err := req.RequireString("title")
	if err != nil {
		return mcp.NewToolResultError("title parameter is required"), nil
	}

	goal, err := h.ds.AddGoal(ctx, models.NewGoal{
		Metric:  metric,
		Target:  target,
		Current: req.GetFloat("current", 0),
		Unit:    req.GetString("unit", ""),
		Title:   title,
	})
	if err != nil {
		h.log.Error("mcp add_goal", "error", err)
		return mcp.NewToolResultError("add failed: " + err.Error()), nil
	}
	return jsonResult(goal)
}

func (h *handlers) updateGoal(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := req.RequireString("id")
	if err != nil {
		return mcp.NewToolResultError("id parameter is required"), nil
	}
	current, err := req.RequireFloat("current")
	if err != nil {
		return mcp.NewToolResultError("current parameter is required"), nil
	}
	found, err := h.ds.UpdateGoal(ctx, id, current)
	if err != nil {
		return mcp.NewToolResultError("update failed: " + err.Error()), nil
	}
	if !found {
		return mcp.NewToolResultError("goal not found: " + id), nil
	}
	return jsonResult(map[string]any{"id": id, "current": current})
}

func (h *handlers) exportReport(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	body, filename, err := h.ds.Report(ctx, h.now())
	if err != nil {
		return mcp.NewToolResultError("export failed: " + err.Error()), nil
	}
	return jsonResult(map[string]string{
		"filename": filename,
		"csv":      string(body),
	})
}

func jsonResult(v any) (*mcp.CallToolResult, error) {
	result, err := mcp.NewToolResultJSON(v)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}
