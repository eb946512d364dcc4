package mcp

import (
	"log/slog"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// New creates an MCP server with all tools and resources registered.
func New(ds DataSource, version string, log *slog.Logger) *server.MCPServer {
	s := server.NewMCPServer("HealthFuture", version,
		server.WithToolCapabilities(false),
		server.WithResourceCapabilities(false, false),
		server.WithInstructions("HealthFuture dashboard server. Browse mock health profiles, run lifestyle what-if projections, classify mood text into suggestions, track goals and export CSV reports. All data is mock data for one dashboard session."),
	)

	h := &handlers{ds: ds, log: log, now: time.Now}

	// Tools
	s.AddTools(
		server.ServerTool{Tool: toolListProfiles, Handler: h.listProfiles},
		server.ServerTool{Tool: toolSelectProfile, Handler: h.selectProfile},
		server.ServerTool{Tool: toolGetProjection, Handler: h.getProjection},
		server.ServerTool{Tool: toolSetSimulation, Handler: h.setSimulation},
		server.ServerTool{Tool: toolAnalyzeMood, Handler: h.analyzeMood},
		server.ServerTool{Tool: toolListGoals, Handler: h.listGoals},
		server.ServerTool{Tool: toolAddGoal, Handler: h.addGoal},
		server.ServerTool{Tool: toolUpdateGoal, Handler: h.updateGoal},
		server.ServerTool{Tool: toolExportReport, Handler: h.exportReport},
	)

	// Resources
	s.AddResources(
		server.ServerResource{Resource: resCurrentProfile, Handler: h.currentProfile},
		server.ServerResource{Resource: resSuggestions, Handler: h.suggestions},
	)

	return s
}

// handlers holds dependencies for MCP tool/resource handlers.
type handlers struct {
	ds  DataSource
	log *slog.Logger
	now func() time.Time
}

// --- Resource definitions ---

var resCurrentProfile = mcp.NewResource(
	"healthfuture://current_profile",
	"Current Profile",
	mcp.WithResourceDescription("The selected profile with its health series and goals"),
	mcp.WithMIMEType("application/json"),
)

var resSuggestions = mcp.NewResource(
	"healthfuture://suggestions",
	"Health Suggestions",
	mcp.WithResourceDescription("Suggestions from the most recent mood analysis"),
	mcp.WithMIMEType("application/json"),
)
