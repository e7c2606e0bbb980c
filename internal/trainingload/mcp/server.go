// Package mcp exposes the read side of the training load service as
// Model Context Protocol tools.
package mcp

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// NewServer builds an MCP server with the week summary and muscle load tools.
// Used by cmd/trainingload_mcp over stdio and mounted at /mcp by the HTTP service.
func NewServer(service weekService, defaultUserID int64) *mcp.Server {
	h := NewHandler(service, defaultUserID)
	s := mcp.NewServer(&mcp.Implementation{
		Name:    "trainingload",
		Version: "1.0.0",
	}, nil)

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_week_summary",
		Description: "Returns the training week (Monday..Sunday) containing the given date: activities ordered by date, total duration, session count, average RPE and a per-sport breakdown. Args: date (YYYY-MM-DD); optional: user_id.",
	}, h.GetWeekSummaryTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_muscle_load",
		Description: "Returns per-muscle acute load, chronic load, ACWR and fatigue with their color buckets (white, blue, green, yellow, orange, red) for the week containing the given date. Args: date (YYYY-MM-DD); optional: user_id.",
	}, h.GetMuscleLoadTool())

	return s
}
