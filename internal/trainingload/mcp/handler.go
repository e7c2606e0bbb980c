package mcp

import (
	"context"
	"encoding/json"
	"time"

	"github.com/2beens/trainingload/internal/trainingload/activities"
	"github.com/2beens/trainingload/internal/trainingload/analysis"
	"github.com/2beens/trainingload/pkg"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type weekService interface {
	GetWeekSummary(ctx context.Context, userID int64, date time.Time) (*activities.WeekSummary, error)
	GetMuscleLoad(ctx context.Context, userID int64, date time.Time) (*analysis.Report, error)
}

// Handler handles MCP tool requests: parses input, calls the service, formats the MCP result.
type Handler struct {
	service       weekService
	defaultUserID int64
}

func NewHandler(service weekService, defaultUserID int64) *Handler {
	return &Handler{
		service:       service,
		defaultUserID: defaultUserID,
	}
}

// WeekInput is the input for get_week_summary and get_muscle_load.
type WeekInput struct {
	Date   string `json:"date" jsonschema:"Any date inside the training week (YYYY-MM-DD)"`
	UserID int64  `json:"user_id,omitempty" jsonschema:"Athlete id; the configured default user when omitted"`
}

func (h *Handler) userID(in WeekInput) int64 {
	if in.UserID > 0 {
		return in.UserID
	}
	return h.defaultUserID
}

// GetWeekSummaryTool returns the MCP tool handler for get_week_summary.
func (h *Handler) GetWeekSummaryTool() func(context.Context, *mcp.CallToolRequest, WeekInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in WeekInput) (*mcp.CallToolResult, any, error) {
		date, err := pkg.ParseDate(in.Date)
		if err != nil {
			return errorResult("Invalid date: use YYYY-MM-DD"), nil, nil
		}
		summary, err := h.service.GetWeekSummary(ctx, h.userID(in), date)
		if err != nil {
			return errorResult("Error fetching week summary: " + err.Error()), nil, nil
		}
		return jsonResult(summary), nil, nil
	}
}

// GetMuscleLoadTool returns the MCP tool handler for get_muscle_load.
func (h *Handler) GetMuscleLoadTool() func(context.Context, *mcp.CallToolRequest, WeekInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in WeekInput) (*mcp.CallToolResult, any, error) {
		date, err := pkg.ParseDate(in.Date)
		if err != nil {
			return errorResult("Invalid date: use YYYY-MM-DD"), nil, nil
		}
		report, err := h.service.GetMuscleLoad(ctx, h.userID(in), date)
		if err != nil {
			return errorResult("Error fetching muscle load: " + err.Error()), nil, nil
		}
		return jsonResult(report), nil, nil
	}
}

func errorResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
		IsError: true,
	}
}

func jsonResult(v any) *mcp.CallToolResult {
	raw, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return errorResult("Error encoding response: " + err.Error())
	}
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: string(raw)}},
	}
}
