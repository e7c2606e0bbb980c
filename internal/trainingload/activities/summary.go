package activities

import (
	"encoding/json"

	"github.com/2beens/trainingload/internal/trainingload/sessions"
	"github.com/2beens/trainingload/internal/trainingload/weeks"
	"github.com/2beens/trainingload/pkg"
)

type WeekStats struct {
	TotalDurationMinutes int                       `json:"total_duration_minutes"`
	SessionCount         int                       `json:"session_count"`
	AverageRPE           float64                   `json:"average_rpe"`
	SportBreakdown       []sessions.SportBreakdown `json:"sport_breakdown"`
}

type WeekSummary struct {
	Week       weeks.Week
	Stats      WeekStats
	Activities []sessions.Session
}

func (w WeekSummary) MarshalJSON() ([]byte, error) {
	stats := w.Stats
	if stats.SportBreakdown == nil {
		stats.SportBreakdown = []sessions.SportBreakdown{}
	}
	activities := w.Activities
	if activities == nil {
		activities = []sessions.Session{}
	}
	return json.Marshal(struct {
		WeekID     int64              `json:"week_id"`
		WeekStart  string             `json:"week_start_date"`
		WeekEnd    string             `json:"week_end_date"`
		Label      *string            `json:"label"`
		Stats      WeekStats          `json:"stats"`
		Activities []sessions.Session `json:"activities"`
	}{
		WeekID:     w.Week.ID,
		WeekStart:  pkg.FormatDate(w.Week.StartDate),
		WeekEnd:    pkg.FormatDate(w.Week.EndDate()),
		Label:      w.Week.Label,
		Stats:      stats,
		Activities: activities,
	})
}
