// Package sports resolves which per muscle load coefficients apply to a session
// of a sport, honouring focus specific overrides of the sport wide defaults.
package sports

import (
	"github.com/2beens/trainingload/internal/trainingload/load"
)

// MuscleLoadConfig is one row of sport_muscle_loads joined with its muscle group.
// A nil FocusID marks the sport wide default row.
type MuscleLoadConfig struct {
	ID                int64   `json:"id"`
	SportID           int64   `json:"sport_id"`
	FocusID           *int64  `json:"focus_id,omitempty"`
	MuscleID          int64   `json:"muscle_id"`
	MuscleName        string  `json:"muscle_name"`
	BaseLoadPerMinute float64 `json:"base_load_per_minute"`
	Unilateral        bool    `json:"unilateral"`
	Emphasis          bool    `json:"emphasis"`
}

func (c MuscleLoadConfig) Coefficients() load.Coefficients {
	return load.Coefficients{
		BaseLoadPerMinute: c.BaseLoadPerMinute,
		Unilateral:        c.Unilateral,
		Emphasis:          c.Emphasis,
	}
}

func (c MuscleLoadConfig) IsDefault() bool {
	return c.FocusID == nil
}
