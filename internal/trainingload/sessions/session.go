// Package sessions stores logged training sessions, the source of truth every
// derived load aggregate is computed from.
package sessions

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/2beens/trainingload/pkg"
)

var (
	ErrSessionNotFound = errors.New("activity session not found")
	ErrInvalidSession  = errors.New("invalid activity session")
	ErrUnknownSport    = errors.New("unknown sport")
)

type Session struct {
	ID              int64     `json:"activity_id"`
	UserID          int64     `json:"user_id"`
	WeekID          int64     `json:"week_id"`
	Date            time.Time `json:"date"`
	SportID         int64     `json:"sport_id"`
	Category        string    `json:"category,omitempty"`
	DurationMinutes int       `json:"duration_minutes"`
	IntensityRPE    int       `json:"intensity_rpe"`
	Notes           string    `json:"notes,omitempty"`
}

// Payload is the caller supplied part of a session.
type Payload struct {
	Date            time.Time `json:"date"`
	SportID         int64     `json:"sport_id"`
	Category        string    `json:"category,omitempty"`
	DurationMinutes int       `json:"duration_minutes"`
	IntensityRPE    int       `json:"intensity_rpe"`
	Notes           string    `json:"notes,omitempty"`
}

func (p Payload) Validate() error {
	if p.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidSession)
	}
	if p.SportID <= 0 {
		return fmt.Errorf("%w: sport id must be positive", ErrInvalidSession)
	}
	if p.DurationMinutes <= 0 {
		return fmt.Errorf("%w: duration must be positive", ErrInvalidSession)
	}
	if p.IntensityRPE < 1 || p.IntensityRPE > 10 {
		return fmt.Errorf("%w: intensity rpe must be within [1, 10]", ErrInvalidSession)
	}
	return nil
}

// Apply returns s with its load relevant fields taken from p.
func (s Session) Apply(p Payload) Session {
	s.Date = p.Date
	s.SportID = p.SportID
	s.Category = p.Category
	s.DurationMinutes = p.DurationMinutes
	s.IntensityRPE = p.IntensityRPE
	s.Notes = p.Notes
	return s
}

// MarshalJSON renders the session date as YYYY-MM-DD.
func (s Session) MarshalJSON() ([]byte, error) {
	type session Session
	return json.Marshal(struct {
		session
		Date string `json:"date"`
	}{
		session: session(s),
		Date:    pkg.FormatDate(s.Date),
	})
}

// UnmarshalJSON expects the date as YYYY-MM-DD.
func (p *Payload) UnmarshalJSON(data []byte) error {
	type payload Payload
	aux := struct {
		*payload
		Date string `json:"date"`
	}{
		payload: (*payload)(p),
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidSession, err)
	}
	if aux.Date == "" {
		p.Date = time.Time{}
		return nil
	}
	date, err := pkg.ParseDate(aux.Date)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidSession, err)
	}
	p.Date = date
	return nil
}

// SportBreakdown aggregates the sessions of one sport within a date range.
type SportBreakdown struct {
	SportID       int64  `json:"sport_id"`
	SportName     string `json:"sport_name"`
	Sessions      int    `json:"session_count"`
	TotalDuration int    `json:"total_duration_minutes"`
}
