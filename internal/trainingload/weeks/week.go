// Package weeks keeps a Monday anchored week record per user, migrating rows
// that older data anchored on another weekday.
package weeks

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/2beens/trainingload/pkg"
)

var ErrWeekNotFound = errors.New("training week not found")

type Week struct {
	ID        int64     `json:"week_id"`
	UserID    int64     `json:"user_id"`
	StartDate time.Time `json:"week_start_date"`
	Label     *string   `json:"label"`
}

func (w Week) EndDate() time.Time {
	return w.StartDate.AddDate(0, 0, 6)
}

func (w Week) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		ID        int64   `json:"week_id"`
		UserID    int64   `json:"user_id"`
		StartDate string  `json:"week_start_date"`
		EndDate   string  `json:"week_end_date"`
		Label     *string `json:"label"`
	}{
		ID:        w.ID,
		UserID:    w.UserID,
		StartDate: pkg.FormatDate(w.StartDate),
		EndDate:   pkg.FormatDate(w.EndDate()),
		Label:     w.Label,
	})
}

// StartOfWeek returns the Monday of the calendar week containing date.
func StartOfWeek(date time.Time) time.Time {
	day := pkg.Day(date)
	offset := (int(day.Weekday()) + 6) % 7
	return day.AddDate(0, 0, -offset)
}
