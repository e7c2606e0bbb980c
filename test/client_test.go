//go:build integration_test || all_tests

package test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/2beens/trainingload/internal/trainingload/activities"
	"github.com/2beens/trainingload/pkg"
)

type activityRequest struct {
	Date            string `json:"date"`
	SportID         int64  `json:"sport_id"`
	Category        string `json:"category,omitempty"`
	DurationMinutes int    `json:"duration_minutes"`
	IntensityRPE    int    `json:"intensity_rpe"`
	Notes           string `json:"notes,omitempty"`
}

type activityResponse struct {
	ID              int64  `json:"activity_id"`
	UserID          int64  `json:"user_id"`
	WeekID          int64  `json:"week_id"`
	Date            string `json:"date"`
	SportID         int64  `json:"sport_id"`
	Category        string `json:"category"`
	DurationMinutes int    `json:"duration_minutes"`
	IntensityRPE    int    `json:"intensity_rpe"`
}

type muscleLoadResponse struct {
	WeekStart string `json:"week_start_date"`
	WeekEnd   string `json:"week_end_date"`
	Muscles   []struct {
		MuscleID        int64   `json:"muscle_id"`
		MuscleName      string  `json:"muscle_name"`
		Tier            string  `json:"tier"`
		AcuteLoad       float64 `json:"acute_load"`
		ChronicLoad     float64 `json:"chronic_load"`
		ACWR            float64 `json:"acwr"`
		ACWRCategory    string  `json:"acwr_category"`
		FatigueScore    float64 `json:"fatigue_score"`
		FatigueCategory string  `json:"fatigue_category"`
	} `json:"muscles"`
	Athlete *struct {
		Name string `json:"name"`
	} `json:"athlete"`
}

type weekSummaryResponse struct {
	WeekID    int64   `json:"week_id"`
	WeekStart string  `json:"week_start_date"`
	WeekEnd   string  `json:"week_end_date"`
	Label     *string `json:"label"`
	Stats     struct {
		TotalDurationMinutes int     `json:"total_duration_minutes"`
		SessionCount         int     `json:"session_count"`
		AverageRPE           float64 `json:"average_rpe"`
		SportBreakdown       []struct {
			SportName     string `json:"sport_name"`
			Sessions      int    `json:"session_count"`
			TotalDuration int    `json:"total_duration_minutes"`
		} `json:"sport_breakdown"`
	} `json:"stats"`
	Activities []activityResponse `json:"activities"`
}

// do sends a JSON request as userID and decodes a 2xx JSON body into out.
func (s *IntegrationTestSuite) do(ctx context.Context, method, path string, userID int64, body, out any) int {
	t := s.T()
	t.Helper()

	var reqBody io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		s.Require().NoError(err)
		reqBody = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, serverEndpoint+path, reqBody)
	s.Require().NoError(err)
	req.Header.Set("Content-Type", "application/json")
	if userID > 0 {
		req.Header.Set(activities.UserIDHeader, strconv.FormatInt(userID, 10))
	}

	resp, err := s.httpClient.Do(req)
	s.Require().NoError(err)
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	s.Require().NoError(err)
	if out != nil && resp.StatusCode < 300 {
		s.Require().NoError(json.Unmarshal(respBytes, out), string(respBytes))
	}
	return resp.StatusCode
}

func (s *IntegrationTestSuite) createActivity(ctx context.Context, req activityRequest) activityResponse {
	var created activityResponse
	status := s.do(ctx, http.MethodPost, "/activities", testUserID, req, &created)
	s.Require().Equal(http.StatusCreated, status)
	return created
}

// dailyLoads reads the stored aggregate rows of one date.
func (s *IntegrationTestSuite) dailyLoads(userID int64, date time.Time) map[int64]float64 {
	rows, err := s.DB.Query(
		`SELECT muscle_id, load_score FROM daily_muscle_loads WHERE user_id = $1 AND load_date = $2`,
		userID, pkg.FormatDate(date),
	)
	s.Require().NoError(err)
	defer rows.Close()

	loads := map[int64]float64{}
	for rows.Next() {
		var muscleID int64
		var score float64
		s.Require().NoError(rows.Scan(&muscleID, &score))
		loads[muscleID] = score
	}
	s.Require().NoError(rows.Err())
	return loads
}
