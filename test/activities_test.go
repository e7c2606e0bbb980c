//go:build integration_test || all_tests

package test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/2beens/trainingload/internal/trainingload/activities"
	"github.com/2beens/trainingload/pkg"
)

var (
	monday   = time.Date(2024, time.March, 4, 0, 0, 0, 0, time.UTC)
	tuesday  = monday.AddDate(0, 0, 1)
	thursday = monday.AddDate(0, 0, 3)
)

func (s *IntegrationTestSuite) TestActivityLifecycle() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	created := s.createActivity(ctx, activityRequest{
		Date:            pkg.FormatDate(tuesday),
		SportID:         s.running,
		DurationMinutes: 30,
		IntensityRPE:    8,
	})
	s.NotZero(created.ID)
	s.NotZero(created.WeekID)

	loads := s.dailyLoads(testUserID, tuesday)
	s.Len(loads, 2)
	s.InDelta(20.0, loads[s.quads], 1e-9)
	s.InDelta(9.0, loads[s.calves], 1e-9)

	var updated activityResponse
	status := s.do(ctx, http.MethodPut, fmt.Sprintf("/activities/%d", created.ID), testUserID, activityRequest{
		Date:            pkg.FormatDate(thursday),
		SportID:         s.running,
		DurationMinutes: 30,
		IntensityRPE:    6,
	}, &updated)
	s.Require().Equal(http.StatusOK, status)
	s.Equal(created.ID, updated.ID)
	s.Equal(created.WeekID, updated.WeekID)
	s.Equal("2024-03-07", updated.Date)

	s.Empty(s.dailyLoads(testUserID, tuesday))
	loads = s.dailyLoads(testUserID, thursday)
	s.InDelta(15.0, loads[s.quads], 1e-9)
	s.InDelta(6.75, loads[s.calves], 1e-9)

	var deleted activities.DeleteActivityResponse
	status = s.do(ctx, http.MethodDelete, fmt.Sprintf("/activities/%d", created.ID), testUserID, nil, &deleted)
	s.Require().Equal(http.StatusOK, status)
	s.Equal(created.ID, deleted.DeletedID)
	s.Empty(s.dailyLoads(testUserID, thursday))

	status = s.do(ctx, http.MethodDelete, fmt.Sprintf("/activities/%d", created.ID), testUserID, nil, nil)
	s.Equal(http.StatusNotFound, status)
}

func (s *IntegrationTestSuite) TestFocusOverridesDefaults() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	s.createActivity(ctx, activityRequest{
		Date:            pkg.FormatDate(tuesday),
		SportID:         s.climbing,
		Category:        "  bOULDER ",
		DurationMinutes: 60,
		IntensityRPE:    6,
	})

	loads := s.dailyLoads(testUserID, tuesday)
	s.Len(loads, 2)
	s.InDelta(57.6, loads[s.forearms], 1e-9, "focus row with emphasis")
	s.InDelta(24.0, loads[s.upperBack], 1e-9, "default row kept")

	s.createActivity(ctx, activityRequest{
		Date:            pkg.FormatDate(tuesday),
		SportID:         s.climbing,
		Category:        "lead",
		DurationMinutes: 60,
		IntensityRPE:    6,
	})
	loads = s.dailyLoads(testUserID, tuesday)
	s.InDelta(57.6+36.0, loads[s.forearms], 1e-9, "unknown category uses defaults")
	s.InDelta(48.0, loads[s.upperBack], 1e-9)
}

func (s *IntegrationTestSuite) TestValidationLeavesNothingBehind() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	for name, req := range map[string]activityRequest{
		"rpe too high":  {Date: pkg.FormatDate(tuesday), SportID: s.running, DurationMinutes: 30, IntensityRPE: 11},
		"zero duration": {Date: pkg.FormatDate(tuesday), SportID: s.running, DurationMinutes: 0, IntensityRPE: 5},
		"unknown sport": {Date: pkg.FormatDate(tuesday), SportID: 9999, DurationMinutes: 30, IntensityRPE: 5},
		"bad date":      {Date: "05.03.2024", SportID: s.running, DurationMinutes: 30, IntensityRPE: 5},
	} {
		status := s.do(ctx, http.MethodPost, "/activities", testUserID, req, nil)
		s.Equal(http.StatusBadRequest, status, name)
	}

	var weeks int
	s.Require().NoError(s.DB.QueryRow(`SELECT count(*) FROM weeks`).Scan(&weeks))
	s.Zero(weeks, "week insert rolled back")
	s.Empty(s.dailyLoads(testUserID, tuesday))
}

func (s *IntegrationTestSuite) TestUnknownUserIsNotFound() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	req := activityRequest{Date: pkg.FormatDate(tuesday), SportID: s.running, DurationMinutes: 30, IntensityRPE: 5}
	s.Equal(http.StatusNotFound, s.do(ctx, http.MethodPost, "/activities", 404404, req, nil))

	var weeks int
	s.Require().NoError(s.DB.QueryRow(`SELECT count(*) FROM weeks`).Scan(&weeks))
	s.Zero(weeks)
}

func (s *IntegrationTestSuite) TestWednesdayWeekOfSameWeekIsMigratedOnRead() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	var legacyID int64
	s.Require().NoError(s.DB.QueryRow(
		`INSERT INTO weeks (user_id, week_start_date) VALUES ($1, '2024-03-06') RETURNING week_id`,
		testUserID,
	).Scan(&legacyID))

	var summary weekSummaryResponse
	s.Require().Equal(http.StatusOK, s.do(ctx, http.MethodGet, "/week/2024-03-06", testUserID, nil, &summary))
	s.Equal(legacyID, summary.WeekID)
	s.Equal("2024-03-04", summary.WeekStart)

	created := s.createActivity(ctx, activityRequest{
		Date:            pkg.FormatDate(thursday),
		SportID:         s.running,
		DurationMinutes: 20,
		IntensityRPE:    5,
	})
	s.Equal(legacyID, created.WeekID)

	var count int
	s.Require().NoError(s.DB.QueryRow(`SELECT count(*) FROM weeks WHERE user_id = $1`, testUserID).Scan(&count))
	s.Equal(1, count)
}

func (s *IntegrationTestSuite) TestLegacyWeekIsMigrated() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	var legacyID int64
	s.Require().NoError(s.DB.QueryRow(
		`INSERT INTO weeks (user_id, week_start_date, label) VALUES ($1, '2024-03-03', 'Deload') RETURNING week_id`,
		testUserID,
	).Scan(&legacyID))

	created := s.createActivity(ctx, activityRequest{
		Date:            pkg.FormatDate(thursday),
		SportID:         s.running,
		DurationMinutes: 20,
		IntensityRPE:    5,
	})
	s.Equal(legacyID, created.WeekID)

	var summary weekSummaryResponse
	s.Require().Equal(http.StatusOK, s.do(ctx, http.MethodGet, "/week/2024-03-10", testUserID, nil, &summary))
	s.Equal(legacyID, summary.WeekID)
	s.Equal("2024-03-04", summary.WeekStart)
	s.Equal("2024-03-10", summary.WeekEnd)
	s.Require().NotNil(summary.Label)
	s.Equal("Deload", *summary.Label)

	var count int
	s.Require().NoError(s.DB.QueryRow(`SELECT count(*) FROM weeks WHERE user_id = $1`, testUserID).Scan(&count))
	s.Equal(1, count)
}

func (s *IntegrationTestSuite) TestWeekSummary() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	s.Equal(http.StatusNotFound, s.do(ctx, http.MethodGet, "/week/2024-03-06", testUserID, nil, nil))

	s.createActivity(ctx, activityRequest{Date: pkg.FormatDate(thursday), SportID: s.running, DurationMinutes: 40, IntensityRPE: 6})
	s.createActivity(ctx, activityRequest{Date: pkg.FormatDate(tuesday), SportID: s.running, DurationMinutes: 30, IntensityRPE: 8})
	s.createActivity(ctx, activityRequest{Date: pkg.FormatDate(tuesday), SportID: s.climbing, DurationMinutes: 90, IntensityRPE: 7})

	var summary weekSummaryResponse
	s.Require().Equal(http.StatusOK, s.do(ctx, http.MethodGet, "/week/2024-03-06", testUserID, nil, &summary))
	s.Equal(160, summary.Stats.TotalDurationMinutes)
	s.Equal(3, summary.Stats.SessionCount)
	s.InDelta(7.0, summary.Stats.AverageRPE, 1e-9)

	s.Require().Len(summary.Stats.SportBreakdown, 2)
	s.Equal("Climbing", summary.Stats.SportBreakdown[0].SportName)
	s.Equal(90, summary.Stats.SportBreakdown[0].TotalDuration)
	s.Equal("Running", summary.Stats.SportBreakdown[1].SportName)
	s.Equal(2, summary.Stats.SportBreakdown[1].Sessions)

	s.Require().Len(summary.Activities, 3)
	s.Equal("2024-03-05", summary.Activities[0].Date)
	s.Equal("2024-03-05", summary.Activities[1].Date)
	s.Less(summary.Activities[0].ID, summary.Activities[1].ID)
	s.Equal("2024-03-07", summary.Activities[2].Date)

	// another athlete sees nothing
	s.Equal(http.StatusNotFound, s.do(ctx, http.MethodGet, "/week/2024-03-06", testUserID+1, nil, nil))
}

func (s *IntegrationTestSuite) TestMuscleLoad() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	s.createActivity(ctx, activityRequest{Date: pkg.FormatDate(tuesday), SportID: s.running, DurationMinutes: 30, IntensityRPE: 8})

	var report muscleLoadResponse
	s.Require().Equal(http.StatusOK, s.do(ctx, http.MethodGet, "/muscle-load/2024-03-05", testUserID, nil, &report))
	s.Equal("2024-03-04", report.WeekStart)
	s.Require().Len(report.Muscles, 2)
	quads := report.Muscles[0]
	s.Equal("quads", quads.MuscleName)
	s.Equal("B", quads.Tier)
	s.InDelta(20.0, quads.AcuteLoad, 1e-9)
	s.InDelta(1.0, quads.ACWR, 1e-9, "no chronic history")
	s.Equal("green", quads.ACWRCategory)
	s.InDelta(20.0, quads.FatigueScore, 1e-9)
	s.Equal("blue", quads.FatigueCategory)
	s.Require().NotNil(report.Athlete)
	s.Equal("Test Athlete", report.Athlete.Name)

	// two earlier weeks inside the 28 day chronic window
	for _, date := range []string{"2024-02-13", "2024-02-20"} {
		s.createActivity(ctx, activityRequest{Date: date, SportID: s.running, DurationMinutes: 30, IntensityRPE: 8})
	}
	s.Require().Equal(http.StatusOK, s.do(ctx, http.MethodGet, "/muscle-load/2024-03-05", testUserID, nil, &report))
	quads = report.Muscles[0]
	s.InDelta(40.0, quads.ChronicLoad, 1e-9)
	s.InDelta(2.0, quads.ACWR, 1e-9)
	s.Equal("red", quads.ACWRCategory)
}

func (s *IntegrationTestSuite) TestRebuildRestoresAggregates() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	s.createActivity(ctx, activityRequest{Date: pkg.FormatDate(tuesday), SportID: s.running, DurationMinutes: 30, IntensityRPE: 8})
	s.createActivity(ctx, activityRequest{Date: pkg.FormatDate(thursday), SportID: s.climbing, DurationMinutes: 60, IntensityRPE: 6})
	want := map[string]map[int64]float64{
		"tuesday":  s.dailyLoads(testUserID, tuesday),
		"thursday": s.dailyLoads(testUserID, thursday),
	}

	_, err := s.DB.Exec(`UPDATE daily_muscle_loads SET load_score = 999 WHERE user_id = $1`, testUserID)
	s.Require().NoError(err)

	var resp activities.RebuildResponse
	status := s.do(ctx, http.MethodPost, "/daily-loads/rebuild", testUserID, activities.RebuildRequest{
		StartDate: pkg.FormatDate(monday),
		EndDate:   pkg.FormatDate(monday.AddDate(0, 0, 6)),
	}, &resp)
	s.Require().Equal(http.StatusOK, status)
	s.Equal(2, resp.Replayed)
	s.Equal(want["tuesday"], s.dailyLoads(testUserID, tuesday))
	s.Equal(want["thursday"], s.dailyLoads(testUserID, thursday))
}

func (s *IntegrationTestSuite) TestRebuildIsRateLimited() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// second athlete, so the other tests keep their own bucket
	userID := int64(testUserID + 1)
	req := activities.RebuildRequest{StartDate: pkg.FormatDate(monday)}
	for i := 0; i < 3; i++ {
		s.Require().Equal(http.StatusOK, s.do(ctx, http.MethodPost, "/daily-loads/rebuild", userID, req, nil))
	}
	s.Equal(http.StatusTooManyRequests, s.do(ctx, http.MethodPost, "/daily-loads/rebuild", userID, req, nil))
}

func (s *IntegrationTestSuite) TestConcurrentCreatesOnOneDate() {
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	const workers = 12
	body, err := json.Marshal(activityRequest{
		Date:            pkg.FormatDate(tuesday),
		SportID:         s.running,
		DurationMinutes: 30,
		IntensityRPE:    8,
	})
	s.Require().NoError(err)

	var wg sync.WaitGroup
	statuses := make(chan int, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			req, err := http.NewRequestWithContext(ctx, http.MethodPost, serverEndpoint+"/activities", bytes.NewReader(body))
			if err != nil {
				statuses <- 0
				return
			}
			req.Header.Set(activities.UserIDHeader, strconv.Itoa(testUserID))
			resp, err := s.httpClient.Do(req)
			if err != nil {
				statuses <- 0
				return
			}
			_ = resp.Body.Close()
			statuses <- resp.StatusCode
		}()
	}
	wg.Wait()
	close(statuses)

	for status := range statuses {
		s.Equal(http.StatusCreated, status)
	}

	var weeks int
	s.Require().NoError(s.DB.QueryRow(`SELECT count(*) FROM weeks WHERE user_id = $1`, testUserID).Scan(&weeks))
	s.Equal(1, weeks)

	loads := s.dailyLoads(testUserID, tuesday)
	s.InDelta(workers*20.0, loads[s.quads], 1e-6)
	s.InDelta(workers*9.0, loads[s.calves], 1e-6)
}
