// Package activities exposes the caller facing training load operations:
// logging, editing and deleting activities, week summaries, muscle load
// reports and daily load rebuilds.
package activities

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/2beens/trainingload/internal/telemetry/metrics"
	"github.com/2beens/trainingload/internal/telemetry/tracing"
	"github.com/2beens/trainingload/internal/trainingload/analysis"
	"github.com/2beens/trainingload/internal/trainingload/sessions"
	"github.com/2beens/trainingload/internal/trainingload/weeks"
	"github.com/2beens/trainingload/pkg"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

var ErrInvalidDateRange = errors.New("end date is before start date")

type Transactor interface {
	InTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type SessionRepo interface {
	Add(ctx context.Context, s sessions.Session) (*sessions.Session, error)
	Get(ctx context.Context, userID, id int64) (*sessions.Session, error)
	Update(ctx context.Context, s sessions.Session) error
	Delete(ctx context.Context, userID, id int64) error
	ListRange(ctx context.Context, userID int64, from, to time.Time) ([]sessions.Session, error)
	SportBreakdown(ctx context.Context, userID int64, from, to time.Time) ([]sessions.SportBreakdown, error)
}

type WeekManager interface {
	Ensure(ctx context.Context, userID int64, date time.Time) (*weeks.Week, error)
	Find(ctx context.Context, userID int64, date time.Time) (*weeks.Week, error)
}

type LoadMaintainer interface {
	Apply(ctx context.Context, s sessions.Session) error
	RebuildDate(ctx context.Context, userID int64, date time.Time) (int, error)
}

type LoadAnalyzer interface {
	Analyze(ctx context.Context, userID int64, weekStart time.Time) (*analysis.Report, error)
}

type Service struct {
	tx         Transactor
	sessions   SessionRepo
	weeks      WeekManager
	maintainer LoadMaintainer
	analyzer   LoadAnalyzer
	metrics    *metrics.Manager
}

func NewService(
	tx Transactor,
	sessions SessionRepo,
	weeks WeekManager,
	maintainer LoadMaintainer,
	analyzer LoadAnalyzer,
	metricsManager *metrics.Manager,
) *Service {
	return &Service{
		tx:         tx,
		sessions:   sessions,
		weeks:      weeks,
		maintainer: maintainer,
		analyzer:   analyzer,
		metrics:    metricsManager,
	}
}

// Create stores a new activity and merges its load into the daily aggregates.
func (s *Service) Create(ctx context.Context, userID int64, p sessions.Payload) (_ *sessions.Session, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.activities.create")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if err := p.Validate(); err != nil {
		return nil, err
	}

	var created *sessions.Session
	err = s.tx.InTx(ctx, func(ctx context.Context) error {
		week, err := s.weeks.Ensure(ctx, userID, p.Date)
		if err != nil {
			return err
		}

		created, err = s.sessions.Add(ctx, sessions.Session{UserID: userID, WeekID: week.ID}.Apply(p))
		if err != nil {
			return err
		}

		return s.maintainer.Apply(ctx, *created)
	})
	if err != nil {
		return nil, fmt.Errorf("create activity: %w", err)
	}

	span.SetAttributes(attribute.Int64("activity.id", created.ID))
	s.metrics.ObserveActivityMutation("create")
	return created, nil
}

// Update replaces the activity and rebuilds the aggregates of its old and new date.
func (s *Service) Update(ctx context.Context, userID, id int64, p sessions.Payload) (_ *sessions.Session, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.activities.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int64("activity.id", id))

	if err := p.Validate(); err != nil {
		return nil, err
	}

	var updated sessions.Session
	err = s.tx.InTx(ctx, func(ctx context.Context) error {
		current, err := s.sessions.Get(ctx, userID, id)
		if err != nil {
			return err
		}

		week, err := s.weeks.Ensure(ctx, userID, p.Date)
		if err != nil {
			return err
		}

		updated = current.Apply(p)
		updated.WeekID = week.ID
		if err := s.sessions.Update(ctx, updated); err != nil {
			return err
		}
		updated.Date = pkg.Day(updated.Date)

		return s.rebuildDates(ctx, userID, current.Date, updated.Date)
	})
	if err != nil {
		return nil, fmt.Errorf("update activity %d: %w", id, err)
	}

	s.metrics.ObserveActivityMutation("update")
	return &updated, nil
}

// Delete removes the activity and rebuilds the aggregates of its date.
func (s *Service) Delete(ctx context.Context, userID, id int64) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.activities.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int64("activity.id", id))

	err = s.tx.InTx(ctx, func(ctx context.Context) error {
		current, err := s.sessions.Get(ctx, userID, id)
		if err != nil {
			return err
		}
		if err := s.sessions.Delete(ctx, userID, id); err != nil {
			return err
		}
		return s.rebuildDates(ctx, userID, current.Date)
	})
	if err != nil {
		return fmt.Errorf("delete activity %d: %w", id, err)
	}

	s.metrics.ObserveActivityMutation("delete")
	return nil
}

// rebuildDates rebuilds every distinct date in ascending order, so two
// transactions touching the same dates take their locks in the same order.
func (s *Service) rebuildDates(ctx context.Context, userID int64, dates ...time.Time) error {
	distinct := make([]time.Time, 0, len(dates))
	for _, d := range dates {
		d = pkg.Day(d)
		if !slices.ContainsFunc(distinct, d.Equal) {
			distinct = append(distinct, d)
		}
	}
	slices.SortFunc(distinct, time.Time.Compare)

	for _, d := range distinct {
		if _, err := s.maintainer.RebuildDate(ctx, userID, d); err != nil {
			return fmt.Errorf("rebuild %s: %w", pkg.FormatDate(d), err)
		}
	}
	return nil
}

// RebuildDailyLoads rebuilds every date of [start, end] in its own
// transaction and returns the number of activities replayed. A nil end means
// start. Dates rebuilt before a failure stay committed.
func (s *Service) RebuildDailyLoads(ctx context.Context, userID int64, start time.Time, end *time.Time) (_ int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.activities.rebuild_daily_loads")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	last := start
	if end != nil {
		last = *end
	}
	if pkg.Day(last).Before(pkg.Day(start)) {
		return 0, fmt.Errorf("%w: %s < %s", ErrInvalidDateRange, pkg.FormatDate(last), pkg.FormatDate(start))
	}
	span.SetAttributes(
		attribute.String("range.start", pkg.FormatDate(start)),
		attribute.String("range.end", pkg.FormatDate(last)),
	)

	total := 0
	for _, day := range pkg.DaysBetween(start, last) {
		if err := ctx.Err(); err != nil {
			return total, err
		}

		began := time.Now()
		var replayed int
		err := s.tx.InTx(ctx, func(ctx context.Context) error {
			var err error
			replayed, err = s.maintainer.RebuildDate(ctx, userID, day)
			return err
		})
		if err != nil {
			return total, fmt.Errorf("rebuild %s: %w", pkg.FormatDate(day), err)
		}

		total += replayed
		s.metrics.ObserveRebuild(replayed, time.Since(began).Seconds())
	}

	log.WithFields(log.Fields{
		"user_id":  userID,
		"start":    pkg.FormatDate(start),
		"end":      pkg.FormatDate(last),
		"replayed": total,
	}).Info("daily muscle loads rebuilt")

	return total, nil
}

// GetWeekSummary lists the activities and stats of the existing week
// containing date.
func (s *Service) GetWeekSummary(ctx context.Context, userID int64, date time.Time) (_ *WeekSummary, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.activities.week_summary")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	summary := &WeekSummary{}
	err = s.tx.InTx(ctx, func(ctx context.Context) error {
		week, err := s.weeks.Find(ctx, userID, date)
		if err != nil {
			return err
		}
		summary.Week = *week

		summary.Activities, err = s.sessions.ListRange(ctx, userID, week.StartDate, week.EndDate())
		if err != nil {
			return err
		}
		summary.Stats.SportBreakdown, err = s.sessions.SportBreakdown(ctx, userID, week.StartDate, week.EndDate())
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("week summary: %w", err)
	}

	summary.Stats.SessionCount = len(summary.Activities)
	rpeSum := 0
	for _, a := range summary.Activities {
		summary.Stats.TotalDurationMinutes += a.DurationMinutes
		rpeSum += a.IntensityRPE
	}
	if summary.Stats.SessionCount > 0 {
		summary.Stats.AverageRPE = float64(rpeSum) / float64(summary.Stats.SessionCount)
	}

	return summary, nil
}

// GetMuscleLoad reports ACWR and fatigue per muscle for the existing week
// containing date.
func (s *Service) GetMuscleLoad(ctx context.Context, userID int64, date time.Time) (_ *analysis.Report, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.activities.muscle_load")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var report *analysis.Report
	err = s.tx.InTx(ctx, func(ctx context.Context) error {
		week, err := s.weeks.Find(ctx, userID, date)
		if err != nil {
			return err
		}
		report, err = s.analyzer.Analyze(ctx, userID, week.StartDate)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("muscle load: %w", err)
	}

	return report, nil
}
