// Package dailyloads maintains the derived per user, per muscle, per day load
// table so that it always equals the replay of the current activity log.
package dailyloads

import (
	"context"
	"fmt"
	"time"

	"github.com/2beens/trainingload/internal/telemetry/tracing"
	"github.com/2beens/trainingload/internal/trainingload/load"
	"github.com/2beens/trainingload/internal/trainingload/sessions"
	"github.com/2beens/trainingload/internal/trainingload/sports"
	"github.com/2beens/trainingload/pkg"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=dailyloads_mocks_test.go -package=dailyloads_test

type Repository interface {
	// LockDate serializes writers of the (user, date) aggregates until the
	// surrounding transaction ends.
	LockDate(ctx context.Context, userID int64, date time.Time) error
	DeleteDate(ctx context.Context, userID int64, date time.Time) error
	MergeAdd(ctx context.Context, userID, muscleID int64, date time.Time, score float64) error
	SumByMuscle(ctx context.Context, userID int64, from, to time.Time) ([]MuscleTotal, error)
}

type SessionLister interface {
	ListByDate(ctx context.Context, userID int64, date time.Time) ([]sessions.Session, error)
}

type ConfigResolver interface {
	Resolve(ctx context.Context, sportID int64, category string) ([]sports.MuscleLoadConfig, error)
}

// Contribution is the load one session puts on one muscle.
type Contribution struct {
	MuscleID   int64
	MuscleName string
	Score      float64
}

// MuscleTotal is the summed daily load of one muscle over a date range.
type MuscleTotal struct {
	MuscleID   int64
	MuscleName string
	Total      float64
}

type Maintainer struct {
	repo     Repository
	sessions SessionLister
	resolver ConfigResolver
	baseline float64
}

func NewMaintainer(repo Repository, sessions SessionLister, resolver ConfigResolver, baselineRPE float64) *Maintainer {
	return &Maintainer{
		repo:     repo,
		sessions: sessions,
		resolver: resolver,
		baseline: baselineRPE,
	}
}

// Contributions computes the per muscle load of s, in muscle id order.
func (m *Maintainer) Contributions(ctx context.Context, s sessions.Session) ([]Contribution, error) {
	configs, err := m.resolver.Resolve(ctx, s.SportID, s.Category)
	if err != nil {
		return nil, fmt.Errorf("resolve configs of sport %d: %w", s.SportID, err)
	}

	contributions := make([]Contribution, 0, len(configs))
	for _, cfg := range configs {
		score, err := load.MuscleLoadScore(s.DurationMinutes, s.IntensityRPE, cfg.Coefficients(), m.baseline)
		if err != nil {
			return nil, err
		}
		contributions = append(contributions, Contribution{
			MuscleID:   cfg.MuscleID,
			MuscleName: cfg.MuscleName,
			Score:      score,
		})
	}

	return contributions, nil
}

// Apply merge-adds the contributions of a newly created session into the
// aggregates of its date. Must run inside a transaction.
func (m *Maintainer) Apply(ctx context.Context, s sessions.Session) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "maintainer.dailyloads.apply")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int64("activity.id", s.ID))

	if err := m.repo.LockDate(ctx, s.UserID, s.Date); err != nil {
		return fmt.Errorf("lock date: %w", err)
	}
	return m.apply(ctx, s)
}

// RebuildDate deletes the aggregates of (userID, date) and replays every
// session currently on that date. Returns the number of sessions replayed.
// Must run inside a transaction.
func (m *Maintainer) RebuildDate(ctx context.Context, userID int64, date time.Time) (_ int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "maintainer.dailyloads.rebuild_date")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	date = pkg.Day(date)
	span.SetAttributes(attribute.String("date", pkg.FormatDate(date)))

	if err := m.repo.LockDate(ctx, userID, date); err != nil {
		return 0, fmt.Errorf("lock date: %w", err)
	}
	if err := m.repo.DeleteDate(ctx, userID, date); err != nil {
		return 0, fmt.Errorf("delete daily loads: %w", err)
	}

	daySessions, err := m.sessions.ListByDate(ctx, userID, date)
	if err != nil {
		return 0, fmt.Errorf("list sessions: %w", err)
	}
	for _, s := range daySessions {
		if err := m.apply(ctx, s); err != nil {
			return 0, fmt.Errorf("replay activity %d: %w", s.ID, err)
		}
	}

	log.WithFields(log.Fields{
		"user_id":  userID,
		"date":     pkg.FormatDate(date),
		"replayed": len(daySessions),
	}).Debug("daily loads rebuilt")

	return len(daySessions), nil
}

// Totals sums the aggregates of userID per muscle over [from, to].
func (m *Maintainer) Totals(ctx context.Context, userID int64, from, to time.Time) (map[int64]MuscleTotal, error) {
	totals, err := m.repo.SumByMuscle(ctx, userID, from, to)
	if err != nil {
		return nil, fmt.Errorf("sum daily loads: %w", err)
	}
	byMuscle := make(map[int64]MuscleTotal, len(totals))
	for _, t := range totals {
		byMuscle[t.MuscleID] = t
	}
	return byMuscle, nil
}

func (m *Maintainer) apply(ctx context.Context, s sessions.Session) error {
	contributions, err := m.Contributions(ctx, s)
	if err != nil {
		return err
	}
	for _, c := range contributions {
		if c.Score <= 0 {
			continue
		}
		if err := m.repo.MergeAdd(ctx, s.UserID, c.MuscleID, s.Date, c.Score); err != nil {
			return fmt.Errorf("merge muscle %d: %w", c.MuscleID, err)
		}
	}
	return nil
}
