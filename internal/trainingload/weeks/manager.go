package weeks

import (
	"context"
	"fmt"
	"time"

	"github.com/2beens/trainingload/internal/telemetry/tracing"
	"github.com/2beens/trainingload/pkg"

	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=manager_mocks_test.go -package=weeks_test

type Repository interface {
	GetByStart(ctx context.Context, userID int64, start time.Time) (*Week, error)
	FindLegacy(ctx context.Context, userID int64, anchor, from, to time.Time) (*Week, error)
	UpdateStart(ctx context.Context, weekID int64, start time.Time) error
	InsertIfAbsent(ctx context.Context, userID int64, start time.Time) error
}

// legacySpan is how many days away from the Monday anchor a legacy row may start.
const legacySpan = 6

type Manager struct {
	repo Repository
}

func NewManager(repo Repository) *Manager {
	return &Manager{
		repo: repo,
	}
}

// Ensure returns the Monday anchored week containing date, migrating a legacy
// row or creating a new one when needed.
func (m *Manager) Ensure(ctx context.Context, userID int64, date time.Time) (_ *Week, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "manager.weeks.ensure")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	start := StartOfWeek(date)
	week, err := m.lookup(ctx, userID, start)
	if err != nil || week != nil {
		return week, err
	}

	if err := m.repo.InsertIfAbsent(ctx, userID, start); err != nil {
		return nil, fmt.Errorf("ensure week: %w", err)
	}
	week, err = m.repo.GetByStart(ctx, userID, start)
	if err != nil {
		return nil, fmt.Errorf("ensure week [re-read]: %w", err)
	}
	if week == nil {
		return nil, fmt.Errorf("ensure week %s: %w", pkg.FormatDate(start), ErrWeekNotFound)
	}

	return week, nil
}

// Find is Ensure for read only callers: it migrates a legacy row, but fails
// with ErrWeekNotFound instead of creating one.
func (m *Manager) Find(ctx context.Context, userID int64, date time.Time) (_ *Week, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "manager.weeks.find")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	start := StartOfWeek(date)
	week, err := m.lookup(ctx, userID, start)
	if err != nil {
		return nil, err
	}
	if week == nil {
		return nil, fmt.Errorf("week %s: %w", pkg.FormatDate(start), ErrWeekNotFound)
	}

	return week, nil
}

func (m *Manager) lookup(ctx context.Context, userID int64, start time.Time) (*Week, error) {
	week, err := m.repo.GetByStart(ctx, userID, start)
	if err != nil {
		return nil, fmt.Errorf("get week: %w", err)
	}
	if week != nil {
		return week, nil
	}

	// rows anchored before the Monday first, then later days of the same week
	legacy, err := m.repo.FindLegacy(ctx, userID, start, start.AddDate(0, 0, -legacySpan), start)
	if err != nil {
		return nil, fmt.Errorf("find legacy week: %w", err)
	}
	if legacy == nil {
		legacy, err = m.repo.FindLegacy(ctx, userID, start, start.AddDate(0, 0, 1), start.AddDate(0, 0, legacySpan))
		if err != nil {
			return nil, fmt.Errorf("find legacy week [same week]: %w", err)
		}
	}
	if legacy == nil {
		return nil, nil
	}

	log.WithFields(log.Fields{
		"week_id": legacy.ID,
		"from":    pkg.FormatDate(legacy.StartDate),
		"to":      pkg.FormatDate(start),
	}).Info("migrating legacy week anchor")

	// a unique violation means a concurrent writer already created the
	// canonical row, which the re-read below picks up
	if err := m.repo.UpdateStart(ctx, legacy.ID, start); err != nil && !pkg.IsUniqueViolationError(err) {
		return nil, fmt.Errorf("migrate legacy week: %w", err)
	}

	week, err = m.repo.GetByStart(ctx, userID, start)
	if err != nil {
		return nil, fmt.Errorf("get week [after migration]: %w", err)
	}

	return week, nil
}
