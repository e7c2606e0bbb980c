package weeks

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/2beens/trainingload/internal/db"
	"github.com/2beens/trainingload/internal/telemetry/tracing"
	"github.com/2beens/trainingload/internal/trainingload/athletes"
	"github.com/2beens/trainingload/pkg"

	"github.com/jackc/pgx/v5"
	"go.opentelemetry.io/otel/attribute"
)

type Repo struct {
	db db.Querier
}

func NewRepo(q db.Querier) *Repo {
	return &Repo{
		db: q,
	}
}

func (r *Repo) GetByStart(ctx context.Context, userID int64, start time.Time) (_ *Week, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.weeks.get_by_start")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("week.start", pkg.FormatDate(start)))

	w, err := scanWeek(db.Conn(ctx, r.db).QueryRow(
		ctx,
		`
			SELECT week_id, user_id, week_start_date, label
			FROM weeks
			WHERE user_id = $1 AND week_start_date = $2
		`,
		userID,
		pkg.Day(start),
	))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, db.Wrap("get week", err)
	}

	return w, nil
}

// FindLegacy returns the row of userID whose start lies within [from, to] and
// is closest to anchor, the earlier one on a tie. Rows starting on anchor
// are not legacy and are skipped.
func (r *Repo) FindLegacy(ctx context.Context, userID int64, anchor, from, to time.Time) (_ *Week, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.weeks.find_legacy")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	w, err := scanWeek(db.Conn(ctx, r.db).QueryRow(
		ctx,
		`
			SELECT week_id, user_id, week_start_date, label
			FROM weeks
			WHERE user_id = $1
			  AND week_start_date BETWEEN $2 AND $3
			  AND week_start_date <> $4
			ORDER BY abs(week_start_date - $4::date), week_start_date
			LIMIT 1
		`,
		userID,
		pkg.Day(from),
		pkg.Day(to),
		pkg.Day(anchor),
	))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, db.Wrap("find legacy week", err)
	}

	return w, nil
}

// UpdateStart moves week weekID to start. It is a no-op when the user already
// has a week starting there, so a running transaction is never aborted by the
// unique constraint.
func (r *Repo) UpdateStart(ctx context.Context, weekID int64, start time.Time) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.weeks.update_start")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int64("week.id", weekID))

	_, err = db.Conn(ctx, r.db).Exec(
		ctx,
		`
			UPDATE weeks w
			SET week_start_date = $1
			WHERE w.week_id = $2
			  AND NOT EXISTS (
			      SELECT 1 FROM weeks c
			      WHERE c.user_id = w.user_id AND c.week_start_date = $1
			  )
		`,
		pkg.Day(start),
		weekID,
	)
	if err != nil {
		return db.Wrap("update week start", err)
	}

	return nil
}

// InsertIfAbsent creates the week of userID starting on start unless a
// concurrent writer already did.
func (r *Repo) InsertIfAbsent(ctx context.Context, userID int64, start time.Time) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.weeks.insert_if_absent")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	_, err = db.Conn(ctx, r.db).Exec(
		ctx,
		`
			INSERT INTO weeks (user_id, week_start_date)
			VALUES ($1, $2)
			ON CONFLICT (user_id, week_start_date) DO NOTHING
		`,
		userID,
		pkg.Day(start),
	)
	if athletes.IsUnknownUser(err) {
		return fmt.Errorf("insert week: %w", athletes.ErrUserNotFound)
	}
	if err != nil {
		return db.Wrap("insert week", err)
	}

	return nil
}

func scanWeek(row pgx.Row) (*Week, error) {
	var w Week
	if err := row.Scan(&w.ID, &w.UserID, &w.StartDate, &w.Label); err != nil {
		return nil, err
	}
	w.StartDate = pkg.Day(w.StartDate)
	return &w, nil
}
