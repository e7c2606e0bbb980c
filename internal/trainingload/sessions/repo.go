package sessions

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/2beens/trainingload/internal/db"
	"github.com/2beens/trainingload/internal/telemetry/tracing"
	"github.com/2beens/trainingload/internal/trainingload/athletes"
	"github.com/2beens/trainingload/pkg"

	"github.com/jackc/pgx/v5"
	"go.opentelemetry.io/otel/attribute"
)

const sessionColumns = `
	activity_id, user_id, week_id, session_date, sport_id,
	COALESCE(category, ''), duration_minutes, intensity_rpe, COALESCE(notes, '')
`

type Repo struct {
	db db.Querier
}

func NewRepo(q db.Querier) *Repo {
	return &Repo{
		db: q,
	}
}

func (r *Repo) Add(ctx context.Context, s Session) (_ *Session, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.sessions.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	err = db.Conn(ctx, r.db).QueryRow(
		ctx,
		`
			INSERT INTO activity_sessions
			    (user_id, week_id, session_date, sport_id, category, duration_minutes, intensity_rpe, notes)
			VALUES ($1, $2, $3, $4, NULLIF($5, ''), $6, $7, NULLIF($8, ''))
			RETURNING activity_id
		`,
		s.UserID,
		s.WeekID,
		pkg.Day(s.Date),
		s.SportID,
		s.Category,
		s.DurationMinutes,
		s.IntensityRPE,
		s.Notes,
	).Scan(&s.ID)
	if err != nil {
		return nil, mapWriteError("add session", err)
	}

	s.Date = pkg.Day(s.Date)
	return &s, nil
}

func (r *Repo) Get(ctx context.Context, userID, id int64) (_ *Session, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.sessions.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int64("activity.id", id))

	row := db.Conn(ctx, r.db).QueryRow(
		ctx,
		`SELECT `+sessionColumns+` FROM activity_sessions WHERE user_id = $1 AND activity_id = $2`,
		userID,
		id,
	)
	s, err := scanSession(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, db.Wrap("get session", err)
	}

	return s, nil
}

func (r *Repo) Update(ctx context.Context, s Session) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.sessions.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int64("activity.id", s.ID))

	tag, err := db.Conn(ctx, r.db).Exec(
		ctx,
		`
			UPDATE activity_sessions
			SET week_id = $1, session_date = $2, sport_id = $3, category = NULLIF($4, ''),
			    duration_minutes = $5, intensity_rpe = $6, notes = NULLIF($7, '')
			WHERE user_id = $8 AND activity_id = $9
		`,
		s.WeekID,
		pkg.Day(s.Date),
		s.SportID,
		s.Category,
		s.DurationMinutes,
		s.IntensityRPE,
		s.Notes,
		s.UserID,
		s.ID,
	)
	if err != nil {
		return mapWriteError("update session", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrSessionNotFound
	}

	return nil
}

func (r *Repo) Delete(ctx context.Context, userID, id int64) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.sessions.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int64("activity.id", id))

	tag, err := db.Conn(ctx, r.db).Exec(
		ctx,
		`DELETE FROM activity_sessions WHERE user_id = $1 AND activity_id = $2`,
		userID,
		id,
	)
	if err != nil {
		return db.Wrap("delete session", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrSessionNotFound
	}

	return nil
}

// ListByDate returns the sessions of userID on date, ordered by id.
func (r *Repo) ListByDate(ctx context.Context, userID int64, date time.Time) (_ []Session, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.sessions.list_by_date")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	return r.list(
		ctx,
		`SELECT `+sessionColumns+` FROM activity_sessions
		 WHERE user_id = $1 AND session_date = $2
		 ORDER BY activity_id`,
		userID,
		pkg.Day(date),
	)
}

// ListRange returns the sessions of userID within [from, to], ordered by date and id.
func (r *Repo) ListRange(ctx context.Context, userID int64, from, to time.Time) (_ []Session, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.sessions.list_range")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.String("range.from", pkg.FormatDate(from)),
		attribute.String("range.to", pkg.FormatDate(to)),
	)

	return r.list(
		ctx,
		`SELECT `+sessionColumns+` FROM activity_sessions
		 WHERE user_id = $1 AND session_date BETWEEN $2 AND $3
		 ORDER BY session_date, activity_id`,
		userID,
		pkg.Day(from),
		pkg.Day(to),
	)
}

// SportBreakdown groups the sessions of userID within [from, to] by sport,
// ordered by total duration descending.
func (r *Repo) SportBreakdown(ctx context.Context, userID int64, from, to time.Time) (_ []SportBreakdown, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.sessions.sport_breakdown")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := db.Conn(ctx, r.db).Query(
		ctx,
		`
			SELECT s.sport_id, sp.name, COUNT(*), SUM(s.duration_minutes)
			FROM activity_sessions s
			JOIN sports sp ON sp.sport_id = s.sport_id
			WHERE s.user_id = $1 AND s.session_date BETWEEN $2 AND $3
			GROUP BY s.sport_id, sp.name
			ORDER BY SUM(s.duration_minutes) DESC, s.sport_id
		`,
		userID,
		pkg.Day(from),
		pkg.Day(to),
	)
	if err != nil {
		return nil, db.Wrap("sport breakdown", err)
	}
	defer rows.Close()

	var breakdown []SportBreakdown
	for rows.Next() {
		var b SportBreakdown
		if err := rows.Scan(&b.SportID, &b.SportName, &b.Sessions, &b.TotalDuration); err != nil {
			return nil, db.Wrap("sport breakdown [rows scan]", err)
		}
		breakdown = append(breakdown, b)
	}
	if err := rows.Err(); err != nil {
		return nil, db.Wrap("sport breakdown [rows error]", err)
	}

	return breakdown, nil
}

func (r *Repo) list(ctx context.Context, query string, args ...any) ([]Session, error) {
	rows, err := db.Conn(ctx, r.db).Query(ctx, query, args...)
	if err != nil {
		return nil, db.Wrap("list sessions", err)
	}
	defer rows.Close()

	var sessions []Session
	for rows.Next() {
		s, err := scanSession(rows)
		if err != nil {
			return nil, db.Wrap("list sessions [rows scan]", err)
		}
		sessions = append(sessions, *s)
	}
	if err := rows.Err(); err != nil {
		return nil, db.Wrap("list sessions [rows error]", err)
	}

	return sessions, nil
}

func scanSession(row pgx.Row) (*Session, error) {
	var s Session
	err := row.Scan(
		&s.ID,
		&s.UserID,
		&s.WeekID,
		&s.Date,
		&s.SportID,
		&s.Category,
		&s.DurationMinutes,
		&s.IntensityRPE,
		&s.Notes,
	)
	if err != nil {
		return nil, err
	}
	s.Date = pkg.Day(s.Date)
	return &s, nil
}

func mapWriteError(op string, err error) error {
	if athletes.IsUnknownUser(err) {
		return fmt.Errorf("%s: %w", op, athletes.ErrUserNotFound)
	}
	if pkg.IsForeignKeyViolationError(err) && strings.Contains(pkg.ViolatedConstraint(err), "sport_id") {
		return fmt.Errorf("%s: %w", op, ErrUnknownSport)
	}
	if pkg.IsCheckViolationError(err) {
		return fmt.Errorf("%s: %w", op, ErrInvalidSession)
	}
	return db.Wrap(op, err)
}
