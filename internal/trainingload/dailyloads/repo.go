package dailyloads

import (
	"context"
	"fmt"
	"time"

	"github.com/2beens/trainingload/internal/db"
	"github.com/2beens/trainingload/internal/telemetry/tracing"
	"github.com/2beens/trainingload/pkg"

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

func lockKey(userID int64, date time.Time) string {
	return fmt.Sprintf("daily_muscle_loads:%d:%s", userID, pkg.FormatDate(date))
}

func (r *Repo) LockDate(ctx context.Context, userID int64, date time.Time) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.dailyloads.lock_date")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	_, err = db.Conn(ctx, r.db).Exec(
		ctx,
		`SELECT pg_advisory_xact_lock(hashtextextended($1, 0))`,
		lockKey(userID, date),
	)
	if err != nil {
		return db.Wrap("lock daily loads date", err)
	}

	return nil
}

func (r *Repo) DeleteDate(ctx context.Context, userID int64, date time.Time) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.dailyloads.delete_date")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	tag, err := db.Conn(ctx, r.db).Exec(
		ctx,
		`DELETE FROM daily_muscle_loads WHERE user_id = $1 AND load_date = $2`,
		userID,
		pkg.Day(date),
	)
	if err != nil {
		return db.Wrap("delete daily loads", err)
	}
	span.SetAttributes(attribute.Int64("rows.deleted", tag.RowsAffected()))

	return nil
}

func (r *Repo) MergeAdd(ctx context.Context, userID, muscleID int64, date time.Time, score float64) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.dailyloads.merge_add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	_, err = db.Conn(ctx, r.db).Exec(
		ctx,
		`
			INSERT INTO daily_muscle_loads (user_id, muscle_id, load_date, load_score)
			VALUES ($1, $2, $3, $4)
			ON CONFLICT (user_id, muscle_id, load_date) DO UPDATE
			SET load_score = daily_muscle_loads.load_score + EXCLUDED.load_score,
			    updated_at = now()
		`,
		userID,
		muscleID,
		pkg.Day(date),
		score,
	)
	if err != nil {
		return db.Wrap("merge daily load", err)
	}

	return nil
}

func (r *Repo) SumByMuscle(ctx context.Context, userID int64, from, to time.Time) (_ []MuscleTotal, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.dailyloads.sum_by_muscle")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.String("range.from", pkg.FormatDate(from)),
		attribute.String("range.to", pkg.FormatDate(to)),
	)

	rows, err := db.Conn(ctx, r.db).Query(
		ctx,
		`
			SELECT d.muscle_id, m.name, SUM(d.load_score)
			FROM daily_muscle_loads d
			JOIN muscle_groups m ON m.muscle_id = d.muscle_id
			WHERE d.user_id = $1 AND d.load_date BETWEEN $2 AND $3
			GROUP BY d.muscle_id, m.name
			ORDER BY d.muscle_id
		`,
		userID,
		pkg.Day(from),
		pkg.Day(to),
	)
	if err != nil {
		return nil, db.Wrap("sum daily loads", err)
	}
	defer rows.Close()

	var totals []MuscleTotal
	for rows.Next() {
		var t MuscleTotal
		if err := rows.Scan(&t.MuscleID, &t.MuscleName, &t.Total); err != nil {
			return nil, db.Wrap("sum daily loads [rows scan]", err)
		}
		totals = append(totals, t)
	}
	if err := rows.Err(); err != nil {
		return nil, db.Wrap("sum daily loads [rows error]", err)
	}

	return totals, nil
}
