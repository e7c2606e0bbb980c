package sports

import (
	"context"
	"errors"

	"github.com/2beens/trainingload/internal/db"
	"github.com/2beens/trainingload/internal/telemetry/tracing"

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

// FindFocus returns the id of the focus of sportID named name (case
// insensitive), or nil when there is none.
func (r *Repo) FindFocus(ctx context.Context, sportID int64, name string) (_ *int64, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.sports.find_focus")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int64("sport.id", sportID))

	var focusID int64
	err = db.Conn(ctx, r.db).QueryRow(
		ctx,
		`
			SELECT focus_id
			FROM sport_focus
			WHERE sport_id = $1 AND lower(name) = lower($2)
			ORDER BY focus_id
			LIMIT 1
		`,
		sportID,
		name,
	).Scan(&focusID)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, db.Wrap("find focus", err)
	}

	return &focusID, nil
}

// ListMuscleConfigs returns the sport wide default rows of sportID together
// with the rows of focusID, when given.
func (r *Repo) ListMuscleConfigs(ctx context.Context, sportID int64, focusID *int64) (_ []MuscleLoadConfig, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.sports.list_muscle_configs")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int64("sport.id", sportID))
	if focusID != nil {
		span.SetAttributes(attribute.Int64("focus.id", *focusID))
	}

	rows, err := db.Conn(ctx, r.db).Query(
		ctx,
		`
			SELECT
			    sml.id, sml.sport_id, sml.focus_id, sml.muscle_id, mg.name,
			    sml.base_load_per_minute, sml.unilateral, sml.emphasis
			FROM sport_muscle_loads sml
			JOIN muscle_groups mg ON mg.muscle_id = sml.muscle_id
			WHERE sml.sport_id = $1 AND (sml.focus_id IS NULL OR sml.focus_id = $2::bigint)
		`,
		sportID,
		focusID,
	)
	if err != nil {
		return nil, db.Wrap("list muscle configs", err)
	}
	defer rows.Close()

	var configs []MuscleLoadConfig
	for rows.Next() {
		var c MuscleLoadConfig
		if err := rows.Scan(
			&c.ID,
			&c.SportID,
			&c.FocusID,
			&c.MuscleID,
			&c.MuscleName,
			&c.BaseLoadPerMinute,
			&c.Unilateral,
			&c.Emphasis,
		); err != nil {
			return nil, db.Wrap("list muscle configs [rows scan]", err)
		}
		configs = append(configs, c)
	}
	if err := rows.Err(); err != nil {
		return nil, db.Wrap("list muscle configs [rows error]", err)
	}

	return configs, nil
}
