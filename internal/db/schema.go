package db

import (
	"context"
)

// Schema creates every table the training load engine reads or writes.
// Statements are idempotent so Migrate can run on every deploy.
const Schema = `
CREATE TABLE IF NOT EXISTS users
(
    user_id       BIGSERIAL PRIMARY KEY,
    name          TEXT,
    height_cm     DOUBLE PRECISION,
    weight_kg     DOUBLE PRECISION,
    date_of_birth DATE
);

CREATE TABLE IF NOT EXISTS sports
(
    sport_id                BIGSERIAL PRIMARY KEY,
    name                    TEXT NOT NULL UNIQUE,
    default_intensity_scale DOUBLE PRECISION
);

CREATE TABLE IF NOT EXISTS sport_focus
(
    focus_id BIGSERIAL PRIMARY KEY,
    sport_id BIGINT NOT NULL REFERENCES sports (sport_id),
    name     TEXT   NOT NULL
);
CREATE UNIQUE INDEX IF NOT EXISTS ux_sport_focus_name ON sport_focus (sport_id, lower(name));

CREATE TABLE IF NOT EXISTS muscle_groups
(
    muscle_id BIGSERIAL PRIMARY KEY,
    name      TEXT NOT NULL UNIQUE
);

CREATE TABLE IF NOT EXISTS sport_muscle_loads
(
    id                   BIGSERIAL PRIMARY KEY,
    sport_id             BIGINT           NOT NULL REFERENCES sports (sport_id),
    focus_id             BIGINT REFERENCES sport_focus (focus_id),
    muscle_id            BIGINT           NOT NULL REFERENCES muscle_groups (muscle_id),
    base_load_per_minute DOUBLE PRECISION NOT NULL,
    unilateral           BOOLEAN          NOT NULL DEFAULT FALSE,
    emphasis             BOOLEAN          NOT NULL DEFAULT FALSE
);
CREATE UNIQUE INDEX IF NOT EXISTS ux_sport_muscle_loads_default
    ON sport_muscle_loads (sport_id, muscle_id) WHERE focus_id IS NULL;
CREATE UNIQUE INDEX IF NOT EXISTS ux_sport_muscle_loads_focus
    ON sport_muscle_loads (sport_id, focus_id, muscle_id) WHERE focus_id IS NOT NULL;

CREATE TABLE IF NOT EXISTS weeks
(
    week_id         BIGSERIAL PRIMARY KEY,
    user_id         BIGINT NOT NULL REFERENCES users (user_id),
    week_start_date DATE   NOT NULL,
    label           TEXT,
    UNIQUE (user_id, week_start_date)
);

CREATE TABLE IF NOT EXISTS activity_sessions
(
    activity_id      BIGSERIAL PRIMARY KEY,
    user_id          BIGINT  NOT NULL REFERENCES users (user_id),
    week_id          BIGINT  NOT NULL REFERENCES weeks (week_id),
    session_date     DATE    NOT NULL,
    sport_id         BIGINT  NOT NULL REFERENCES sports (sport_id),
    category         TEXT,
    duration_minutes INTEGER NOT NULL CHECK (duration_minutes > 0),
    intensity_rpe    INTEGER NOT NULL CHECK (intensity_rpe BETWEEN 1 AND 10),
    notes            TEXT
);
CREATE INDEX IF NOT EXISTS ix_activity_sessions_user_date ON activity_sessions (user_id, session_date);

CREATE TABLE IF NOT EXISTS daily_muscle_loads
(
    user_id    BIGINT           NOT NULL REFERENCES users (user_id),
    muscle_id  BIGINT           NOT NULL REFERENCES muscle_groups (muscle_id),
    load_date  DATE             NOT NULL,
    load_score DOUBLE PRECISION NOT NULL,
    updated_at TIMESTAMPTZ      NOT NULL DEFAULT now(),
    PRIMARY KEY (user_id, muscle_id, load_date)
);
CREATE INDEX IF NOT EXISTS ix_daily_muscle_loads_user_date ON daily_muscle_loads (user_id, load_date);
`

// Migrate applies Schema. Runs without arguments so pgx sends it over the
// simple protocol, which allows multiple statements.
func Migrate(ctx context.Context, q Querier) error {
	if _, err := q.Exec(ctx, Schema); err != nil {
		return Wrap("migrate", err)
	}
	return nil
}
