// Package athletes reads the optional body profile of a user.
package athletes

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/2beens/trainingload/internal/db"
	"github.com/2beens/trainingload/internal/telemetry/tracing"
	"github.com/2beens/trainingload/pkg"

	"github.com/jackc/pgx/v5"
)

// ErrUserNotFound is returned by writes referencing a user_id with no row in users.
var ErrUserNotFound = errors.New("user not found")

// IsUnknownUser reports whether err broke a user_id foreign key.
func IsUnknownUser(err error) bool {
	return pkg.IsForeignKeyViolationError(err) && strings.Contains(pkg.ViolatedConstraint(err), "user_id")
}

type Profile struct {
	UserID      int64
	Name        *string
	HeightCM    *float64
	WeightKG    *float64
	DateOfBirth *time.Time
}

func (p Profile) MarshalJSON() ([]byte, error) {
	var dob *string
	if p.DateOfBirth != nil {
		formatted := pkg.FormatDate(*p.DateOfBirth)
		dob = &formatted
	}
	return json.Marshal(struct {
		UserID      int64    `json:"user_id"`
		Name        *string  `json:"name,omitempty"`
		HeightCM    *float64 `json:"height_cm"`
		WeightKG    *float64 `json:"weight_kg"`
		DateOfBirth *string  `json:"date_of_birth"`
	}{
		UserID:      p.UserID,
		Name:        p.Name,
		HeightCM:    p.HeightCM,
		WeightKG:    p.WeightKG,
		DateOfBirth: dob,
	})
}

type Repo struct {
	db db.Querier
}

func NewRepo(q db.Querier) *Repo {
	return &Repo{
		db: q,
	}
}

// GetProfile returns the profile of userID, or nil when the user is unknown.
func (r *Repo) GetProfile(ctx context.Context, userID int64) (_ *Profile, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.athletes.get_profile")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	p := Profile{UserID: userID}
	err = db.Conn(ctx, r.db).QueryRow(
		ctx,
		`SELECT name, height_cm, weight_kg, date_of_birth FROM users WHERE user_id = $1`,
		userID,
	).Scan(&p.Name, &p.HeightCM, &p.WeightKG, &p.DateOfBirth)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, db.Wrap("get athlete profile", err)
	}

	return &p, nil
}
