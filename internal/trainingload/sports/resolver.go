package sports

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/2beens/trainingload/internal/telemetry/tracing"
)

//go:generate mockgen -source=$GOFILE -destination=resolver_mocks_test.go -package=sports_test

type Repository interface {
	FindFocus(ctx context.Context, sportID int64, name string) (*int64, error)
	ListMuscleConfigs(ctx context.Context, sportID int64, focusID *int64) ([]MuscleLoadConfig, error)
}

// resolution is the outcome for a single muscle while merging config rows.
// A muscle with no rows has no resolution at all.
type resolution interface {
	config() MuscleLoadConfig
	// outranks reports whether this resolution wins over other.
	outranks(other resolution) bool
}

type focused struct {
	cfg MuscleLoadConfig
}

func (f focused) config() MuscleLoadConfig { return f.cfg }

func (f focused) outranks(other resolution) bool {
	switch o := other.(type) {
	case focused:
		return f.cfg.ID < o.cfg.ID
	default:
		return true
	}
}

type defaulted struct {
	cfg MuscleLoadConfig
}

func (d defaulted) config() MuscleLoadConfig { return d.cfg }

func (d defaulted) outranks(other resolution) bool {
	switch o := other.(type) {
	case defaulted:
		return d.cfg.ID < o.cfg.ID
	default:
		return false
	}
}

type Resolver struct {
	repo Repository
}

func NewResolver(repo Repository) *Resolver {
	return &Resolver{
		repo: repo,
	}
}

// ResolveFocus matches category against the focus names of sportID. Blank or
// unmatched categories resolve to nil, meaning the sport default applies.
func (r *Resolver) ResolveFocus(ctx context.Context, sportID int64, category string) (*int64, error) {
	category = strings.TrimSpace(category)
	if category == "" {
		return nil, nil
	}
	focusID, err := r.repo.FindFocus(ctx, sportID, category)
	if err != nil {
		return nil, fmt.Errorf("resolve focus: %w", err)
	}
	return focusID, nil
}

// ResolveConfigs returns at most one config per muscle, ordered by muscle id.
// A row of focusID always beats the sport default for the same muscle.
func (r *Resolver) ResolveConfigs(ctx context.Context, sportID int64, focusID *int64) (_ []MuscleLoadConfig, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "resolver.sports.resolve_configs")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.repo.ListMuscleConfigs(ctx, sportID, focusID)
	if err != nil {
		return nil, fmt.Errorf("resolve configs: %w", err)
	}
	return Merge(rows, focusID), nil
}

// Resolve is ResolveFocus followed by ResolveConfigs.
func (r *Resolver) Resolve(ctx context.Context, sportID int64, category string) ([]MuscleLoadConfig, error) {
	focusID, err := r.ResolveFocus(ctx, sportID, category)
	if err != nil {
		return nil, err
	}
	return r.ResolveConfigs(ctx, sportID, focusID)
}

// Merge picks the authoritative row per muscle out of rows. Rows of a focus
// other than focusID are ignored. The result does not depend on row order.
func Merge(rows []MuscleLoadConfig, focusID *int64) []MuscleLoadConfig {
	byMuscle := make(map[int64]resolution, len(rows))
	for _, row := range rows {
		var candidate resolution
		switch {
		case row.FocusID == nil:
			candidate = defaulted{cfg: row}
		case focusID != nil && *row.FocusID == *focusID:
			candidate = focused{cfg: row}
		default:
			continue
		}

		current, ok := byMuscle[row.MuscleID]
		if !ok || candidate.outranks(current) {
			byMuscle[row.MuscleID] = candidate
		}
	}

	configs := make([]MuscleLoadConfig, 0, len(byMuscle))
	for _, res := range byMuscle {
		configs = append(configs, res.config())
	}
	sort.Slice(configs, func(i, j int) bool {
		return configs[i].MuscleID < configs[j].MuscleID
	})
	return configs
}
