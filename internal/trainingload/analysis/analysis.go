// Package analysis computes per muscle ACWR and fatigue for a training week.
package analysis

import (
	"cmp"
	"context"
	"encoding/json"
	"fmt"
	"math"
	"slices"
	"time"

	"github.com/2beens/trainingload/internal/telemetry/tracing"
	"github.com/2beens/trainingload/internal/trainingload/athletes"
	"github.com/2beens/trainingload/internal/trainingload/dailyloads"
	"github.com/2beens/trainingload/internal/trainingload/load"
	"github.com/2beens/trainingload/internal/trainingload/muscles"
	"github.com/2beens/trainingload/internal/trainingload/sessions"
	"github.com/2beens/trainingload/internal/trainingload/sports"
	"github.com/2beens/trainingload/pkg"
)

const (
	AcuteDays   = 7
	ChronicDays = 28
	// chronic load is averaged per acute window
	chronicWeeks = ChronicDays / AcuteDays
)

type DailyLoadSummer interface {
	SumByMuscle(ctx context.Context, userID int64, from, to time.Time) ([]dailyloads.MuscleTotal, error)
}

type SessionLister interface {
	ListRange(ctx context.Context, userID int64, from, to time.Time) ([]sessions.Session, error)
}

type ConfigResolver interface {
	Resolve(ctx context.Context, sportID int64, category string) ([]sports.MuscleLoadConfig, error)
}

type ProfileGetter interface {
	GetProfile(ctx context.Context, userID int64) (*athletes.Profile, error)
}

type MuscleLoad struct {
	MuscleID        int64         `json:"muscle_id"`
	MuscleName      string        `json:"muscle_name"`
	Tier            muscles.Tier  `json:"tier"`
	AcuteLoad       float64       `json:"acute_load"`
	ChronicLoad     float64       `json:"chronic_load"`
	ChronicAverage  float64       `json:"chronic_average"`
	ACWR            float64       `json:"acwr"`
	ACWRCategory    muscles.Color `json:"acwr_category"`
	FatigueScore    float64       `json:"fatigue_score"`
	FatigueCategory muscles.Color `json:"fatigue_category"`
}

type Report struct {
	WeekStart time.Time
	WeekEnd   time.Time
	Muscles   []MuscleLoad
	Athlete   *athletes.Profile
}

func (r Report) MarshalJSON() ([]byte, error) {
	ms := r.Muscles
	if ms == nil {
		ms = []MuscleLoad{}
	}
	return json.Marshal(struct {
		WeekStart string            `json:"week_start_date"`
		WeekEnd   string            `json:"week_end_date"`
		Muscles   []MuscleLoad      `json:"muscles"`
		Athlete   *athletes.Profile `json:"athlete"`
	}{
		WeekStart: pkg.FormatDate(r.WeekStart),
		WeekEnd:   pkg.FormatDate(r.WeekEnd),
		Muscles:   ms,
		Athlete:   r.Athlete,
	})
}

type Analyzer struct {
	loads    DailyLoadSummer
	sessions SessionLister
	resolver ConfigResolver
	profiles ProfileGetter
	baseline float64
}

func NewAnalyzer(
	loads DailyLoadSummer,
	sessions SessionLister,
	resolver ConfigResolver,
	profiles ProfileGetter,
	baselineRPE float64,
) *Analyzer {
	return &Analyzer{
		loads:    loads,
		sessions: sessions,
		resolver: resolver,
		profiles: profiles,
		baseline: baselineRPE,
	}
}

// ACWR divides acute by the weekly chronic average. Without chronic history
// the divisor is max(acute, 1), so a muscle with acute load >= 1 and no
// chronic history scores exactly 1.
func ACWR(acute, chronicTotal float64) float64 {
	divisor := chronicTotal / chronicWeeks
	if divisor <= 0 {
		divisor = math.Max(acute, 1)
	}
	return acute / divisor
}

// Windows returns the acute [from, to] and chronic [from, to] ranges of the
// week starting on weekStart.
func Windows(weekStart time.Time) (acuteFrom, acuteTo, chronicFrom, chronicTo time.Time) {
	acuteFrom = pkg.Day(weekStart)
	acuteTo = acuteFrom.AddDate(0, 0, AcuteDays-1)
	chronicTo = acuteFrom.AddDate(0, 0, -1)
	chronicFrom = acuteFrom.AddDate(0, 0, -ChronicDays)
	return acuteFrom, acuteTo, chronicFrom, chronicTo
}

// Analyze builds the load report of the week starting on weekStart. Only
// muscles loaded within the week are reported, highest acute load first.
func (a *Analyzer) Analyze(ctx context.Context, userID int64, weekStart time.Time) (_ *Report, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "analyzer.analysis.analyze")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	acuteFrom, acuteTo, chronicFrom, chronicTo := Windows(weekStart)

	acute, err := a.loads.SumByMuscle(ctx, userID, acuteFrom, acuteTo)
	if err != nil {
		return nil, fmt.Errorf("acute loads: %w", err)
	}
	chronic, err := a.loads.SumByMuscle(ctx, userID, chronicFrom, chronicTo)
	if err != nil {
		return nil, fmt.Errorf("chronic loads: %w", err)
	}
	chronicByMuscle := make(map[int64]float64, len(chronic))
	for _, c := range chronic {
		chronicByMuscle[c.MuscleID] = c.Total
	}

	fatigue, err := a.Fatigue(ctx, userID, acuteFrom, acuteTo)
	if err != nil {
		return nil, err
	}

	report := &Report{
		WeekStart: acuteFrom,
		WeekEnd:   acuteTo,
	}
	for _, t := range acute {
		if t.Total <= 0 {
			continue
		}
		chronicTotal := chronicByMuscle[t.MuscleID]
		acwr := ACWR(t.Total, chronicTotal)
		report.Muscles = append(report.Muscles, MuscleLoad{
			MuscleID:        t.MuscleID,
			MuscleName:      t.MuscleName,
			Tier:            muscles.TierFor(t.MuscleName),
			AcuteLoad:       t.Total,
			ChronicLoad:     chronicTotal,
			ChronicAverage:  chronicTotal / chronicWeeks,
			ACWR:            acwr,
			ACWRCategory:    muscles.ColorForACWR(t.MuscleName, acwr),
			FatigueScore:    fatigue[t.MuscleID],
			FatigueCategory: muscles.ColorForFatigue(t.MuscleName, fatigue[t.MuscleID]),
		})
	}
	slices.SortFunc(report.Muscles, func(x, y MuscleLoad) int {
		return cmp.Or(cmp.Compare(y.AcuteLoad, x.AcuteLoad), cmp.Compare(x.MuscleID, y.MuscleID))
	})

	report.Athlete, err = a.profiles.GetProfile(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("athlete profile: %w", err)
	}

	return report, nil
}

// Fatigue replays every session within [from, to] through the raw fatigue
// formula and sums it per muscle. Daily aggregates are not consulted.
func (a *Analyzer) Fatigue(ctx context.Context, userID int64, from, to time.Time) (map[int64]float64, error) {
	list, err := a.sessions.ListRange(ctx, userID, from, to)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}

	fatigue := make(map[int64]float64)
	for _, s := range list {
		configs, err := a.resolver.Resolve(ctx, s.SportID, s.Category)
		if err != nil {
			return nil, fmt.Errorf("resolve configs of activity %d: %w", s.ID, err)
		}
		for _, cfg := range configs {
			score, err := load.FatigueScore(s.DurationMinutes, s.IntensityRPE, cfg.BaseLoadPerMinute, a.baseline)
			if err != nil {
				return nil, err
			}
			fatigue[cfg.MuscleID] += score
		}
	}

	return fatigue, nil
}
