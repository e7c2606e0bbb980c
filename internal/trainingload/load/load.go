// Package load defines how much a single training session loads a muscle.
package load

import (
	"errors"
	"math"
)

const (
	DefaultBaselineRPE = 6.0

	IntensityMin = 0.5
	IntensityMax = 1.5

	UnilateralMultiplier = 0.75
	EmphasisMultiplier   = 1.2
)

var ErrInvalidBaseline = errors.New("baseline rpe must be positive")

// Coefficients is the per muscle load configuration of a sport.
type Coefficients struct {
	BaseLoadPerMinute float64
	Unilateral        bool
	Emphasis          bool
}

// IntensityFactor returns rpe/baseline clamped to [IntensityMin, IntensityMax].
func IntensityFactor(rpe, baseline float64) (float64, error) {
	if baseline <= 0 || math.IsNaN(baseline) {
		return 0, ErrInvalidBaseline
	}
	return math.Min(math.Max(rpe/baseline, IntensityMin), IntensityMax), nil
}

// MuscleLoadScore is the clamped, multiplier adjusted contribution of one
// session to one muscle. It feeds the daily aggregates and ACWR.
func MuscleLoadScore(durationMinutes int, rpe int, c Coefficients, baseline float64) (float64, error) {
	factor, err := IntensityFactor(float64(rpe), baseline)
	if err != nil {
		return 0, err
	}

	score := float64(durationMinutes) * c.BaseLoadPerMinute * factor
	if c.Unilateral {
		score *= UnilateralMultiplier
	}
	if c.Emphasis {
		score *= EmphasisMultiplier
	}
	return score, nil
}

// FatigueScore is the raw intensity weighted volume of one session for one
// muscle: no clamping and no unilateral/emphasis multipliers.
func FatigueScore(durationMinutes int, rpe int, baseLoadPerMinute float64, baseline float64) (float64, error) {
	if baseline <= 0 || math.IsNaN(baseline) {
		return 0, ErrInvalidBaseline
	}
	return float64(durationMinutes) * baseLoadPerMinute * (float64(rpe) / baseline), nil
}
