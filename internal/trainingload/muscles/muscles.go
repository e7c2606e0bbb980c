// Package muscles classifies per muscle ACWR and fatigue values into
// severity colors, using a sensitivity tier per muscle group.
package muscles

import (
	"strings"
)

type Tier string

const (
	TierA Tier = "A"
	TierB Tier = "B"
	TierC Tier = "C"
)

type Color string

const (
	White  Color = "white"
	Blue   Color = "blue"
	Green  Color = "green"
	Yellow Color = "yellow"
	Orange Color = "orange"
	Red    Color = "red"
)

var tiers = map[string]Tier{
	"core":        TierA,
	"balance":     TierA,
	"mental":      TierA,
	"calves":      TierA,
	"glutes":      TierA,
	"upper back":  TierA,
	"lats":        TierA,
	"quads":       TierB,
	"hamstrings":  TierB,
	"hip flexors": TierB,
	"adductors":   TierB,
	"shoulders":   TierB,
	"lower back":  TierB,
	"forearms":    TierB,
	"chest":       TierC,
	"biceps":      TierC,
	"triceps":     TierC,
	"tendons":     TierC,
}

type cutoff struct {
	limit     float64
	inclusive bool
	color     Color
}

// thresholds holds the ordered cutoffs of one tier; the first one is
// exclusive, the rest inclusive, anything above the last is red.
func thresholds(blue, green, yellow, orange float64) []cutoff {
	return []cutoff{
		{limit: blue, inclusive: false, color: Blue},
		{limit: green, inclusive: true, color: Green},
		{limit: yellow, inclusive: true, color: Yellow},
		{limit: orange, inclusive: true, color: Orange},
	}
}

var acwrThresholds = map[Tier][]cutoff{
	TierA: thresholds(0.7, 1.4, 1.8, 2.3),
	TierB: thresholds(0.8, 1.3, 1.5, 1.8),
	TierC: thresholds(0.9, 1.2, 1.4, 1.6),
}

var fatigueThresholds = map[Tier][]cutoff{
	TierA: thresholds(60, 180, 300, 420),
	TierB: thresholds(45, 135, 225, 315),
	TierC: thresholds(30, 90, 150, 210),
}

func Normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// TierFor returns the tier of a muscle group name, TierB when unknown.
func TierFor(muscle string) Tier {
	if tier, ok := tiers[Normalize(muscle)]; ok {
		return tier
	}
	return TierB
}

func ColorForACWR(muscle string, acwr float64) Color {
	return classify(acwrThresholds[TierFor(muscle)], acwr)
}

func ColorForFatigue(muscle string, fatigue float64) Color {
	return classify(fatigueThresholds[TierFor(muscle)], fatigue)
}

func classify(table []cutoff, value float64) Color {
	if value <= 0 {
		return White
	}
	for _, c := range table {
		if value < c.limit || (c.inclusive && value == c.limit) {
			return c.color
		}
	}
	return Red
}

// Rank orders colors by severity, white being 0 and red 5.
func Rank(c Color) int {
	switch c {
	case White:
		return 0
	case Blue:
		return 1
	case Green:
		return 2
	case Yellow:
		return 3
	case Orange:
		return 4
	case Red:
		return 5
	default:
		return -1
	}
}
