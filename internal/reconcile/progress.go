// Package reconcile maps the backend's heterogeneous response shapes into
// the canonical client-side models. Each endpoint's bespoke field names are
// known only here; callers consume one normalized representation no matter
// which endpoint produced the raw data.
//
// Reconciliation never fails on missing optional fields. It fails only when
// a success-status body is not well-formed JSON, and that failure is
// classified as a retryable *apierr.ServerError: a malformed 200 is as
// untrustworthy as a 500.
package reconcile

import (
	"encoding/json"
	"time"

	"github.com/alnah/go-lingua/internal/apierr"
)

// CanonicalProgress is the normalized view of a user's progress. Optional
// integer fields default to 0; optional timestamps stay absent (nil), never a
// sentinel date.
type CanonicalProgress struct {
	XPTotal             int
	Level               int
	StreakDays          int
	MaxStreak           int
	Coins               int
	PowerUpCounts       map[string]int // keyed by the backend's raw field names
	LastLessonAt        *time.Time
	XPForCurrentLevel   int
	XPForNextLevel      int
	ProgressToNextLevel float64 // in [0,1]
}

// Raw power-up count fields as the progress endpoint names them.
const (
	fieldStreakFreezes     = "streak_freezes"
	fieldXPBoost2x         = "xp_boost_2x"
	fieldPerfectProtection = "perfect_protection"
	fieldTimeWarp          = "time_warp"
)

// rawProgress covers every spelling the progress endpoints use. Some
// quantities appear under two names depending on the endpoint, so both are
// probed.
type rawProgress struct {
	XPTotal             *int       `json:"xp_total"`
	TotalXP             *int       `json:"total_xp"`
	Level               *int       `json:"level"`
	StreakDays          *int       `json:"streak_days"`
	CurrentStreak       *int       `json:"current_streak"`
	MaxStreak           *int       `json:"max_streak"`
	Coins               *int       `json:"coins"`
	StreakFreezes       *int       `json:"streak_freezes"`
	XPBoost2x           *int       `json:"xp_boost_2x"`
	PerfectProtection   *int       `json:"perfect_protection"`
	TimeWarp            *int       `json:"time_warp"`
	LastLessonAt        *time.Time `json:"last_lesson_at"`
	XPForCurrentLevel   *int       `json:"xp_for_current_level"`
	XPForNextLevel      *int       `json:"xp_for_next_level"`
	ProgressToNextLevel *float64   `json:"progress_to_next_level"`
}

// Progress reconciles a raw progress body into the canonical model.
func Progress(body []byte) (CanonicalProgress, error) {
	var raw rawProgress
	if err := json.Unmarshal(body, &raw); err != nil {
		return CanonicalProgress{}, &apierr.ServerError{
			Message: "malformed progress response",
			Err:     err,
		}
	}

	return CanonicalProgress{
		XPTotal:    firstInt(raw.XPTotal, raw.TotalXP),
		Level:      intOrZero(raw.Level),
		StreakDays: firstInt(raw.StreakDays, raw.CurrentStreak),
		MaxStreak:  intOrZero(raw.MaxStreak),
		Coins:      intOrZero(raw.Coins),
		PowerUpCounts: map[string]int{
			fieldStreakFreezes:     intOrZero(raw.StreakFreezes),
			fieldXPBoost2x:         intOrZero(raw.XPBoost2x),
			fieldPerfectProtection: intOrZero(raw.PerfectProtection),
			fieldTimeWarp:          intOrZero(raw.TimeWarp),
		},
		LastLessonAt:        raw.LastLessonAt,
		XPForCurrentLevel:   intOrZero(raw.XPForCurrentLevel),
		XPForNextLevel:      intOrZero(raw.XPForNextLevel),
		ProgressToNextLevel: floatOrZero(raw.ProgressToNextLevel),
	}, nil
}

// GuestProgress is the static fallback returned for anonymous users without
// any network activity: a zero-valued snapshot at level 1.
func GuestProgress() CanonicalProgress {
	return CanonicalProgress{
		Level: 1,
		PowerUpCounts: map[string]int{
			fieldStreakFreezes:     0,
			fieldXPBoost2x:         0,
			fieldPerfectProtection: 0,
			fieldTimeWarp:          0,
		},
	}
}

func intOrZero(p *int) int {
	if p == nil {
		return 0
	}
	return *p
}

// firstInt returns the first non-nil value, or 0.
func firstInt(ps ...*int) int {
	for _, p := range ps {
		if p != nil {
			return *p
		}
	}
	return 0
}

func floatOrZero(p *float64) float64 {
	if p == nil {
		return 0
	}
	return *p
}
