package adherence

import "time"

// CooldownDuration is the mandatory rest interval after a logged workout.
const CooldownDuration = 18 * time.Hour

// Window describes the cooldown state at a single instant. It is derived on
// every read and never persisted: Active depends on now.
type Window struct {
	Active         bool       `json:"cooldown_active"`
	UnlocksAt      *time.Time `json:"unlocks_at,omitempty"`
	HoursRemaining float64    `json:"hours_remaining"`
}

// EvaluateCooldown reports whether a new workout log is blocked at now, given
// the timestamp of the user's most recent log. The window is half-open:
// active for [lastLogAt, lastLogAt+18h), expired at exactly unlocksAt.
//
// A lastLogAt in the future (clock skew, corrupted row) keeps the window
// anchored at lastLogAt, so the block widens by the skew instead of unlocking
// early.
func EvaluateCooldown(lastLogAt *time.Time, now time.Time) Window {
	if lastLogAt == nil {
		return Window{Active: false, HoursRemaining: 0}
	}

	unlocksAt := lastLogAt.Add(CooldownDuration)
	if !now.Before(unlocksAt) {
		return Window{Active: false, HoursRemaining: 0}
	}

	return Window{
		Active:         true,
		UnlocksAt:      &unlocksAt,
		HoursRemaining: unlocksAt.Sub(now).Hours(),
	}
}
