package adherence

import (
	"sort"
	"time"
)

// DefaultGraceAllowance is the number of missed weeks absorbed without
// penalty over a whole program.
const DefaultGraceAllowance = 1

// WeekRecord is the evaluated outcome of one fully elapsed program week.
type WeekRecord struct {
	WeekNumber     int       `json:"week_number"`
	WindowStart    time.Time `json:"window_start"`
	WindowEnd      time.Time `json:"window_end"`
	CompletedCount int       `json:"completed_count"`
	Required       int       `json:"required"`
	GraceUsed      bool      `json:"grace_used"`
	MetRequirement bool      `json:"met_requirement"`
}

// Eligibility is the refund state derived from the full week history. It is
// recomputed from scratch on every read; nothing here is ever incrementally
// mutated in storage.
type Eligibility struct {
	RefundEligible      bool         `json:"refund_eligible"`
	GraceWeeksRemaining int          `json:"grace_weeks_remaining"`
	ConsecutiveMisses   int          `json:"consecutive_misses"`
	LostAtWeek          int          `json:"lost_at_week,omitempty"`
	Weeks               []WeekRecord `json:"weeks"`
}

// EvaluateAdherence replays the week history in order and returns the
// resulting eligibility state.
//
// Rules: a met week resets the consecutive-miss counter. The first misses
// consume the grace allowance and also reset the counter. Once grace is
// exhausted, each miss increments the counter; at two consecutive penalized
// misses refund eligibility is lost for good and later weeks cannot restore
// it.
//
// The scan is total: out-of-order or duplicated records are normalized
// (sorted by week number, first occurrence wins) rather than rejected,
// because eligibility must always be computable.
func EvaluateAdherence(history []WeekRecord, graceAllowance int) Eligibility {
	if graceAllowance < 0 {
		graceAllowance = 0
	}

	weeks := normalizeHistory(history)

	state := Eligibility{
		RefundEligible:      true,
		GraceWeeksRemaining: graceAllowance,
		Weeks:               weeks,
	}

	for i := range weeks {
		w := &weeks[i]
		w.MetRequirement = w.CompletedCount >= w.Required

		if w.MetRequirement {
			state.ConsecutiveMisses = 0
			continue
		}

		if state.GraceWeeksRemaining > 0 {
			state.GraceWeeksRemaining--
			state.ConsecutiveMisses = 0
			w.GraceUsed = true
			continue
		}

		state.ConsecutiveMisses++
		if state.ConsecutiveMisses >= 2 {
			state.RefundEligible = false
			state.LostAtWeek = w.WeekNumber
			// Terminal. Later weeks keep their records but cannot
			// change the outcome.
			break
		}
	}

	return state
}

func normalizeHistory(history []WeekRecord) []WeekRecord {
	weeks := make([]WeekRecord, len(history))
	copy(weeks, history)

	sort.SliceStable(weeks, func(i, j int) bool {
		return weeks[i].WeekNumber < weeks[j].WeekNumber
	})

	deduped := weeks[:0]
	seen := map[int]bool{}
	for _, w := range weeks {
		if seen[w.WeekNumber] {
			continue
		}
		seen[w.WeekNumber] = true
		deduped = append(deduped, w)
	}

	return deduped
}
