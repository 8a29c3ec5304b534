package subscription

import "time"

const daysPerWeek = 7

// CurrentWeek maps server time to the program week that now falls in,
// anchored at activatedAt. Weeks are numbered 1 through programWeeks and
// clamp at both ends: before activation the answer is week 1, after the
// program the answer stays at the final week. weekEndsAt is the end of the
// returned week's window (exclusive).
//
// The function is pure and deterministic; every endpoint that needs the
// current week calls it independently and must get the same answer for the
// same inputs.
func CurrentWeek(activatedAt, now time.Time, programWeeks int) (weekNumber int, weekEndsAt time.Time) {
	if programWeeks < 1 {
		programWeeks = 1
	}

	weekNumber = 1
	if now.After(activatedAt) {
		elapsedDays := int(now.Sub(activatedAt).Hours() / 24)
		weekNumber = elapsedDays/daysPerWeek + 1
		if weekNumber > programWeeks {
			weekNumber = programWeeks
		}
	}

	weekEndsAt = activatedAt.AddDate(0, 0, weekNumber*daysPerWeek)
	return weekNumber, weekEndsAt
}

// WeekWindow returns the [start, end) window of a given program week.
func WeekWindow(activatedAt time.Time, weekNumber int) (start, end time.Time) {
	start = activatedAt.AddDate(0, 0, (weekNumber-1)*daysPerWeek)
	end = activatedAt.AddDate(0, 0, weekNumber*daysPerWeek)
	return start, end
}

// LastElapsedWeek returns the highest week whose window has fully passed at
// now, capped at programWeeks. Zero means no week has finished yet. Only
// elapsed weeks are ever evaluated for misses; the in-progress week is not.
func LastElapsedWeek(activatedAt, now time.Time, programWeeks int) int {
	if !now.After(activatedAt) {
		return 0
	}

	elapsed := int(now.Sub(activatedAt).Hours()/24) / daysPerWeek
	if elapsed > programWeeks {
		return programWeeks
	}
	return elapsed
}

// ProgramComplete reports whether the final week's window has fully elapsed.
func ProgramComplete(activatedAt, now time.Time, programWeeks int) bool {
	return LastElapsedWeek(activatedAt, now, programWeeks) >= programWeeks
}

// Variation alternates the workout set by week parity: odd weeks run the A
// variation, even weeks run B.
func Variation(weekNumber int) string {
	if weekNumber%2 == 0 {
		return "B"
	}
	return "A"
}
