package workoutlog

import (
	"fmt"
	"time"

	"pledgefit/internal/adherence"
	"pledgefit/internal/workout"
)

// WorkoutLog is one logged session. Rows are append-only: never updated or
// deleted, so the history stays usable as the audit trail for refund
// disputes. LoggedAt is always server-assigned.
type WorkoutLog struct {
	ID         int       `db:"id" json:"id"`
	UserID     int       `db:"user_id" json:"user_id"`
	WorkoutID  int       `db:"workout_id" json:"workout_id"`
	LoggedAt   time.Time `db:"logged_at" json:"logged_at"`
	WeekNumber int       `db:"week_number" json:"week_number"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`
}

type WorkoutStatus string

const (
	StatusCompleted WorkoutStatus = "completed"
	StatusNext      WorkoutStatus = "next"
	StatusLocked    WorkoutStatus = "locked"
)

// WorkoutView is one workout in the current-week response, annotated with
// the user's progress through the week.
type WorkoutView struct {
	ID          int           `json:"id"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	DayNumber   int           `json:"day_number"`
	Status      WorkoutStatus `json:"status"`
	LoggedDate  *time.Time    `json:"logged_date,omitempty"`
}

// WeekStatus is the composed answer to "where is the user right now":
// program position, cooldown state and the week's workout list.
type WeekStatus struct {
	WeekNumber     int           `json:"week_number"`
	Variation      string        `json:"variation"`
	WeekEndsAt     time.Time     `json:"week_ends_at"`
	CooldownActive bool          `json:"cooldown_active"`
	HoursRemaining float64       `json:"hours_remaining"`
	UnlocksAt      *time.Time    `json:"unlocks_at,omitempty"`
	AmountPaid     int64         `json:"amount_paid"`
	Workouts       []WorkoutView `json:"workouts"`
}

type SettlementOutcome string

const (
	OutcomeRefunded  SettlementOutcome = "refunded"
	OutcomeForfeited SettlementOutcome = "forfeited"
)

type SettlementResult struct {
	SubscriptionID int                   `json:"subscription_id"`
	Outcome        SettlementOutcome     `json:"outcome"`
	AmountCents    int64                 `json:"amount_cents"`
	Eligibility    adherence.Eligibility `json:"eligibility"`
}

type LogRequest struct {
	WorkoutID int `json:"workout_id" binding:"required"`
}

// CooldownActiveError rejects a log attempt inside the cooldown window. It
// is an expected outcome, not a fault: handlers turn it into a 429 with the
// countdown anchor.
type CooldownActiveError struct {
	UnlocksAt      time.Time
	HoursRemaining float64
}

func (e *CooldownActiveError) Error() string {
	return fmt.Sprintf("cooldown active until %s", e.UnlocksAt.Format(time.RFC3339))
}

func buildWorkoutViews(workouts []workout.Workout, logs []WorkoutLog) []WorkoutView {
	loggedAt := make(map[int]time.Time, len(logs))
	for _, l := range logs {
		if _, ok := loggedAt[l.WorkoutID]; !ok {
			loggedAt[l.WorkoutID] = l.LoggedAt
		}
	}

	views := make([]WorkoutView, 0, len(workouts))
	nextAssigned := false
	for _, w := range workouts {
		view := WorkoutView{
			ID:          w.ID,
			Title:       w.Title,
			Description: w.Description,
			DayNumber:   w.DayNumber,
		}

		if at, ok := loggedAt[w.ID]; ok {
			view.Status = StatusCompleted
			t := at
			view.LoggedDate = &t
		} else if !nextAssigned {
			// First not-yet-completed workout in day order.
			view.Status = StatusNext
			nextAssigned = true
		} else {
			view.Status = StatusLocked
		}

		views = append(views, view)
	}

	return views
}
