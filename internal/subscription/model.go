package subscription

import "time"

type Status string

const (
	StatusActive    Status = "active"
	StatusCompleted Status = "completed"
	StatusRefunded  Status = "refunded"
	StatusForfeited Status = "forfeited"
)

// Subscription is one user's pledge-backed 12-week program. ActivatedAt is
// set once at payment confirmation and is the sole anchor for all week
// windows; it is never updated afterwards.
type Subscription struct {
	ID              int       `db:"id" json:"id"`
	UserID          int       `db:"user_id" json:"user_id"`
	PlanType        string    `db:"plan_type" json:"plan_type"`
	Status          Status    `db:"status" json:"status"`
	ActivatedAt     time.Time `db:"activated_at" json:"activated_at"`
	ProgramWeeks    int       `db:"program_weeks" json:"program_weeks"`
	RequiredPerWeek int       `db:"required_per_week" json:"required_per_week"`
	GraceWeeks      int       `db:"grace_weeks" json:"grace_weeks"`
	PledgeCents     int64     `db:"pledge_cents" json:"pledge_cents"`
	Currency        string    `db:"currency" json:"currency"`
	CreatedAt       time.Time `db:"created_at" json:"created_at"`
	UpdatedAt       time.Time `db:"updated_at" json:"updated_at"`

	// Set once by the first reader that observes a terminal eligibility
	// loss; gates the one-time loss notice.
	EligibilityLostNotifiedAt *time.Time `db:"eligibility_lost_notified_at" json:"eligibility_lost_notified_at,omitempty"`
}

type Plan struct {
	Type            string `json:"type"`
	Name            string `json:"name"`
	Description     string `json:"description"`
	PledgeCents     int64  `json:"pledge_cents"`
	RequiredPerWeek int    `json:"required_per_week"`
	ProgramWeeks    int    `json:"program_weeks"`
	GraceWeeks      int    `json:"grace_weeks"`
}

type ActivateRequest struct {
	UserID   int    `json:"user_id" binding:"required"`
	PlanType string `json:"plan_type" binding:"required"`
}
