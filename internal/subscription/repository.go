package subscription

import (
	"context"
	"errors"

	"pledgefit/internal/db"

	"github.com/jmoiron/sqlx"
)

var (
	ErrNoActiveSubscription = errors.New("no active subscription")
	ErrInvalidTransition    = errors.New("subscription is not in the expected status")
	ErrAlreadyActive        = errors.New("user already has an active subscription")
)

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

// Activate creates the subscription row at payment confirmation.
// activated_at is assigned by the database and never touched again.
func (r *repository) Activate(ctx context.Context, userID int, plan Plan) (*Subscription, error) {
	exists, err := db.Exists(ctx, r.db, `
		SELECT EXISTS(
			SELECT 1 FROM subscriptions
			WHERE user_id = $1 AND status = 'active'
		)
	`, userID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrAlreadyActive
	}

	sub := &Subscription{}
	err = r.db.QueryRowxContext(ctx, `
		INSERT INTO subscriptions (user_id, plan_type, status, activated_at, program_weeks, required_per_week, grace_weeks, pledge_cents, currency)
		VALUES ($1, $2, 'active', NOW(), $3, $4, $5, $6, 'USD')
		RETURNING id, user_id, plan_type, status, activated_at, program_weeks, required_per_week, grace_weeks, pledge_cents, currency, created_at, updated_at
	`, userID, plan.Type, plan.ProgramWeeks, plan.RequiredPerWeek, plan.GraceWeeks, plan.PledgeCents).StructScan(sub)
	if err != nil {
		return nil, err
	}

	return sub, nil
}

func (r *repository) GetActiveByUser(ctx context.Context, userID int) (*Subscription, error) {
	sub := &Subscription{}
	err := r.db.GetContext(ctx, sub, `
		SELECT *
		FROM subscriptions
		WHERE user_id = $1 AND status = 'active'
		ORDER BY activated_at DESC
		LIMIT 1
	`, userID)
	if err != nil {
		return nil, err
	}

	return sub, nil
}

func (r *repository) GetByID(ctx context.Context, id int) (*Subscription, error) {
	sub := &Subscription{}
	err := r.db.GetContext(ctx, sub, `
		SELECT *
		FROM subscriptions
		WHERE id = $1
	`, id)
	if err != nil {
		return nil, err
	}

	return sub, nil
}

// TransitionStatus moves a subscription along its lifecycle
// (active -> completed -> refunded/forfeited). The guard on the current
// status makes retries of the same transition fail instead of silently
// re-applying.
func (r *repository) TransitionStatus(ctx context.Context, id int, from, to Status) error {
	result, err := r.db.ExecContext(ctx, `
		UPDATE subscriptions
		SET status = $1, updated_at = NOW()
		WHERE id = $2 AND status = $3
	`, to, id, from)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return ErrInvalidTransition
	}

	return nil
}

// MarkEligibilityLossNotified stamps the loss notice timestamp and reports
// whether this call was the one that set it. The NULL guard picks a single
// winner among concurrent observers of the same loss.
func (r *repository) MarkEligibilityLossNotified(ctx context.Context, id int) (bool, error) {
	result, err := r.db.ExecContext(ctx, `
		UPDATE subscriptions
		SET eligibility_lost_notified_at = NOW(), updated_at = NOW()
		WHERE id = $1 AND eligibility_lost_notified_at IS NULL
	`, id)
	if err != nil {
		return false, err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}

	return rowsAffected == 1, nil
}
