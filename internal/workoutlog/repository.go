package workoutlog

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"pledgefit/internal/adherence"
	"pledgefit/internal/subscription"

	"github.com/jmoiron/sqlx"
)

var ErrNotSubscribed = errors.New("no active subscription")

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

// CreateLog inserts a log iff the cooldown is inactive. The user's active
// subscription row is locked FOR UPDATE for the duration of the
// transaction, so two concurrent requests for the same user cannot both
// read "cooldown inactive" and both insert: the second blocks on the lock
// and re-reads a history that already contains the first insert.
func (r *repository) CreateLog(ctx context.Context, userID, workoutID int, now time.Time) (*WorkoutLog, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	var sub struct {
		ID           int       `db:"id"`
		ActivatedAt  time.Time `db:"activated_at"`
		ProgramWeeks int       `db:"program_weeks"`
	}
	err = tx.QueryRowxContext(ctx, `
		SELECT id, activated_at, program_weeks
		FROM subscriptions
		WHERE user_id = $1 AND status = 'active'
		FOR UPDATE
	`, userID).StructScan(&sub)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotSubscribed
		}
		return nil, err
	}

	var lastLoggedAt time.Time
	var lastLogAt *time.Time
	err = tx.GetContext(ctx, &lastLoggedAt, `
		SELECT logged_at
		FROM workout_logs
		WHERE user_id = $1
		ORDER BY logged_at DESC
		LIMIT 1
	`, userID)
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
	} else {
		lastLogAt = &lastLoggedAt
	}

	window := adherence.EvaluateCooldown(lastLogAt, now)
	if window.Active {
		return nil, &CooldownActiveError{
			UnlocksAt:      *window.UnlocksAt,
			HoursRemaining: window.HoursRemaining,
		}
	}

	weekNumber, _ := subscription.CurrentWeek(sub.ActivatedAt, now, sub.ProgramWeeks)

	var log WorkoutLog
	err = tx.QueryRowxContext(ctx, `
		INSERT INTO workout_logs (user_id, workout_id, logged_at, week_number)
		VALUES ($1, $2, $3, $4)
		RETURNING id, user_id, workout_id, logged_at, week_number, created_at
	`, userID, workoutID, now, weekNumber).StructScan(&log)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	return &log, nil
}

func (r *repository) GetLastLog(ctx context.Context, userID int) (*WorkoutLog, error) {
	query := `
		SELECT id, user_id, workout_id, logged_at, week_number, created_at
		FROM workout_logs
		WHERE user_id = $1
		ORDER BY logged_at DESC
		LIMIT 1
	`

	var log WorkoutLog
	err := r.db.GetContext(ctx, &log, query, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &log, nil
}

func (r *repository) ListInWindow(ctx context.Context, userID int, start, end time.Time) ([]WorkoutLog, error) {
	query := `
		SELECT id, user_id, workout_id, logged_at, week_number, created_at
		FROM workout_logs
		WHERE user_id = $1 AND logged_at >= $2 AND logged_at < $3
		ORDER BY logged_at ASC
	`

	var logs []WorkoutLog
	err := r.db.SelectContext(ctx, &logs, query, userID, start, end)
	if err != nil {
		return nil, err
	}

	return logs, nil
}

func (r *repository) CountInWindow(ctx context.Context, userID int, start, end time.Time) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM workout_logs
		WHERE user_id = $1 AND logged_at >= $2 AND logged_at < $3
	`

	var count int
	err := r.db.GetContext(ctx, &count, query, userID, start, end)
	if err != nil {
		return 0, err
	}

	return count, nil
}

func (r *repository) ListByUser(ctx context.Context, userID int, limit, offset int) ([]WorkoutLog, error) {
	if limit <= 0 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}

	query := `
		SELECT id, user_id, workout_id, logged_at, week_number, created_at
		FROM workout_logs
		WHERE user_id = $1
		ORDER BY logged_at DESC
		LIMIT $2 OFFSET $3
	`

	var logs []WorkoutLog
	err := r.db.SelectContext(ctx, &logs, query, userID, limit, offset)
	if err != nil {
		return nil, err
	}

	return logs, nil
}
