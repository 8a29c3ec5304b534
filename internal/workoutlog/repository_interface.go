package workoutlog

import (
	"context"
	"time"
)

type Repository interface {
	// CreateLog is the single write path for workout logs. It runs the
	// cooldown check and the insert in one transaction, serialized per
	// user, and stamps logged_at with the server clock it is given.
	CreateLog(ctx context.Context, userID, workoutID int, now time.Time) (*WorkoutLog, error)

	GetLastLog(ctx context.Context, userID int) (*WorkoutLog, error)
	ListInWindow(ctx context.Context, userID int, start, end time.Time) ([]WorkoutLog, error)
	CountInWindow(ctx context.Context, userID int, start, end time.Time) (int, error)
	ListByUser(ctx context.Context, userID int, limit, offset int) ([]WorkoutLog, error)
}
