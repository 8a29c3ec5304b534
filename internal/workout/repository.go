package workout

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
)

var ErrWorkoutNotFound = errors.New("workout not found")

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) GetByID(ctx context.Context, id int) (*Workout, error) {
	query := `
		SELECT id, title, description, day_number, variation, created_at
		FROM workouts
		WHERE id = $1
	`

	var w Workout
	err := r.db.GetContext(ctx, &w, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrWorkoutNotFound
		}
		return nil, err
	}

	return &w, nil
}

// ListByVariation returns the week's workout set in day order. limit trims
// the set to the plan's required count per week.
func (r *repository) ListByVariation(ctx context.Context, variation string, limit int) ([]Workout, error) {
	query := `
		SELECT id, title, description, day_number, variation, created_at
		FROM workouts
		WHERE variation = $1
		ORDER BY day_number ASC
		LIMIT $2
	`

	var workouts []Workout
	err := r.db.SelectContext(ctx, &workouts, query, variation, limit)
	if err != nil {
		return nil, err
	}

	return workouts, nil
}
