package workout

import "context"

type Repository interface {
	GetByID(ctx context.Context, id int) (*Workout, error)
	ListByVariation(ctx context.Context, variation string, limit int) ([]Workout, error)
}
