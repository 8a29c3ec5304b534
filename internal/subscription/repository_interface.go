package subscription

import "context"

type Repository interface {
	Activate(ctx context.Context, userID int, plan Plan) (*Subscription, error)
	GetActiveByUser(ctx context.Context, userID int) (*Subscription, error)
	GetByID(ctx context.Context, id int) (*Subscription, error)
	TransitionStatus(ctx context.Context, id int, from, to Status) error
	MarkEligibilityLossNotified(ctx context.Context, id int) (bool, error)
}
