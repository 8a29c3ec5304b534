package pledge

import "context"

type Repository interface {
	GetOrCreateAccount(ctx context.Context, userID int) (*Account, error)
	AddTransaction(ctx context.Context, userID int, amountCents int64, txType string) error
	AddSettlement(ctx context.Context, userID int, amountCents int64, txType string) error
	GetTransactions(ctx context.Context, userID int, limit, offset int) ([]Transaction, error)
}
