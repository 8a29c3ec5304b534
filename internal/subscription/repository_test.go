package subscription

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupSubscriptionMock(t *testing.T) (Repository, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	sqlxDB := sqlx.NewDb(db, "sqlmock")
	repo := NewRepository(sqlxDB)

	closer := func() { sqlxDB.Close() }
	return repo, mock, closer
}

func subscriptionColumns() []string {
	return []string{
		"id", "user_id", "plan_type", "status", "activated_at",
		"program_weeks", "required_per_week", "grace_weeks",
		"pledge_cents", "currency", "created_at", "updated_at",
	}
}

func subscriptionRow(id, userID int, status string) *sqlmock.Rows {
	now := time.Now()
	return sqlmock.NewRows(subscriptionColumns()).
		AddRow(id, userID, "committed", status, now, 12, 4, 1, int64(10000), "USD", now, now)
}

func testPlan() Plan {
	return Plan{
		Type:            "committed",
		PledgeCents:     10000,
		RequiredPerWeek: 4,
		ProgramWeeks:    12,
		GraceWeeks:      1,
	}
}

func TestActivate(t *testing.T) {
	repo, mock, close := setupSubscriptionMock(t)
	defer close()

	mock.ExpectQuery("SELECT EXISTS").
		WithArgs(1).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO subscriptions")).
		WithArgs(1, "committed", 12, 4, 1, int64(10000)).
		WillReturnRows(subscriptionRow(3, 1, "active"))

	sub, err := repo.Activate(context.Background(), 1, testPlan())
	require.NoError(t, err)
	assert.Equal(t, 3, sub.ID)
	assert.Equal(t, StatusActive, sub.Status)
	assert.Equal(t, 12, sub.ProgramWeeks)
}

func TestActivate_AlreadyActive(t *testing.T) {
	repo, mock, close := setupSubscriptionMock(t)
	defer close()

	mock.ExpectQuery("SELECT EXISTS").
		WithArgs(1).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	sub, err := repo.Activate(context.Background(), 1, testPlan())
	assert.ErrorIs(t, err, ErrAlreadyActive)
	assert.Nil(t, sub)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetActiveByUser(t *testing.T) {
	repo, mock, close := setupSubscriptionMock(t)
	defer close()

	mock.ExpectQuery("SELECT \\*").
		WithArgs(1).
		WillReturnRows(subscriptionRow(3, 1, "active"))

	sub, err := repo.GetActiveByUser(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 1, sub.UserID)
	assert.Equal(t, StatusActive, sub.Status)
}

func TestTransitionStatus(t *testing.T) {
	t.Run("guarded update applies once", func(t *testing.T) {
		repo, mock, close := setupSubscriptionMock(t)
		defer close()

		mock.ExpectExec(regexp.QuoteMeta("UPDATE subscriptions")).
			WithArgs(StatusCompleted, 3, StatusActive).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.TransitionStatus(context.Background(), 3, StatusActive, StatusCompleted)
		assert.NoError(t, err)
	})

	t.Run("wrong current status is rejected", func(t *testing.T) {
		repo, mock, close := setupSubscriptionMock(t)
		defer close()

		mock.ExpectExec(regexp.QuoteMeta("UPDATE subscriptions")).
			WithArgs(StatusRefunded, 3, StatusCompleted).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.TransitionStatus(context.Background(), 3, StatusCompleted, StatusRefunded)
		assert.ErrorIs(t, err, ErrInvalidTransition)
	})
}

func TestMarkEligibilityLossNotified(t *testing.T) {
	t.Run("first observer wins", func(t *testing.T) {
		repo, mock, close := setupSubscriptionMock(t)
		defer close()

		mock.ExpectExec(regexp.QuoteMeta("SET eligibility_lost_notified_at = NOW()")).
			WithArgs(3).
			WillReturnResult(sqlmock.NewResult(0, 1))

		first, err := repo.MarkEligibilityLossNotified(context.Background(), 3)
		assert.NoError(t, err)
		assert.True(t, first)
	})

	t.Run("already stamped", func(t *testing.T) {
		repo, mock, close := setupSubscriptionMock(t)
		defer close()

		mock.ExpectExec(regexp.QuoteMeta("SET eligibility_lost_notified_at = NOW()")).
			WithArgs(3).
			WillReturnResult(sqlmock.NewResult(0, 0))

		first, err := repo.MarkEligibilityLossNotified(context.Background(), 3)
		assert.NoError(t, err)
		assert.False(t, first)
	})
}
