package user

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"
)

func setupUserMock(t *testing.T) (Repository, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	sqlxDB := sqlx.NewDb(db, "sqlmock")
	repo := NewRepository(sqlxDB)

	closer := func() { sqlxDB.Close() }
	return repo, mock, closer
}

func TestFindByID(t *testing.T) {
	repo, mock, close := setupUserMock(t)
	defer close()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, name, email, role, created_at")).
		WithArgs(1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "email", "role", "created_at"}).
			AddRow(1, "Alex", "alex@example.com", "member", time.Now()))

	u, err := repo.FindByID(context.Background(), 1)
	require.NoError(t, err)
	require.Equal(t, "alex@example.com", u.Email)
}

func TestFindByID_NotFound(t *testing.T) {
	repo, mock, close := setupUserMock(t)
	defer close()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, name, email, role, created_at")).
		WithArgs(99).
		WillReturnError(sql.ErrNoRows)

	u, err := repo.FindByID(context.Background(), 99)
	require.Nil(t, u)
	require.Equal(t, ErrUserNotFound, err)
}

func TestFindByEmail(t *testing.T) {
	repo, mock, close := setupUserMock(t)
	defer close()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, name, email, role, created_at")).
		WithArgs("alex@example.com").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "email", "role", "created_at"}).
			AddRow(1, "Alex", "alex@example.com", "member", time.Now()))

	u, err := repo.FindByEmail(context.Background(), "alex@example.com")
	require.NoError(t, err)
	require.Equal(t, 1, u.ID)
}
