package workout

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

func setupWorkoutMock(t *testing.T) (Repository, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	sqlxDB := sqlx.NewDb(db, "sqlmock")
	repo := NewRepository(sqlxDB)

	closer := func() { sqlxDB.Close() }
	return repo, mock, closer
}

func TestGetByID(t *testing.T) {
	repo, mock, close := setupWorkoutMock(t)
	defer close()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, title, description, day_number, variation, created_at")).
		WithArgs(3).
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "description", "day_number", "variation", "created_at"}).
			AddRow(3, "Lower Body Strength", "Squat focus", 3, "A", time.Now()))

	w, err := repo.GetByID(context.Background(), 3)
	require.NoError(t, err)
	require.Equal(t, "Lower Body Strength", w.Title)
	require.Equal(t, 3, w.DayNumber)
}

func TestGetByID_NotFound(t *testing.T) {
	repo, mock, close := setupWorkoutMock(t)
	defer close()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, title, description, day_number, variation, created_at")).
		WithArgs(404).
		WillReturnError(sql.ErrNoRows)

	w, err := repo.GetByID(context.Background(), 404)
	require.Nil(t, w)
	require.Equal(t, ErrWorkoutNotFound, err)
}

func TestListByVariation(t *testing.T) {
	repo, mock, close := setupWorkoutMock(t)
	defer close()

	mock.ExpectQuery(regexp.QuoteMeta("ORDER BY day_number ASC")).
		WithArgs("A", 4).
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "description", "day_number", "variation", "created_at"}).
			AddRow(1, "Upper Body Push", "", 1, "A", time.Now()).
			AddRow(2, "Conditioning", "", 2, "A", time.Now()).
			AddRow(3, "Lower Body Strength", "", 3, "A", time.Now()).
			AddRow(4, "Full Body", "", 4, "A", time.Now()))

	workouts, err := repo.ListByVariation(context.Background(), "A", 4)
	require.NoError(t, err)
	require.Len(t, workouts, 4)
	require.Equal(t, 1, workouts[0].DayNumber)
	require.Equal(t, 4, workouts[3].DayNumber)
}
