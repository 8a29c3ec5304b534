package workoutlog

import (
	"testing"
	"time"

	"pledgefit/internal/workout"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildWorkoutViews(t *testing.T) {
	workouts := []workout.Workout{
		{ID: 10, Title: "Lower Body Strength", DayNumber: 1},
		{ID: 11, Title: "Upper Body Push", DayNumber: 2},
		{ID: 12, Title: "Conditioning Intervals", DayNumber: 3},
	}

	t.Run("no logs: first is next, rest locked", func(t *testing.T) {
		views := buildWorkoutViews(workouts, nil)
		require.Len(t, views, 3)
		assert.Equal(t, StatusNext, views[0].Status)
		assert.Equal(t, StatusLocked, views[1].Status)
		assert.Equal(t, StatusLocked, views[2].Status)
	})

	t.Run("completed workouts carry their log date", func(t *testing.T) {
		loggedAt := time.Date(2024, 1, 2, 18, 0, 0, 0, time.UTC)
		views := buildWorkoutViews(workouts, []WorkoutLog{{WorkoutID: 10, LoggedAt: loggedAt}})

		assert.Equal(t, StatusCompleted, views[0].Status)
		require.NotNil(t, views[0].LoggedDate)
		assert.True(t, views[0].LoggedDate.Equal(loggedAt))
		assert.Equal(t, StatusNext, views[1].Status)
		assert.Equal(t, StatusLocked, views[2].Status)
	})

	t.Run("next skips completed gaps", func(t *testing.T) {
		// Day 2 logged out of order: day 1 is still the next workout.
		views := buildWorkoutViews(workouts, []WorkoutLog{{WorkoutID: 11, LoggedAt: time.Now()}})

		assert.Equal(t, StatusNext, views[0].Status)
		assert.Equal(t, StatusCompleted, views[1].Status)
		assert.Equal(t, StatusLocked, views[2].Status)
	})

	t.Run("all completed: nothing next", func(t *testing.T) {
		logs := []WorkoutLog{
			{WorkoutID: 10, LoggedAt: time.Now()},
			{WorkoutID: 11, LoggedAt: time.Now()},
			{WorkoutID: 12, LoggedAt: time.Now()},
		}
		views := buildWorkoutViews(workouts, logs)
		for _, v := range views {
			assert.Equal(t, StatusCompleted, v.Status)
		}
	})

	t.Run("duplicate logs for one workout keep the first", func(t *testing.T) {
		first := time.Date(2024, 1, 2, 8, 0, 0, 0, time.UTC)
		second := first.Add(24 * time.Hour)
		views := buildWorkoutViews(workouts, []WorkoutLog{
			{WorkoutID: 10, LoggedAt: first},
			{WorkoutID: 10, LoggedAt: second},
		})

		require.NotNil(t, views[0].LoggedDate)
		assert.True(t, views[0].LoggedDate.Equal(first))
	})
}
