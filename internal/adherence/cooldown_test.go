package adherence

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluateCooldown_NoPriorLog(t *testing.T) {
	w := EvaluateCooldown(nil, time.Now())

	assert.False(t, w.Active)
	assert.Nil(t, w.UnlocksAt)
	assert.Equal(t, float64(0), w.HoursRemaining)
}

func TestEvaluateCooldown_ActiveWindow(t *testing.T) {
	lastLog := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		now    time.Time
		active bool
	}{
		{"Immediately after log", lastLog, true},
		{"One hour in", lastLog.Add(time.Hour), true},
		{"One second before unlock", lastLog.Add(18*time.Hour - time.Second), true},
		{"Exactly at unlock", lastLog.Add(18 * time.Hour), false},
		{"After unlock", lastLog.Add(19 * time.Hour), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := EvaluateCooldown(&lastLog, tt.now)
			assert.Equal(t, tt.active, w.Active)
			if tt.active {
				require.NotNil(t, w.UnlocksAt)
				assert.Equal(t, lastLog.Add(18*time.Hour), *w.UnlocksAt)
				assert.Greater(t, w.HoursRemaining, float64(0))
			} else {
				assert.Equal(t, float64(0), w.HoursRemaining)
			}
		})
	}
}

func TestEvaluateCooldown_OneMinuteRemaining(t *testing.T) {
	// lastLogAt = 10:00 Jan 1, now = 03:59 Jan 2 -> one minute left.
	lastLog := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)
	now := time.Date(2024, 1, 2, 3, 59, 0, 0, time.UTC)

	w := EvaluateCooldown(&lastLog, now)

	require.True(t, w.Active)
	assert.InDelta(t, 1.0/60.0, w.HoursRemaining, 0.0001)
}

func TestEvaluateCooldown_FutureLastLogFailsClosed(t *testing.T) {
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	skewed := now.Add(2 * time.Hour)

	w := EvaluateCooldown(&skewed, now)

	require.True(t, w.Active)
	require.NotNil(t, w.UnlocksAt)
	// Window stays anchored at the stored timestamp, so the block is
	// widened by the skew rather than unlocking early.
	assert.Equal(t, skewed.Add(18*time.Hour), *w.UnlocksAt)
	assert.InDelta(t, 20.0, w.HoursRemaining, 0.0001)
}

func TestEvaluateCooldown_HalfOpenBoundary(t *testing.T) {
	lastLog := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	unlock := lastLog.Add(CooldownDuration)

	before := EvaluateCooldown(&lastLog, unlock.Add(-time.Nanosecond))
	at := EvaluateCooldown(&lastLog, unlock)

	assert.True(t, before.Active)
	assert.False(t, at.Active)
}
