package ai

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEstimateCostKnownValues(t *testing.T) {
	// 2000 chars in, assumed 1000 chars out: 1000 and 500 tokens.
	prompt := strings.Repeat("a", 2000)
	cost := EstimateCost(prompt, "")

	expected := (1000.0/1_000_000*inputCostPerMillion + 500.0/1_000_000*outputCostPerMillion) * usdToRub
	assert.InDelta(t, expected, cost, 1e-9)
}

func TestEstimateCostWithResponse(t *testing.T) {
	withResponse := EstimateCost("prompt", strings.Repeat("b", 4000))
	assumed := EstimateCost("prompt", "")
	assert.Greater(t, withResponse, assumed)
}

func TestUsageTrackerBudget(t *testing.T) {
	tracker := NewUsageTracker(100.0)

	assert.True(t, tracker.CanSpend(10))
	tracker.Record(95)
	assert.False(t, tracker.CanSpend(10))
	assert.True(t, tracker.CanSpend(5))

	stats := tracker.Stats()
	assert.Equal(t, 95.0, stats.SpentToday)
	assert.Equal(t, 5.0, stats.Remaining)
	assert.Equal(t, 1, stats.RequestsToday)
	assert.False(t, stats.BudgetExceeded)
}

func TestUsageTrackerExceeded(t *testing.T) {
	tracker := NewUsageTracker(100.0)
	tracker.Record(120)

	stats := tracker.Stats()
	assert.True(t, stats.BudgetExceeded)
	assert.False(t, tracker.CanSpend(0.01))
}

func TestUsageTrackerDailyReset(t *testing.T) {
	day := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)
	tracker := NewUsageTracker(100.0)
	tracker.now = func() time.Time { return day }

	tracker.Record(99)
	assert.False(t, tracker.CanSpend(10))

	// Spending resets on the first check of the next day.
	tracker.now = func() time.Time { return day.Add(24 * time.Hour) }
	assert.True(t, tracker.CanSpend(10))

	stats := tracker.Stats()
	assert.Equal(t, 0.0, stats.SpentToday)
	assert.Equal(t, 0, stats.RequestsToday)
	assert.Equal(t, "2026-08-29", stats.ResetDate)
}
