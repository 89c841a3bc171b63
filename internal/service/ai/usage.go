package ai

import (
	"sync"
	"time"

	"fitai/internal/logger"

	"github.com/sirupsen/logrus"
)

// Cost model for OpenRouter usage, expressed in rubles per request.
const (
	charsPerToken        = 2.0
	inputCostPerMillion  = 0.14
	outputCostPerMillion = 0.28
	usdToRub             = 90.0
	// assumed response size when estimating before the call completes
	assumedResponseChars = 1000
)

// UsageStats is a point-in-time snapshot of daily spending
type UsageStats struct {
	SpentToday     float64 `json:"spent_today_rub"`
	DailyBudget    float64 `json:"daily_budget_rub"`
	Remaining      float64 `json:"remaining_rub"`
	RequestsToday  int     `json:"requests_today"`
	ResetDate      string  `json:"reset_date"`
	BudgetExceeded bool    `json:"budget_exceeded"`
}

// UsageTracker accounts for daily AI spending against a ruble budget.
// Spending resets lazily on the first check of a new day.
type UsageTracker struct {
	mu          sync.Mutex
	spent       float64
	requests    int
	resetDate   string
	dailyBudget float64
	now         func() time.Time
}

// NewUsageTracker creates a tracker with the given daily budget in rubles
func NewUsageTracker(dailyBudgetRub float64) *UsageTracker {
	t := &UsageTracker{
		dailyBudget: dailyBudgetRub,
		now:         time.Now,
	}
	t.resetDate = t.now().Format("2006-01-02")
	return t
}

// EstimateCost approximates the ruble cost of a request before it is
// sent. An empty response means the size is not yet known and a typical
// response length is assumed.
func EstimateCost(prompt, response string) float64 {
	inputTokens := float64(len([]rune(prompt))) / charsPerToken
	responseChars := float64(assumedResponseChars)
	if response != "" {
		responseChars = float64(len([]rune(response)))
	}
	outputTokens := responseChars / charsPerToken

	costUSD := inputTokens/1_000_000*inputCostPerMillion +
		outputTokens/1_000_000*outputCostPerMillion
	return costUSD * usdToRub
}

func (t *UsageTracker) maybeReset() {
	today := t.now().Format("2006-01-02")
	if today != t.resetDate {
		logger.Log.WithFields(logrus.Fields{
			"previous_date": t.resetDate,
			"spent_rub":     t.spent,
		}).Info("Resetting daily AI budget")
		t.spent = 0
		t.requests = 0
		t.resetDate = today
	}
}

// CanSpend reports whether a request with the given estimated cost fits
// in what remains of today's budget
func (t *UsageTracker) CanSpend(estimatedCost float64) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.maybeReset()
	return t.spent+estimatedCost <= t.dailyBudget
}

// Record adds the actual cost of a completed request to today's total
func (t *UsageTracker) Record(cost float64) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.maybeReset()
	t.spent += cost
	t.requests++
}

// Stats returns a snapshot of today's usage
func (t *UsageTracker) Stats() UsageStats {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.maybeReset()
	return UsageStats{
		SpentToday:     t.spent,
		DailyBudget:    t.dailyBudget,
		Remaining:      t.dailyBudget - t.spent,
		RequestsToday:  t.requests,
		ResetDate:      t.resetDate,
		BudgetExceeded: t.spent >= t.dailyBudget,
	}
}
