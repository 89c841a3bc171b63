package ai

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	openai "github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type chatClientFunc func(ctx context.Context, request openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)

func (f chatClientFunc) CreateChatCompletion(ctx context.Context, request openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error) {
	return f(ctx, request)
}

func completion(content string) openai.ChatCompletionResponse {
	return openai.ChatCompletionResponse{
		Choices: []openai.ChatCompletionChoice{
			{Message: openai.ChatCompletionMessage{Content: content}},
		},
	}
}

var testModels = []string{"model-a", "model-b", "model-c"}

func TestGatewayFirstModelSucceeds(t *testing.T) {
	var calls []string
	client := chatClientFunc(func(_ context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error) {
		calls = append(calls, req.Model)
		return completion("OK"), nil
	})

	g := NewGatewayWithClient(client, testModels, NewUsageTracker(100), 1000, time.Second)
	resp := g.Request(context.Background(), "привет")

	assert.Equal(t, "OK", resp.Text)
	assert.Equal(t, "model-a", resp.Model)
	assert.Equal(t, []string{"model-a"}, calls)
}

func TestGatewayFallbackChain(t *testing.T) {
	var calls []string
	client := chatClientFunc(func(_ context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error) {
		calls = append(calls, req.Model)
		if req.Model != "model-c" {
			return openai.ChatCompletionResponse{}, errors.New("rate limited")
		}
		return completion("OK"), nil
	})

	g := NewGatewayWithClient(client, testModels, NewUsageTracker(100), 1000, time.Second)
	resp := g.Request(context.Background(), "привет")

	assert.Equal(t, "OK", resp.Text)
	assert.Equal(t, "model-c", resp.Model)
	assert.Equal(t, []string{"model-a", "model-b", "model-c"}, calls)
}

func TestGatewayAllModelsFail(t *testing.T) {
	client := chatClientFunc(func(_ context.Context, _ openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error) {
		return openai.ChatCompletionResponse{}, errors.New("unavailable")
	})

	g := NewGatewayWithClient(client, testModels, NewUsageTracker(100), 1000, time.Second)
	resp := g.Request(context.Background(), "составь план тренировок")

	assert.Equal(t, ModelDemo, resp.Model)
	assert.Contains(t, resp.Text, "ПЛАН ТРЕНИРОВКИ")
}

func TestGatewayEmptyChoicesTreatedAsFailure(t *testing.T) {
	client := chatClientFunc(func(_ context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error) {
		if req.Model == "model-a" {
			return openai.ChatCompletionResponse{}, nil
		}
		return completion("OK"), nil
	})

	g := NewGatewayWithClient(client, testModels, NewUsageTracker(100), 1000, time.Second)
	resp := g.Request(context.Background(), "привет")
	assert.Equal(t, "model-b", resp.Model)
}

func TestGatewayBudgetExceeded(t *testing.T) {
	var called bool
	client := chatClientFunc(func(_ context.Context, _ openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error) {
		called = true
		return completion("OK"), nil
	})

	usage := NewUsageTracker(100)
	usage.Record(99.999)

	g := NewGatewayWithClient(client, testModels, usage, 1000, time.Second)
	resp := g.Request(context.Background(), strings.Repeat("а", 5000))

	assert.Equal(t, BudgetExceededMessage, resp.Text)
	assert.Equal(t, ModelBudget, resp.Model)
	assert.False(t, called, "no model call should happen once the budget is spent")
}

func TestGatewayRecordsSpending(t *testing.T) {
	client := chatClientFunc(func(_ context.Context, _ openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error) {
		return completion(strings.Repeat("b", 2000)), nil
	})

	usage := NewUsageTracker(100)
	g := NewGatewayWithClient(client, testModels, usage, 1000, time.Second)
	g.Request(context.Background(), "привет")

	stats := usage.Stats()
	require.Equal(t, 1, stats.RequestsToday)
	assert.Greater(t, stats.SpentToday, 0.0)
}

func TestGatewayDemoModeWithoutKey(t *testing.T) {
	g := &Gateway{demoMode: true}
	resp := g.Request(context.Background(), "что-нибудь")
	assert.Equal(t, ModelDemo, resp.Model)
	assert.NotEmpty(t, resp.Text)
}
