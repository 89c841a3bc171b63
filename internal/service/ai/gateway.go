package ai

import (
	"context"
	"fmt"
	"time"

	"fitai/internal/config"
	"fitai/internal/logger"

	openai "github.com/sashabaranov/go-openai"
	"github.com/sirupsen/logrus"
)

// BudgetExceededMessage is returned verbatim when the daily budget is
// spent. Callers treat it as a normal response.
const BudgetExceededMessage = "Дневной бюджет AI-запросов исчерпан. Попробуйте снова завтра."

// ChatClient is the part of the OpenRouter API the gateway depends on.
// *openai.Client satisfies it.
type ChatClient interface {
	CreateChatCompletion(ctx context.Context, request openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// Gateway sends prompts to OpenRouter with model fallback, budget
// accounting and a demo mode for keyless deployments.
type Gateway struct {
	client    ChatClient
	models    []string
	usage     *UsageTracker
	maxTokens int
	timeout   time.Duration
	demoMode  bool
}

// NewGateway builds a gateway from configuration. Without an API key the
// gateway serves canned demo responses instead of calling OpenRouter.
func NewGateway(cfg config.AIConfig, models *config.ModelsConfig, usage *UsageTracker) *Gateway {
	g := &Gateway{
		models:    models.FallbackOrder(),
		usage:     usage,
		maxTokens: cfg.MaxTokens,
		timeout:   cfg.RequestTimeout,
	}
	if cfg.OpenRouterAPIKey == "" {
		g.demoMode = true
		return g
	}

	clientConfig := openai.DefaultConfig(cfg.OpenRouterAPIKey)
	clientConfig.BaseURL = cfg.BaseURL
	g.client = openai.NewClientWithConfig(clientConfig)
	return g
}

// NewGatewayWithClient builds a gateway around an existing client. Used
// by tests.
func NewGatewayWithClient(client ChatClient, models []string, usage *UsageTracker, maxTokens int, timeout time.Duration) *Gateway {
	return &Gateway{
		client:    client,
		models:    models,
		usage:     usage,
		maxTokens: maxTokens,
		timeout:   timeout,
	}
}

// DemoMode reports whether the gateway serves canned responses
func (g *Gateway) DemoMode() bool {
	return g.demoMode
}

// Usage returns today's spending snapshot
func (g *Gateway) Usage() UsageStats {
	return g.usage.Stats()
}

// Response is the outcome of one gateway request. Model names the model
// that produced the text, or a pseudo-model for the demo and budget
// paths.
type Response struct {
	Text  string
	Model string
}

// Pseudo-model names used when no real model served the request.
const (
	ModelDemo   = "demo"
	ModelBudget = "budget-limit"
)

// Request sends the prompt through the model fallback chain and returns
// the first successful response. It never returns an error: budget
// exhaustion yields a fixed message and total model failure yields a
// demo response.
func (g *Gateway) Request(ctx context.Context, prompt string) Response {
	if g.demoMode {
		return Response{Text: DemoResponse(prompt), Model: ModelDemo}
	}

	estimate := EstimateCost(prompt, "")
	if !g.usage.CanSpend(estimate) {
		logger.Log.WithFields(logrus.Fields{
			"estimated_cost_rub": estimate,
		}).Warn("Daily AI budget exceeded, rejecting request")
		return Response{Text: BudgetExceededMessage, Model: ModelBudget}
	}

	for _, model := range g.models {
		response, err := g.callModel(ctx, model, prompt)
		if err != nil {
			logger.Log.WithFields(logrus.Fields{
				"model": model,
				"error": err.Error(),
			}).Warn("Model request failed, trying next model")
			continue
		}

		g.usage.Record(EstimateCost(prompt, response))
		logger.Log.WithFields(logrus.Fields{
			"model":           model,
			"response_length": len(response),
		}).Info("Model request succeeded")
		return Response{Text: response, Model: model}
	}

	logger.Log.Error("All models failed, serving demo response")
	return Response{Text: DemoResponse(prompt), Model: ModelDemo}
}

func (g *Gateway) callModel(_ context.Context, model, prompt string) (string, error) {
	// The outbound call is detached from the inbound request lifetime: a
	// client disconnect must not abort a call that will still be charged.
	ctx, cancel := context.WithTimeout(context.Background(), g.timeout)
	defer cancel()

	response, err := g.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleUser,
				Content: prompt,
			},
		},
		MaxTokens: g.maxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("chat completion failed: %w", err)
	}
	if len(response.Choices) == 0 {
		return "", fmt.Errorf("empty response from model %s", model)
	}
	return response.Choices[0].Message.Content, nil
}
