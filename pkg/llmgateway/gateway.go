package llmgateway

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/time/rate"

	"ai-shopping-assistant/pkg/groq"
	pkgLog "ai-shopping-assistant/pkg/log"
)

// ErrBudgetExhausted is the rate-limit sentinel. Callers check it with
// errors.Is and degrade the owning adapter instead of crashing the request.
var ErrBudgetExhausted = errors.New("llmgateway: completion call budget exhausted")

// ErrEmptyCompletion is returned when the provider answers with no choices.
var ErrEmptyCompletion = errors.New("llmgateway: empty completion response")

// Config tunes budget, rate limiting, and retry behaviour.
type Config struct {
	CallBudget     int
	CallsPerSecond float64
	Burst          int
	RetryAttempts  int
	RetryDelay     time.Duration
	CallTimeout    time.Duration
	VisionModel    string
}

type implGateway struct {
	llm     groq.IGroq
	budget  *Budget
	limiter *rate.Limiter
	cfg     Config
	l       pkgLog.Logger
}

var _ Gateway = (*implGateway)(nil)

// New creates a gateway wrapping the given completion client.
func New(llm groq.IGroq, cfg Config, l pkgLog.Logger) *implGateway {
	if cfg.CallsPerSecond <= 0 {
		cfg.CallsPerSecond = DefaultCallsPerSecond
	}
	if cfg.Burst <= 0 {
		cfg.Burst = DefaultBurst
	}
	if cfg.RetryAttempts <= 0 {
		cfg.RetryAttempts = DefaultRetryAttempts
	}
	if cfg.RetryDelay <= 0 {
		cfg.RetryDelay = DefaultRetryDelay
	}
	if cfg.CallTimeout <= 0 {
		cfg.CallTimeout = DefaultCallTimeout
	}
	if cfg.VisionModel == "" {
		cfg.VisionModel = groq.DefaultVisionModel
	}

	return &implGateway{
		llm:     llm,
		budget:  NewBudget(cfg.CallBudget),
		limiter: rate.NewLimiter(rate.Limit(cfg.CallsPerSecond), cfg.Burst),
		cfg:     cfg,
		l:       l,
	}
}

// Budget exposes the underlying budget so operators can reset it.
func (g *implGateway) Budget() *Budget {
	return g.budget
}

// Complete submits a prompt and returns the completion text.
func (g *implGateway) Complete(ctx context.Context, prompt string) (string, error) {
	req := &groq.Request{
		Messages: []groq.Message{
			{Role: "user", Content: prompt},
		},
	}
	return g.call(ctx, req)
}

// DescribeImage submits a prompt plus image to the vision model.
func (g *implGateway) DescribeImage(ctx context.Context, prompt, imageURL string) (string, error) {
	req := &groq.Request{
		Model: g.cfg.VisionModel,
		Messages: []groq.Message{
			{
				Role: "user",
				Content: []groq.ContentPart{
					{Type: "text", Text: prompt},
					{Type: "image_url", ImageURL: &groq.ImageURL{URL: imageURL}},
				},
			},
		},
	}
	return g.call(ctx, req)
}

func (g *implGateway) call(ctx context.Context, req *groq.Request) (string, error) {
	if !g.budget.Take() {
		g.l.Warnf(ctx, "llmgateway: call budget exhausted (%d remaining)", g.budget.Remaining())
		return "", ErrBudgetExhausted
	}

	if err := g.limiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("llmgateway: rate limiter wait: %w", err)
	}

	resp, err := g.callWithRetry(ctx, req)
	if err != nil {
		return "", err
	}

	if len(resp.Choices) == 0 {
		return "", ErrEmptyCompletion
	}
	return resp.Choices[0].Message.Content, nil
}

// callWithRetry attempts the provider call with linear backoff between
// attempts, respecting context cancellation.
func (g *implGateway) callWithRetry(ctx context.Context, req *groq.Request) (*groq.Response, error) {
	var lastErr error

	for attempt := 0; attempt < g.cfg.RetryAttempts; attempt++ {
		if attempt > 0 {
			delay := time.Duration(attempt) * g.cfg.RetryDelay
			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
			g.l.Warnf(ctx, "llmgateway: retrying completion (attempt %d/%d): %v", attempt+1, g.cfg.RetryAttempts, lastErr)
		}

		callCtx, cancel := context.WithTimeout(ctx, g.cfg.CallTimeout)
		resp, err := g.llm.ChatCompletion(callCtx, req)
		cancel()
		if err == nil {
			return resp, nil
		}
		lastErr = err

		// Nothing to retry against once the parent context is gone.
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
	}

	return nil, fmt.Errorf("llmgateway: completion failed after %d attempts: %w", g.cfg.RetryAttempts, lastErr)
}
