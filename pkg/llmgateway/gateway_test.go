package llmgateway

import (
	"context"
	"errors"
	"testing"
	"time"

	"ai-shopping-assistant/pkg/groq"
	"ai-shopping-assistant/pkg/log"
)

type fakeLLM struct {
	calls int
	fn    func(calls int, req *groq.Request) (*groq.Response, error)
}

func okResponse(text string) *groq.Response {
	return &groq.Response{
		Choices: []groq.Choice{
			{Message: groq.ResponseMessage{Role: "assistant", Content: text}},
		},
	}
}

func (f *fakeLLM) ChatCompletion(ctx context.Context, req *groq.Request) (*groq.Response, error) {
	f.calls++
	return f.fn(f.calls, req)
}

func fastConfig(budget int) Config {
	return Config{
		CallBudget:     budget,
		CallsPerSecond: 1000,
		Burst:          1000,
		RetryAttempts:  3,
		RetryDelay:     time.Millisecond,
		CallTimeout:    time.Second,
	}
}

func TestCompleteBudgetSentinel(t *testing.T) {
	llm := &fakeLLM{fn: func(int, *groq.Request) (*groq.Response, error) {
		return okResponse("answer"), nil
	}}
	g := New(llm, fastConfig(2), log.NewNop())

	for i := 0; i < 2; i++ {
		if _, err := g.Complete(context.Background(), "p"); err != nil {
			t.Fatalf("call %d: %v", i, err)
		}
	}

	_, err := g.Complete(context.Background(), "p")
	if !errors.Is(err, ErrBudgetExhausted) {
		t.Fatalf("expected ErrBudgetExhausted, got %v", err)
	}
	if llm.calls != 2 {
		t.Errorf("exhausted budget must not reach the provider, got %d calls", llm.calls)
	}

	g.Budget().Reset()
	if _, err := g.Complete(context.Background(), "p"); err != nil {
		t.Fatalf("after reset: %v", err)
	}
}

func TestCompleteRetries(t *testing.T) {
	llm := &fakeLLM{fn: func(calls int, _ *groq.Request) (*groq.Response, error) {
		if calls < 3 {
			return nil, errors.New("transient upstream error")
		}
		return okResponse("eventually"), nil
	}}
	g := New(llm, fastConfig(10), log.NewNop())

	text, err := g.Complete(context.Background(), "p")
	if err != nil {
		t.Fatalf("Complete: %v", err)
	}
	if text != "eventually" {
		t.Errorf("unexpected completion %q", text)
	}
	if llm.calls != 3 {
		t.Errorf("expected 3 attempts, got %d", llm.calls)
	}
}

func TestCompleteRetriesExhausted(t *testing.T) {
	upstream := errors.New("hard upstream error")
	llm := &fakeLLM{fn: func(int, *groq.Request) (*groq.Response, error) {
		return nil, upstream
	}}
	g := New(llm, fastConfig(10), log.NewNop())

	_, err := g.Complete(context.Background(), "p")
	if !errors.Is(err, upstream) {
		t.Fatalf("expected wrapped upstream error, got %v", err)
	}
	if llm.calls != 3 {
		t.Errorf("expected 3 attempts, got %d", llm.calls)
	}
}

func TestCompleteEmptyChoices(t *testing.T) {
	llm := &fakeLLM{fn: func(int, *groq.Request) (*groq.Response, error) {
		return &groq.Response{}, nil
	}}
	g := New(llm, fastConfig(10), log.NewNop())

	if _, err := g.Complete(context.Background(), "p"); !errors.Is(err, ErrEmptyCompletion) {
		t.Fatalf("expected ErrEmptyCompletion, got %v", err)
	}
}

func TestDescribeImageUsesVisionModel(t *testing.T) {
	var gotReq *groq.Request
	llm := &fakeLLM{fn: func(_ int, req *groq.Request) (*groq.Response, error) {
		gotReq = req
		return okResponse("a blue shirt"), nil
	}}
	cfg := fastConfig(10)
	cfg.VisionModel = "vision-test"
	g := New(llm, cfg, log.NewNop())

	if _, err := g.DescribeImage(context.Background(), "describe", "data:image/png;base64,xxx"); err != nil {
		t.Fatalf("DescribeImage: %v", err)
	}
	if gotReq.Model != "vision-test" {
		t.Errorf("expected vision model, got %q", gotReq.Model)
	}
	parts, ok := gotReq.Messages[0].Content.([]groq.ContentPart)
	if !ok || len(parts) != 2 || parts[1].ImageURL == nil {
		t.Errorf("unexpected message content %#v", gotReq.Messages[0].Content)
	}
}

func TestBudget(t *testing.T) {
	b := NewBudget(2)
	if !b.Take() || !b.Take() {
		t.Fatal("expected budget to allow ceiling calls")
	}
	if b.Take() {
		t.Fatal("expected budget to refuse past the ceiling")
	}
	if b.Remaining() != 0 {
		t.Errorf("expected 0 remaining, got %d", b.Remaining())
	}
	b.Reset()
	if b.Remaining() != 2 {
		t.Errorf("expected full budget after reset, got %d", b.Remaining())
	}
}
