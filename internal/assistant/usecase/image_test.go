package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"ai-shopping-assistant/internal/agents/catalog"
	"ai-shopping-assistant/internal/agents/history"
	"ai-shopping-assistant/internal/agents/imagesearch"
	"ai-shopping-assistant/internal/agents/websearch"
	"ai-shopping-assistant/internal/assistant"
	"ai-shopping-assistant/internal/model"
	"ai-shopping-assistant/internal/product/repository"
)

// deadlineVectorRepo records whether the search context carried a deadline.
type deadlineVectorRepo struct {
	mockVectorRepo
	hadDeadline bool
	deadline    time.Time
}

func (r *deadlineVectorRepo) SearchProducts(ctx context.Context, opt repository.SearchProductsOptions) ([]repository.SearchResult, error) {
	r.deadline, r.hadDeadline = ctx.Deadline()
	return nil, nil
}

func newSimilarityTestUseCase(repo repository.VectorRepository, timeout time.Duration) *implUseCase {
	l := &mockLogger{}
	gw := &scriptedGateway{complete: answerByPrompt("", nil)}
	return New(l, gw,
		websearch.New(gw, &mockSearcher{}, l),
		catalog.New(gw, &mockProductRepo{}, l),
		imagesearch.New(gw, repo, l),
		history.New(), timeout)
}

func TestSearchByTextCarriesTimeout(t *testing.T) {
	repo := &deadlineVectorRepo{}
	uc := newSimilarityTestUseCase(repo, 5*time.Second)

	out, err := uc.SearchByText(context.Background(), model.Scope{}, assistant.TextSimilarityInput{Query: "red dress"})
	if err != nil {
		t.Fatalf("SearchByText: %v", err)
	}
	if out.LLMOutput == "" {
		t.Error("expected a fixed empty-results message")
	}
	if !repo.hadDeadline {
		t.Fatal("expected the vector search context to carry a deadline")
	}
	if remaining := time.Until(repo.deadline); remaining > 5*time.Second {
		t.Errorf("deadline %v exceeds the adapter timeout", remaining)
	}
}

func TestSearchByTextExpiredContext(t *testing.T) {
	blocked := &mockVectorRepo{searchFunc: func(opt repository.SearchProductsOptions) ([]repository.SearchResult, error) {
		return nil, context.DeadlineExceeded
	}}
	uc := newSimilarityTestUseCase(blocked, time.Millisecond)

	_, err := uc.SearchByText(context.Background(), model.Scope{}, assistant.TextSimilarityInput{Query: "red dress"})
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected deadline error to surface, got %v", err)
	}
}

func TestSearchByTextEmptyQuery(t *testing.T) {
	uc := newSimilarityTestUseCase(&mockVectorRepo{}, time.Second)
	_, err := uc.SearchByText(context.Background(), model.Scope{}, assistant.TextSimilarityInput{Query: "  "})
	if !errors.Is(err, assistant.ErrEmptyQuery) {
		t.Fatalf("expected ErrEmptyQuery, got %v", err)
	}
}
