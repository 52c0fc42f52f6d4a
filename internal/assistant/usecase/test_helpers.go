package usecase

import (
	"context"

	"ai-shopping-assistant/internal/model"
	"ai-shopping-assistant/internal/product/repository"
	"ai-shopping-assistant/pkg/tavily"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// scriptedGateway routes each completion call through a function so tests can
// answer by prompt content.
type scriptedGateway struct {
	complete func(prompt string) (string, error)
	describe func(prompt, imageURL string) (string, error)
}

func (g *scriptedGateway) Complete(ctx context.Context, prompt string) (string, error) {
	return g.complete(prompt)
}

func (g *scriptedGateway) DescribeImage(ctx context.Context, prompt, imageURL string) (string, error) {
	if g.describe != nil {
		return g.describe(prompt, imageURL)
	}
	return "", nil
}

// Mock product repository for testing
type mockProductRepo struct {
	findFunc func(opt repository.FindProductsOptions) ([]model.Product, error)
}

func (m *mockProductRepo) FindProducts(ctx context.Context, opt repository.FindProductsOptions) ([]model.Product, error) {
	if m.findFunc != nil {
		return m.findFunc(opt)
	}
	return nil, nil
}

func (m *mockProductRepo) ListProducts(ctx context.Context, opt repository.ListProductsOptions) ([]model.Product, error) {
	return nil, nil
}

// Mock vector repository for testing
type mockVectorRepo struct {
	searchFunc func(opt repository.SearchProductsOptions) ([]repository.SearchResult, error)
}

func (m *mockVectorRepo) EnsureCollection(ctx context.Context) error { return nil }

func (m *mockVectorRepo) IndexProducts(ctx context.Context, products []model.Product) error {
	return nil
}

func (m *mockVectorRepo) SearchProducts(ctx context.Context, opt repository.SearchProductsOptions) ([]repository.SearchResult, error) {
	if m.searchFunc != nil {
		return m.searchFunc(opt)
	}
	return nil, nil
}

// Mock web searcher for testing
type mockSearcher struct {
	searchFunc func(req tavily.SearchRequest) (*tavily.SearchResponse, error)
}

func (m *mockSearcher) Search(ctx context.Context, req tavily.SearchRequest) (*tavily.SearchResponse, error) {
	if m.searchFunc != nil {
		return m.searchFunc(req)
	}
	return &tavily.SearchResponse{}, nil
}
