package catalog

import (
	"context"
	"fmt"
	"strings"

	"ai-shopping-assistant/internal/agents"
	"ai-shopping-assistant/internal/model"
	"ai-shopping-assistant/internal/product/repository"
	"ai-shopping-assistant/pkg/llmgateway"
	pkgLog "ai-shopping-assistant/pkg/log"
)

// Agent translates natural language queries into structured catalog lookups.
type Agent struct {
	gw   llmgateway.Gateway
	repo repository.ProductRepository
	l    pkgLog.Logger
}

// New creates a catalog search agent.
func New(gw llmgateway.Gateway, repo repository.ProductRepository, l pkgLog.Logger) *Agent {
	return &Agent{
		gw:   gw,
		repo: repo,
		l:    l,
	}
}

// Search converts the query into a validated filter, executes it, and formats
// the hits as an intro sentence plus a product-card block. RawOutput is the
// full untruncated result list.
func (a *Agent) Search(ctx context.Context, naturalQuery string, limit int) (agents.Output, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}

	filter := a.generateFilter(ctx, naturalQuery)

	products, err := a.repo.FindProducts(ctx, repository.FindProductsOptions{
		Filter: filter,
		Limit:  limit,
	})
	if err != nil {
		return agents.Output{}, fmt.Errorf("%s: find products: %w", LogPrefixSearch, err)
	}

	if len(products) == 0 {
		a.l.Infof(ctx, "%s: no matches for %q", LogPrefixSearch, naturalQuery)
		return agents.Output{
			LLMOutput: NoMatchesMessage,
			RawOutput: []model.Product{},
		}, nil
	}

	formatted, err := formatCardBlock(a.introSentence(ctx, products), products)
	if err != nil {
		return agents.Output{}, fmt.Errorf("%s: format: %w", LogPrefixSearch, err)
	}

	return agents.Output{
		LLMOutput: formatted,
		RawOutput: products,
	}, nil
}

// generateFilter asks the gateway for a filter object. Parse or validation
// failure falls back to the empty match-all filter; it is never raised.
func (a *Agent) generateFilter(ctx context.Context, naturalQuery string) repository.Filter {
	resp, err := a.gw.Complete(ctx, fmt.Sprintf(PromptGenerateFilter, naturalQuery))
	if err != nil {
		a.l.Warnf(ctx, "%s: filter generation failed, using match-all: %v", LogPrefixSearch, err)
		return repository.Filter{}
	}

	filter, err := parseFilter(resp)
	if err != nil {
		a.l.Warnf(ctx, "%s: failed to parse filter %q, using match-all: %v", LogPrefixSearch, resp, err)
		return repository.Filter{}
	}
	return filter
}

// introSentence produces the human line above the card block. When the
// gateway cannot help, a deterministic fallback keeps the response shape.
func (a *Agent) introSentence(ctx context.Context, products []model.Product) string {
	var lines []string
	for _, p := range products {
		lines = append(lines, fmt.Sprintf("- %s | %s | $%.2f", p.Title, p.Brand, p.Price))
	}

	intro, err := a.gw.Complete(ctx, fmt.Sprintf(PromptSummarizeResults, strings.Join(lines, "\n")))
	if err != nil {
		a.l.Warnf(ctx, "%s: intro generation failed, using fallback: %v", LogPrefixSearch, err)
		return fmt.Sprintf("I found %d matching products for you:", len(products))
	}
	return strings.TrimSpace(intro)
}
