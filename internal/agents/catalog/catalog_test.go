package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"ai-shopping-assistant/internal/model"
	"ai-shopping-assistant/internal/product/repository"
	"ai-shopping-assistant/pkg/log"
)

type fakeGateway struct {
	complete func(prompt string) (string, error)
}

func (g *fakeGateway) Complete(ctx context.Context, prompt string) (string, error) {
	return g.complete(prompt)
}

func (g *fakeGateway) DescribeImage(ctx context.Context, prompt, imageURL string) (string, error) {
	return "", errors.New("not supported")
}

type fakeRepo struct {
	lastFilter repository.Filter
	products   []model.Product
	err        error
}

func (r *fakeRepo) FindProducts(ctx context.Context, opt repository.FindProductsOptions) ([]model.Product, error) {
	r.lastFilter = opt.Filter
	return r.products, r.err
}

func (r *fakeRepo) ListProducts(ctx context.Context, opt repository.ListProductsOptions) ([]model.Product, error) {
	return nil, nil
}

func TestParseFilter(t *testing.T) {
	t.Run("strips code fences", func(t *testing.T) {
		raw := "```json\n{\"brand\": {\"contains\": \"kawell\"}, \"price\": {\"lte\": 20}}\n```"
		filter, err := parseFilter(raw)
		if err != nil {
			t.Fatalf("parseFilter: %v", err)
		}
		if len(filter.Conditions) != 2 {
			t.Fatalf("expected 2 conditions, got %d", len(filter.Conditions))
		}
	})

	t.Run("rejects unknown field", func(t *testing.T) {
		if _, err := parseFilter(`{"sku": {"contains": "abc"}}`); err == nil {
			t.Fatal("expected validation error for unknown field")
		}
	})

	t.Run("rejects prose", func(t *testing.T) {
		if _, err := parseFilter("Sure! Here is your filter."); err == nil {
			t.Fatal("expected parse error for prose")
		}
	})
}

func TestFormatCardBlock(t *testing.T) {
	long := strings.Repeat("y", 150)
	products := []model.Product{
		{ID: "p1", Title: "Shirt", Brand: "Acme", Price: 10, Description: long, Images: []string{"https://cdn/p1.jpg"}},
		{ID: "p2", Title: "Hat", Brand: "Acme", Price: 5},
	}

	out, err := formatCardBlock("Here you go:", products)
	if err != nil {
		t.Fatalf("formatCardBlock: %v", err)
	}

	start := strings.Index(out, ProductCardsStart)
	end := strings.Index(out, ProductCardsEnd)
	if start < 0 || end < 0 || end < start {
		t.Fatalf("malformed card block: %q", out)
	}

	var cards []Card
	payload := out[start+len(ProductCardsStart) : end]
	if err := json.Unmarshal([]byte(payload), &cards); err != nil {
		t.Fatalf("card payload is not valid JSON: %v", err)
	}
	if len(cards) != 2 {
		t.Fatalf("expected 2 cards, got %d", len(cards))
	}
	if want := strings.Repeat("y", DescriptionMaxRunes) + "..."; cards[0].Description != want {
		t.Errorf("description not truncated: %d chars", len(cards[0].Description))
	}
	if cards[0].Thumbnail != "https://cdn/p1.jpg" {
		t.Errorf("unexpected thumbnail %q", cards[0].Thumbnail)
	}
	if cards[1].Thumbnail != model.ProductImagePlaceholder {
		t.Errorf("imageless product should use placeholder, got %q", cards[1].Thumbnail)
	}
	if cards[0].Link != "/products/p1" {
		t.Errorf("unexpected link %q", cards[0].Link)
	}
}

func TestSearchFallsBackToMatchAll(t *testing.T) {
	repo := &fakeRepo{products: []model.Product{{ID: "p1", Title: "Socks", Price: 3}}}
	gw := &fakeGateway{complete: func(prompt string) (string, error) {
		if strings.Contains(prompt, "Filterable fields") {
			return "I cannot produce JSON today", nil
		}
		return "Found one item:", nil
	}}
	a := New(gw, repo, log.NewNop())

	out, err := a.Search(context.Background(), "warm socks", 0)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if !repo.lastFilter.Empty() {
		t.Errorf("unparseable filter must fall back to match-all, got %#v", repo.lastFilter)
	}
	if !strings.Contains(out.LLMOutput, ProductCardsStart) {
		t.Errorf("expected card block, got %q", out.LLMOutput)
	}
}

func TestSearchNoMatches(t *testing.T) {
	gw := &fakeGateway{complete: func(prompt string) (string, error) {
		return `{"title": {"contains": "unicorn"}}`, nil
	}}
	a := New(gw, &fakeRepo{}, log.NewNop())

	out, err := a.Search(context.Background(), "unicorn onesie", 5)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if out.LLMOutput != NoMatchesMessage {
		t.Errorf("expected fixed no-matches message, got %q", out.LLMOutput)
	}
	raw, ok := out.RawOutput.([]model.Product)
	if !ok || len(raw) != 0 {
		t.Errorf("expected empty product slice, got %#v", out.RawOutput)
	}
}

func TestSearchRepositoryError(t *testing.T) {
	gw := &fakeGateway{complete: func(prompt string) (string, error) {
		return `{"title": {"contains": "x"}}`, nil
	}}
	a := New(gw, &fakeRepo{err: errors.New("connection refused")}, log.NewNop())

	if _, err := a.Search(context.Background(), "x", 5); err == nil {
		t.Fatal("store failure must surface as an error")
	}
}
