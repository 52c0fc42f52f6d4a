package websearch

import (
	"context"
	"errors"
	"strings"
	"testing"

	"ai-shopping-assistant/pkg/log"
	"ai-shopping-assistant/pkg/tavily"
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

type fakeSearcher struct {
	lastReq tavily.SearchRequest
	resp    *tavily.SearchResponse
	err     error
}

func (s *fakeSearcher) Search(ctx context.Context, req tavily.SearchRequest) (*tavily.SearchResponse, error) {
	s.lastReq = req
	return s.resp, s.err
}

func TestExtractAfterMarker(t *testing.T) {
	for _, tc := range []struct {
		name string
		text string
		want string
	}{
		{"after marker", "Search query: blue shirt", "blue shirt"},
		{"marker mid-text", "Sure!\nSearch query: blue shirt\n", "blue shirt"},
		{"last marker wins", "Search query: a\nSearch query: b", "b"},
		{"no marker", "  just text  ", "just text"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			if got := extractAfterMarker(tc.text, QueryMarker); got != tc.want {
				t.Errorf("extractAfterMarker(%q) = %q, want %q", tc.text, got, tc.want)
			}
		})
	}
}

func TestGetSearchResults(t *testing.T) {
	searcher := &fakeSearcher{resp: &tavily.SearchResponse{Answer: "Wool coats run $50-$200."}}
	gw := &fakeGateway{complete: func(prompt string) (string, error) {
		if strings.Contains(prompt, "search query generation") {
			return "Search query: wool coat prices", nil
		}
		return "Summarized response: - Wool coats run $50-$200.", nil
	}}
	a := New(gw, searcher, log.NewNop())

	out, err := a.GetSearchResults(context.Background(), "how much do wool coats cost?")
	if err != nil {
		t.Fatalf("GetSearchResults: %v", err)
	}
	if searcher.lastReq.Query != "wool coat prices" {
		t.Errorf("expected generated query, got %q", searcher.lastReq.Query)
	}
	if searcher.lastReq.MaxResults != 1 || searcher.lastReq.SearchDepth != "basic" || searcher.lastReq.IncludeImages {
		t.Errorf("unexpected search payload: %+v", searcher.lastReq)
	}
	if out.RawOutput != "Wool coats run $50-$200." {
		t.Errorf("raw output must be the API answer, got %v", out.RawOutput)
	}
	if !strings.Contains(out.LLMOutput, "Wool coats") || strings.Contains(out.LLMOutput, SummaryMarker) {
		t.Errorf("unexpected summary %q", out.LLMOutput)
	}
}

func TestGetSearchResultsQueryFallback(t *testing.T) {
	searcher := &fakeSearcher{resp: &tavily.SearchResponse{Answer: "ok"}}
	gw := &fakeGateway{complete: func(prompt string) (string, error) {
		if strings.Contains(prompt, "search query generation") {
			return "", errors.New("model unavailable")
		}
		return "Summarized response: ok", nil
	}}
	a := New(gw, searcher, log.NewNop())

	if _, err := a.GetSearchResults(context.Background(), "raw user text"); err != nil {
		t.Fatalf("GetSearchResults: %v", err)
	}
	if searcher.lastReq.Query != "raw user text" {
		t.Errorf("expected raw query fallback, got %q", searcher.lastReq.Query)
	}
}

func TestGetSearchResultsMarkerlessReplyFallsBack(t *testing.T) {
	// A prose reply without the marker must not be sent to the search API.
	searcher := &fakeSearcher{resp: &tavily.SearchResponse{Answer: "ok"}}
	gw := &fakeGateway{complete: func(prompt string) (string, error) {
		if strings.Contains(prompt, "search query generation") {
			return "Sure! I would search for something about denim jackets.", nil
		}
		return "Summarized response: ok", nil
	}}
	a := New(gw, searcher, log.NewNop())

	if _, err := a.GetSearchResults(context.Background(), "raw user text"); err != nil {
		t.Fatalf("GetSearchResults: %v", err)
	}
	if searcher.lastReq.Query != "raw user text" {
		t.Errorf("expected raw query fallback, got %q", searcher.lastReq.Query)
	}
}

func TestGetSearchResultsAPIErrorIsHard(t *testing.T) {
	searcher := &fakeSearcher{err: errors.New("tavily API status 500")}
	gw := &fakeGateway{complete: func(prompt string) (string, error) {
		return "Search query: x", nil
	}}
	a := New(gw, searcher, log.NewNop())

	if _, err := a.GetSearchResults(context.Background(), "x"); err == nil {
		t.Fatal("search API failure must be a hard error for this adapter")
	}
}
