package websearch

import (
	"context"
	"fmt"
	"strings"

	"ai-shopping-assistant/internal/agents"
	"ai-shopping-assistant/pkg/llmgateway"
	pkgLog "ai-shopping-assistant/pkg/log"
	"ai-shopping-assistant/pkg/tavily"
)

// Agent answers queries with live web search results.
type Agent struct {
	gw     llmgateway.Gateway
	search tavily.ISearcher
	l      pkgLog.Logger
}

// New creates a web search agent.
func New(gw llmgateway.Gateway, search tavily.ISearcher, l pkgLog.Logger) *Agent {
	return &Agent{
		gw:     gw,
		search: search,
		l:      l,
	}
}

// GetSearchResults generates a focused search query, runs it, and summarizes
// the synthesized answer. A failing search API call is a hard error for this
// adapter; the supervisor isolates it from the other adapters.
func (a *Agent) GetSearchResults(ctx context.Context, query string) (agents.Output, error) {
	searchQuery := a.generateSearchQuery(ctx, query)

	resp, err := a.search.Search(ctx, tavily.SearchRequest{
		Query:             searchQuery,
		Topic:             "general",
		SearchDepth:       "basic",
		ChunksPerSource:   3,
		MaxResults:        1,
		Days:              7,
		IncludeAnswer:     true,
		IncludeRawContent: true,
		IncludeImages:     false,
	})
	if err != nil {
		return agents.Output{}, fmt.Errorf("%s: search API: %w", LogPrefixSearch, err)
	}

	out := agents.Output{RawOutput: resp.Answer}

	summary, err := a.gw.Complete(ctx, fmt.Sprintf(PromptSummarize, resp.Answer))
	if err != nil {
		return agents.Output{}, fmt.Errorf("%s: summarize: %w", LogPrefixSearch, err)
	}
	out.LLMOutput = extractAfterMarker(summary, SummaryMarker)

	return out, nil
}

// generateSearchQuery asks the gateway for a focused query string. Malformed
// output falls back to the raw user query.
func (a *Agent) generateSearchQuery(ctx context.Context, query string) string {
	resp, err := a.gw.Complete(ctx, fmt.Sprintf(PromptGenerateQuery, query))
	if err != nil {
		a.l.Warnf(ctx, "%s: query generation failed, using raw query: %v", LogPrefixSearch, err)
		return query
	}

	if !strings.Contains(resp, QueryMarker) {
		a.l.Warnf(ctx, "%s: generated reply missing %q marker, using raw query", LogPrefixSearch, QueryMarker)
		return query
	}
	generated := extractAfterMarker(resp, QueryMarker)
	if generated == "" {
		a.l.Warnf(ctx, "%s: empty generated query, using raw query", LogPrefixSearch)
		return query
	}
	return generated
}

// extractAfterMarker returns the trimmed text after the last occurrence of
// marker, or the whole trimmed text when the marker is absent.
func extractAfterMarker(text, marker string) string {
	if idx := strings.LastIndex(text, marker); idx >= 0 {
		return strings.TrimSpace(text[idx+len(marker):])
	}
	return strings.TrimSpace(text)
}
