package usecase

import (
	"context"
	"fmt"
	"strings"

	"ai-shopping-assistant/internal/agents"
	"ai-shopping-assistant/internal/assistant"
	"ai-shopping-assistant/internal/model"
)

// aggregate merges the adapter outputs into the final tool-agent response.
// Catalog products are authoritative: when the database adapter found any, its
// pre-formatted summary is returned verbatim and the products become the raw
// output. Otherwise the non-nil adapter texts go through one compose call.
func (uc *implUseCase) aggregate(ctx context.Context, q model.Query, aggregated agents.Aggregated) (string, any) {
	if products, summary, ok := catalogProducts(aggregated); ok {
		return summary, assistant.ToolAgentRaw{
			Products:        products,
			LastQuery:       q.Text,
			ActionType:      assistant.ActionTypeProductSearch,
			BrowsingContext: q.BrowsingContext,
		}
	}

	sections := composeSections(aggregated)
	raw := rawOutputs(aggregated)

	composed, err := uc.gw.Complete(ctx, fmt.Sprintf(PromptCompose, sections))
	if err != nil {
		uc.l.Warnf(ctx, "%s: compose call failed, using deterministic fallback: %v", LogPrefixAggregate, err)
		return fallbackNarrative(aggregated), raw
	}

	return strings.TrimSpace(composed), raw
}

// catalogProducts extracts the authoritative product list from the database
// adapter's output, if it ran and matched anything.
func catalogProducts(aggregated agents.Aggregated) ([]model.Product, string, bool) {
	out := aggregated[agents.NameDatabase]
	if out == nil {
		return nil, "", false
	}
	products, ok := out.RawOutput.([]model.Product)
	if !ok || len(products) == 0 {
		return nil, "", false
	}
	return products, out.LLMOutput, true
}

// composeSections renders one labelled section per adapter, substituting a
// fixed note for adapters that failed or did not run.
func composeSections(aggregated agents.Aggregated) string {
	var b strings.Builder
	for _, s := range []struct {
		header string
		name   string
	}{
		{SectionSearch, agents.NameSearch},
		{SectionHistory, agents.NameHistory},
		{SectionDatabase, agents.NameDatabase},
	} {
		text := NoUsefulInfo
		if out := aggregated[s.name]; out != nil && strings.TrimSpace(out.LLMOutput) != "" {
			text = out.LLMOutput
		}
		fmt.Fprintf(&b, "%s:\n%s\n\n", s.header, text)
	}
	return strings.TrimSpace(b.String())
}

// fallbackNarrative builds the response without a second model call, for when
// the compose call itself fails (for example on an exhausted call budget).
func fallbackNarrative(aggregated agents.Aggregated) string {
	var parts []string
	for _, s := range []struct {
		header string
		name   string
	}{
		{SectionSearch, agents.NameSearch},
		{SectionDatabase, agents.NameDatabase},
	} {
		if out := aggregated[s.name]; out != nil && strings.TrimSpace(out.LLMOutput) != "" {
			parts = append(parts, fmt.Sprintf("**%s**\n%s", s.header, out.LLMOutput))
		}
	}
	if len(parts) == 0 {
		return MsgNoFindings
	}
	return strings.Join(parts, "\n\n")
}

// rawOutputs mirrors the per-adapter raw payloads, nil for failed adapters.
func rawOutputs(aggregated agents.Aggregated) map[string]any {
	raw := make(map[string]any, len(aggregated))
	for name, out := range aggregated {
		if out != nil {
			raw[name] = out.RawOutput
		} else {
			raw[name] = nil
		}
	}
	return raw
}
