package usecase

import (
	"fmt"
	"strings"

	"ai-shopping-assistant/internal/model"
)

// contextDigest flattens the browsing context into a short prompt fragment.
// It is bounded regardless of how much history the caller sends: at most the
// last 3 conversation turns, 3 search terms, and a 3-item cart summary.
func contextDigest(q model.Query) string {
	var b strings.Builder

	if n := len(q.Context); n > 0 {
		b.WriteString("Recent conversation:\n")
		start := n - maxDigestTurns
		if start < 0 {
			start = 0
		}
		for _, turn := range q.Context[start:] {
			fmt.Fprintf(&b, "- %s: %s\n", turn.Role, turn.Content)
		}
	}

	bc := q.BrowsingContext
	if bc == nil {
		return b.String()
	}

	if len(bc.SearchHistory) > 0 {
		terms := bc.SearchHistory
		if len(terms) > maxDigestSearchTerms {
			terms = terms[len(terms)-maxDigestSearchTerms:]
		}
		fmt.Fprintf(&b, "Recent searches: %s\n", strings.Join(terms, ", "))
	}

	if len(bc.CartItems) > 0 {
		fmt.Fprintf(&b, "Cart: %d item(s), total $%.2f.", len(bc.CartItems), bc.CartTotal)
		items := bc.CartItems
		if len(items) > maxDigestCartItems {
			items = items[:maxDigestCartItems]
		}
		parts := make([]string, 0, len(items))
		for _, it := range items {
			parts = append(parts, fmt.Sprintf("%s ($%.2f)", it.Title, it.Price))
		}
		fmt.Fprintf(&b, " Includes: %s\n", strings.Join(parts, ", "))
	}

	return b.String()
}

// buildDecisionPrompt assembles the classifier prompt from the query text and
// the bounded context digest.
func buildDecisionPrompt(q model.Query) string {
	prompt := fmt.Sprintf(PromptDecision, q.Text)
	if digest := contextDigest(q); digest != "" {
		prompt = digest + "\n" + prompt
	}
	return prompt
}

// buildSimplePrompt assembles the direct-answer prompt, including the user's
// name when known.
func buildSimplePrompt(q model.Query) string {
	var middle strings.Builder
	if q.User != nil && q.User.Name != "" {
		fmt.Fprintf(&middle, "The customer's name is %s.\n", q.User.Name)
	}
	if digest := contextDigest(q); digest != "" {
		middle.WriteString(digest)
	}
	if middle.Len() > 0 {
		middle.WriteString("\n")
	}
	return fmt.Sprintf(PromptSimpleAnswer, middle.String(), q.Text)
}
