package usecase

import (
	"fmt"
	"strings"

	"ai-shopping-assistant/internal/model"
)

// applyGreeting is a textual overlay on the final answer: when the query is a
// greeting (or the conversation is just starting) it prepends a personalized
// hello, and for guests it appends a signup nudge. It never touches the action
// or the raw output.
func (uc *implUseCase) applyGreeting(llmOutput string, q model.Query) string {
	if !isGreeting(q) {
		return llmOutput
	}

	var b strings.Builder
	b.WriteString(greetingLine(q))
	if llmOutput != "" {
		b.WriteString("\n\n")
		b.WriteString(llmOutput)
	}
	if q.User == nil {
		b.WriteString("\n\n")
		b.WriteString(MsgGuestNudge)
	}
	return b.String()
}

// isGreeting reports whether the query is one of the fixed greeting tokens or
// the first turn of a conversation.
func isGreeting(q model.Query) bool {
	if len(q.Context) == 0 {
		return true
	}
	text := strings.ToLower(strings.TrimSpace(q.Text))
	text = strings.TrimRight(text, "!.? ")
	for _, token := range greetingTokens {
		if text == token {
			return true
		}
	}
	return false
}

func greetingLine(q model.Query) string {
	var b strings.Builder
	if q.User != nil && q.User.Name != "" {
		fmt.Fprintf(&b, "Hello %s!", q.User.Name)
	} else {
		b.WriteString("Hello there!")
	}
	if term := lastSearchTerm(q); term != "" {
		fmt.Fprintf(&b, " Last time you were looking at %q — happy to pick up where you left off.", term)
	}
	return b.String()
}

func lastSearchTerm(q model.Query) string {
	if q.BrowsingContext == nil || len(q.BrowsingContext.SearchHistory) == 0 {
		return ""
	}
	return q.BrowsingContext.SearchHistory[len(q.BrowsingContext.SearchHistory)-1]
}
