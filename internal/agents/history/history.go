package history

import (
	"context"
	"errors"

	"ai-shopping-assistant/internal/agents"
)

// ErrNotImplemented marks the history backend as absent.
var ErrNotImplemented = errors.New("history agent: not implemented")

// Agent is a reserved slot for a future user-history backend. It always
// reports "not run" and must not affect routing; the aggregation layer keeps
// its entry so callers can distinguish it from an adapter that ran and found
// nothing.
type Agent struct{}

// New creates the placeholder history agent.
func New() *Agent {
	return &Agent{}
}

// Lookup always returns the not-run result.
func (a *Agent) Lookup(ctx context.Context, query string) (agents.Output, error) {
	return agents.Output{}, ErrNotImplemented
}
