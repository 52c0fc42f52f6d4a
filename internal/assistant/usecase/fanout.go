package usecase

import (
	"context"
	"sync"

	"ai-shopping-assistant/internal/agents"
)

// runAgents fans the query out to the tool-agent adapters. Web search and the
// catalog lookup are independent, so they run concurrently; each call gets its
// own timeout and a failure in one never aborts the other. A failed adapter
// keeps its nil entry in the result map so the aggregation step can report it
// as "no useful information".
func (uc *implUseCase) runAgents(ctx context.Context, query string) agents.Aggregated {
	aggregated := agents.Aggregated{
		agents.NameSearch:   nil,
		agents.NameHistory:  nil,
		agents.NameDatabase: nil,
	}

	var mu sync.Mutex
	var wg sync.WaitGroup

	run := func(name string, call func(context.Context) (agents.Output, error)) {
		defer wg.Done()
		defer func() {
			if r := recover(); r != nil {
				uc.l.Errorf(ctx, "%s: %s adapter panicked: %v", LogPrefixFanOut, name, r)
			}
		}()

		callCtx, cancel := context.WithTimeout(ctx, uc.adapterTimeout)
		defer cancel()

		out, err := call(callCtx)
		if err != nil {
			uc.l.Warnf(ctx, "%s: %s adapter failed: %v", LogPrefixFanOut, name, err)
			return
		}

		mu.Lock()
		aggregated[name] = &out
		mu.Unlock()
	}

	wg.Add(2)
	go run(agents.NameSearch, func(c context.Context) (agents.Output, error) {
		return uc.web.GetSearchResults(c, query)
	})
	go run(agents.NameDatabase, func(c context.Context) (agents.Output, error) {
		return uc.catalog.Search(c, query, 0)
	})
	wg.Wait()

	// The history backend is a reserved placeholder; its entry stays nil.
	if _, err := uc.history.Lookup(ctx, query); err != nil {
		uc.l.Debugf(ctx, "%s: history adapter not available: %v", LogPrefixFanOut, err)
	}

	return aggregated
}
