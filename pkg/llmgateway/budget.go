package llmgateway

import "sync"

// Budget is an explicit call-budget counter with a fixed ceiling. It replaces
// ambient mutable state so the ceiling and reset policy are owned by whoever
// constructs the gateway.
type Budget struct {
	mu      sync.Mutex
	ceiling int
	used    int
}

// NewBudget creates a budget with the given ceiling. A ceiling <= 0 falls
// back to DefaultCallBudget.
func NewBudget(ceiling int) *Budget {
	if ceiling <= 0 {
		ceiling = DefaultCallBudget
	}
	return &Budget{ceiling: ceiling}
}

// Take consumes one call from the budget. It returns false when the ceiling
// has been reached; the call must not be made in that case.
func (b *Budget) Take() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.used >= b.ceiling {
		return false
	}
	b.used++
	return true
}

// Remaining reports how many calls are left.
func (b *Budget) Remaining() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.ceiling - b.used
}

// Reset returns the budget to its full ceiling.
func (b *Budget) Reset() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.used = 0
}
