package llmgateway

import "context"

// Gateway is the text completion capability every agent depends on.
// Implementations enforce a process-wide call budget and QPS limit; once the
// budget is exhausted every call returns ErrBudgetExhausted and callers must
// treat it as adapter failure, never as an answer.
type Gateway interface {
	// Complete submits a prompt and returns the raw completion text.
	Complete(ctx context.Context, prompt string) (string, error)

	// DescribeImage submits a prompt plus an image (https URL or data URI)
	// to the vision model and returns the description text.
	DescribeImage(ctx context.Context, prompt, imageURL string) (string, error)
}
