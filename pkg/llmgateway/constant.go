package llmgateway

import "time"

const (
	// DefaultCallBudget caps the number of completion calls per process.
	DefaultCallBudget = 100

	// DefaultCallsPerSecond is the sustained QPS allowed against the provider.
	DefaultCallsPerSecond = 2

	// DefaultBurst is the rate limiter burst size.
	DefaultBurst = 4

	// DefaultRetryAttempts is how many times a single call is attempted.
	DefaultRetryAttempts = 3

	// DefaultRetryDelay is the base delay between attempts (linear backoff).
	DefaultRetryDelay = 500 * time.Millisecond

	// DefaultCallTimeout bounds one provider round-trip.
	DefaultCallTimeout = 30 * time.Second
)
