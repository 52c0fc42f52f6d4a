package assistant

import "errors"

// Domain-specific errors for the assistant package.
var (
	ErrEmptyQuery     = errors.New("query text is empty")
	ErrEmptyImagePath = errors.New("image path is empty")
	ErrNoRoute        = errors.New("classifier selected no route")
)
