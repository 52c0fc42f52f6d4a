package http

import (
	"ai-shopping-assistant/internal/assistant"
	pkgLog "ai-shopping-assistant/pkg/log"
)

type handler struct {
	l         pkgLog.Logger
	uc        assistant.UseCase
	bufferDir string
}

// New creates a new HTTP handler for the assistant domain. Uploaded images
// are buffered under bufferDir for the duration of a request.
func New(l pkgLog.Logger, uc assistant.UseCase, bufferDir string) *handler {
	return &handler{
		l:         l,
		uc:        uc,
		bufferDir: bufferDir,
	}
}
