package usecase

import (
	"time"

	"ai-shopping-assistant/internal/agents/catalog"
	"ai-shopping-assistant/internal/agents/history"
	"ai-shopping-assistant/internal/agents/imagesearch"
	"ai-shopping-assistant/internal/agents/websearch"
	"ai-shopping-assistant/internal/assistant"
	"ai-shopping-assistant/pkg/llmgateway"
	pkgLog "ai-shopping-assistant/pkg/log"
)

type implUseCase struct {
	l              pkgLog.Logger
	gw             llmgateway.Gateway
	web            *websearch.Agent
	catalog        *catalog.Agent
	image          *imagesearch.Agent
	history        *history.Agent
	adapterTimeout time.Duration
}

var _ assistant.UseCase = (*implUseCase)(nil)

// New creates a new assistant UseCase instance.
func New(
	l pkgLog.Logger,
	gw llmgateway.Gateway,
	web *websearch.Agent,
	catalogAgent *catalog.Agent,
	image *imagesearch.Agent,
	historyAgent *history.Agent,
	adapterTimeout time.Duration,
) *implUseCase {
	if adapterTimeout <= 0 {
		adapterTimeout = DefaultAdapterTimeout
	}
	return &implUseCase{
		l:              l,
		gw:             gw,
		web:            web,
		catalog:        catalogAgent,
		image:          image,
		history:        historyAgent,
		adapterTimeout: adapterTimeout,
	}
}
