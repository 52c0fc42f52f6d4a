package assistant

import (
	"context"

	"ai-shopping-assistant/internal/model"
)

// UseCase defines the business logic interface for the assistant domain.
type UseCase interface {
	// Route classifies a text query and dispatches it to either a direct
	// LLM answer or the tool-agent fan-out, then composes the final response.
	Route(ctx context.Context, sc model.Scope, input RouteInput) (SupervisorResponse, error)

	// SearchByImage finds catalog items similar to an uploaded image.
	SearchByImage(ctx context.Context, sc model.Scope, input ImageSearchInput) (SimilarityOutput, error)

	// SearchByText finds catalog items similar to a free-text description.
	SearchByText(ctx context.Context, sc model.Scope, input TextSimilarityInput) (SimilarityOutput, error)
}
