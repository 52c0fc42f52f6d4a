package usecase

import (
	"context"
	"strings"

	"ai-shopping-assistant/internal/assistant"
	"ai-shopping-assistant/internal/model"
)

// SearchByImage describes the uploaded image and runs a similarity search
// over the catalog index.
func (uc *implUseCase) SearchByImage(ctx context.Context, sc model.Scope, input assistant.ImageSearchInput) (assistant.SimilarityOutput, error) {
	if strings.TrimSpace(input.ImagePath) == "" {
		return assistant.SimilarityOutput{}, assistant.ErrEmptyImagePath
	}

	// Similarity search runs outside the fan-out, so it carries its own
	// adapter timeout.
	c, cancel := context.WithTimeout(ctx, uc.adapterTimeout)
	defer cancel()

	out, err := uc.image.SearchFromImage(c, input.ImagePath)
	if err != nil {
		uc.l.Errorf(ctx, "%s: %v", LogPrefixImage, err)
		return assistant.SimilarityOutput{}, err
	}

	return assistant.SimilarityOutput{LLMOutput: out.LLMOutput, RawOutput: out.RawOutput}, nil
}

// SearchByText runs a similarity search from a free-text description.
func (uc *implUseCase) SearchByText(ctx context.Context, sc model.Scope, input assistant.TextSimilarityInput) (assistant.SimilarityOutput, error) {
	if strings.TrimSpace(input.Query) == "" {
		return assistant.SimilarityOutput{}, assistant.ErrEmptyQuery
	}

	c, cancel := context.WithTimeout(ctx, uc.adapterTimeout)
	defer cancel()

	out, err := uc.image.SearchFromText(c, input.Query, input.K)
	if err != nil {
		uc.l.Errorf(ctx, "%s: %v", LogPrefixText, err)
		return assistant.SimilarityOutput{}, err
	}

	return assistant.SimilarityOutput{LLMOutput: out.LLMOutput, RawOutput: out.RawOutput}, nil
}
