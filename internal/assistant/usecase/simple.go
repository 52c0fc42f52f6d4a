package usecase

import (
	"context"
	"errors"
	"strings"

	"ai-shopping-assistant/internal/model"
	"ai-shopping-assistant/pkg/llmgateway"
)

// answerSimple handles the direct-LLM path: one completion call built from the
// raw query, the user's name, and the bounded context digest. An exhausted
// call budget degrades to a fixed retry message instead of an error.
func (uc *implUseCase) answerSimple(ctx context.Context, q model.Query) (string, error) {
	answer, err := uc.gw.Complete(ctx, buildSimplePrompt(q))
	if err != nil {
		if errors.Is(err, llmgateway.ErrBudgetExhausted) {
			uc.l.Warnf(ctx, "%s: call budget exhausted", LogPrefixSimple)
			return MsgRateLimited, nil
		}
		return "", err
	}
	return strings.TrimSpace(answer), nil
}
