package usecase

import (
	"context"
	"encoding/json"
	"strings"

	"ai-shopping-assistant/internal/assistant"
	"ai-shopping-assistant/internal/model"
)

// Route classifies the query and dispatches it to the direct-LLM path or the
// tool-agent fan-out.
func (uc *implUseCase) Route(ctx context.Context, sc model.Scope, input assistant.RouteInput) (assistant.SupervisorResponse, error) {
	q := input.Query
	if strings.TrimSpace(q.Text) == "" {
		return assistant.SupervisorResponse{}, assistant.ErrEmptyQuery
	}

	decision := uc.classify(ctx, q)
	uc.l.Infof(ctx, "%s: decision simplellm=%t toolagent=%t", LogPrefixRoute, decision.SimpleLLM, decision.ToolAgent)

	switch {
	case decision.SimpleLLM:
		answer, err := uc.answerSimple(ctx, q)
		if err != nil {
			uc.l.Errorf(ctx, "%s: simple answer failed: %v", LogPrefixRoute, err)
			return assistant.SupervisorResponse{}, err
		}
		action := assistant.ActionSimpleLLM
		return assistant.SupervisorResponse{
			LLMOutput: uc.applyGreeting(answer, q),
			RawOutput: nil,
			Action:    &action,
		}, nil

	case decision.ToolAgent:
		aggregated := uc.runAgents(ctx, q.Text)
		llmOutput, rawOutput := uc.aggregate(ctx, q, aggregated)
		action := assistant.ActionToolAgent
		return assistant.SupervisorResponse{
			LLMOutput: uc.applyGreeting(llmOutput, q),
			RawOutput: rawOutput,
			Action:    &action,
		}, nil

	default:
		// Neither flag set is a contract violation worth reporting, not a
		// route to default silently.
		uc.l.Errorf(ctx, "%s: classifier selected no route for query", LogPrefixRoute)
		return assistant.SupervisorResponse{}, assistant.ErrNoRoute
	}
}

// classify asks the completion gateway for a routing decision. Any gateway
// failure or unparseable response falls back to the tool-agent path, which is
// the richer of the two.
func (uc *implUseCase) classify(ctx context.Context, q model.Query) assistant.RoutingDecision {
	fallback := assistant.RoutingDecision{SimpleLLM: false, ToolAgent: true}

	raw, err := uc.gw.Complete(ctx, buildDecisionPrompt(q))
	if err != nil {
		uc.l.Warnf(ctx, "%s: gateway call failed, falling back to toolagent: %v", LogPrefixClassify, err)
		return fallback
	}

	// Pointer fields distinguish an explicit false from an absent key. Only
	// a response carrying both flags counts as a parsed decision; anything
	// else is a schema mismatch and takes the fallback.
	var doc struct {
		SimpleLLM *bool `json:"simplellm"`
		ToolAgent *bool `json:"toolagent"`
	}
	if err := json.Unmarshal([]byte(stripCodeFences(raw)), &doc); err != nil {
		uc.l.Warnf(ctx, "%s: unparseable decision %q, falling back to toolagent", LogPrefixClassify, raw)
		return fallback
	}
	if doc.SimpleLLM == nil || doc.ToolAgent == nil {
		uc.l.Warnf(ctx, "%s: decision %q is missing a flag, falling back to toolagent", LogPrefixClassify, raw)
		return fallback
	}

	return assistant.RoutingDecision{SimpleLLM: *doc.SimpleLLM, ToolAgent: *doc.ToolAgent}
}

// stripCodeFences removes surrounding markdown code fences the model often
// wraps JSON in.
func stripCodeFences(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```json") {
		s = strings.TrimPrefix(s, "```json")
	} else if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```")
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
