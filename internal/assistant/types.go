package assistant

import (
	"ai-shopping-assistant/internal/model"
)

// Action identifies which path produced a supervisor response.
type Action string

const (
	ActionSimpleLLM Action = "simplellm"
	ActionToolAgent Action = "toolagent"
)

// ActionTypeProductSearch tags tool-agent raw output that carries catalog
// products, so the caller can persist them for follow-up turns.
const ActionTypeProductSearch = "product_search"

// RoutingDecision is the classifier's verdict. The flags are intended to be
// mutually exclusive but the model is not trusted to enforce that; the router
// checks simplellm first and falls back to toolagent.
type RoutingDecision struct {
	SimpleLLM bool `json:"simplellm"`
	ToolAgent bool `json:"toolagent"`
}

// RouteInput is the input for the Route operation.
type RouteInput struct {
	Query model.Query
}

// SupervisorResponse is the final contract returned to the caller.
// A nil Action signals a classifier failure that the caller must surface,
// never a silently defaulted route.
type SupervisorResponse struct {
	LLMOutput string  `json:"llm_output"`
	RawOutput any     `json:"raw_output"`
	Action    *Action `json:"action"`
}

// ToolAgentRaw is the raw output attached when the catalog search produced
// authoritative product results.
type ToolAgentRaw struct {
	Products        []model.Product        `json:"products"`
	LastQuery       string                 `json:"lastQuery"`
	ActionType      string                 `json:"actionType"`
	BrowsingContext *model.BrowsingContext `json:"browsingContext,omitempty"`
}

// ImageSearchInput is the input for similarity search from an uploaded image.
type ImageSearchInput struct {
	ImagePath string
}

// TextSimilarityInput is the input for similarity search from a description.
type TextSimilarityInput struct {
	Query string
	K     int
}

// SimilarityOutput is the result of an image or text similarity search.
type SimilarityOutput struct {
	LLMOutput string `json:"llm_output"`
	RawOutput any    `json:"raw_output"`
}
