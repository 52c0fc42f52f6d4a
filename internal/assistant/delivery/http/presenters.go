package http

import (
	"strings"

	"ai-shopping-assistant/internal/assistant"
	"ai-shopping-assistant/internal/model"
)

// --- Request DTOs ---

type turnReq struct {
	Role    string `json:"role"    binding:"required,oneof=user assistant"`
	Content string `json:"content" binding:"required"`
}

type userReq struct {
	ID   string `json:"id" binding:"required"`
	Name string `json:"name"`
}

type productRefReq struct {
	ID    string  `json:"id"`
	Title string  `json:"title"`
	Price float64 `json:"price"`
}

type cartItemReq struct {
	ProductID string  `json:"product_id"`
	Title     string  `json:"title"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
}

type browsingContextReq struct {
	SearchHistory  []string        `json:"search_history"`
	ViewedProducts []productRefReq `json:"viewed_products"`
	CartItems      []cartItemReq   `json:"cart_items"`
	CartTotal      float64         `json:"cart_total"`
}

type agentQueryReq struct {
	Query           string              `json:"query" binding:"required"`
	Context         []turnReq           `json:"context"`
	User            *userReq            `json:"user"`
	BrowsingContext *browsingContextReq `json:"browsing_context"`
}

func (r agentQueryReq) validate() error {
	if strings.TrimSpace(r.Query) == "" {
		return assistant.ErrEmptyQuery
	}
	return nil
}

func (r agentQueryReq) toInput() assistant.RouteInput {
	return assistant.RouteInput{Query: model.Query{
		Type:            model.QueryTypeText,
		Text:            r.Query,
		Context:         r.toTurns(),
		User:            r.toUser(),
		BrowsingContext: r.toBrowsingContext(),
	}}
}

func (r agentQueryReq) toTurns() []model.Turn {
	if len(r.Context) == 0 {
		return nil
	}
	turns := make([]model.Turn, len(r.Context))
	for i, t := range r.Context {
		turns[i] = model.Turn{Role: t.Role, Content: t.Content}
	}
	return turns
}

func (r agentQueryReq) toUser() *model.User {
	if r.User == nil {
		return nil
	}
	return &model.User{ID: r.User.ID, Name: r.User.Name}
}

func (r agentQueryReq) toBrowsingContext() *model.BrowsingContext {
	if r.BrowsingContext == nil {
		return nil
	}
	bc := &model.BrowsingContext{
		SearchHistory: r.BrowsingContext.SearchHistory,
		CartTotal:     r.BrowsingContext.CartTotal,
	}
	for _, p := range r.BrowsingContext.ViewedProducts {
		bc.ViewedProducts = append(bc.ViewedProducts, model.ProductRef{ID: p.ID, Title: p.Title, Price: p.Price})
	}
	for _, it := range r.BrowsingContext.CartItems {
		bc.CartItems = append(bc.CartItems, model.CartItem{
			ProductID: it.ProductID,
			Title:     it.Title,
			Price:     it.Price,
			Quantity:  it.Quantity,
		})
	}
	return bc
}

type textSearchReq struct {
	Query string `json:"query" binding:"required"`
	K     int    `json:"k"     binding:"omitempty,min=1,max=20"`
}

func (r textSearchReq) validate() error {
	if strings.TrimSpace(r.Query) == "" {
		return assistant.ErrEmptyQuery
	}
	return nil
}

func (r textSearchReq) toInput() assistant.TextSimilarityInput {
	return assistant.TextSimilarityInput{Query: r.Query, K: r.K}
}

// --- Response DTOs ---

type supervisorResp struct {
	LLMOutput string            `json:"llm_output"`
	RawOutput any               `json:"raw_output"`
	Action    *assistant.Action `json:"action"`
}

func (h *handler) newSupervisorResp(out assistant.SupervisorResponse) supervisorResp {
	return supervisorResp{
		LLMOutput: out.LLMOutput,
		RawOutput: out.RawOutput,
		Action:    out.Action,
	}
}

type similarityResp struct {
	LLMOutput string `json:"llm_output"`
	RawOutput any    `json:"raw_output"`
}

func (h *handler) newSimilarityResp(out assistant.SimilarityOutput) similarityResp {
	return similarityResp{
		LLMOutput: out.LLMOutput,
		RawOutput: out.RawOutput,
	}
}
