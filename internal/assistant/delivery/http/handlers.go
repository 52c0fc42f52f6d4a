package http

import (
	"errors"
	"os"

	"github.com/gin-gonic/gin"

	"ai-shopping-assistant/internal/assistant"
	"ai-shopping-assistant/internal/model"
	"ai-shopping-assistant/pkg/response"
)

// AgentQuery godoc
// @Summary     Route a text query
// @Description Classifies the query, fans out to the tool agents when needed, and returns a composed answer with optional product cards.
// @Tags        Assistant
// @Accept      json
// @Produce     json
// @Param       body body agentQueryReq true "Query with optional context and browsing data"
// @Success     200 {object} supervisorResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/ai/agent-query [POST]
func (h *handler) AgentQuery(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processAgentQueryReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	out, err := h.uc.Route(ctx, h.scope(req.User), req.toInput())
	if err != nil {
		if errors.Is(err, assistant.ErrNoRoute) {
			// Surface the failure but keep the response shape well-formed.
			response.Error(c, err, map[string]interface{}{
				"llm_output": nil,
				"raw_output": nil,
				"action":     nil,
			})
			return
		}
		h.l.Errorf(ctx, "uc.Route: %v", err)
		response.InternalError(c, err)
		return
	}

	response.OK(c, h.newSupervisorResp(out))
}

// ImageSearch godoc
// @Summary     Find catalog items similar to an uploaded image
// @Description Describes the image with a vision model and runs a similarity search over the product index.
// @Tags        Assistant
// @Accept      multipart/form-data
// @Produce     json
// @Param       image formData file true "Image file (jpeg/png/gif/webp, max 10MB)"
// @Success     200 {object} similarityResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/ai/image-search [POST]
func (h *handler) ImageSearch(c *gin.Context) {
	ctx := c.Request.Context()

	path, err := h.processImageUpload(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}
	defer func() {
		if err := os.Remove(path); err != nil {
			h.l.Warnf(ctx, "remove buffered upload %s: %v", path, err)
		}
	}()

	out, err := h.uc.SearchByImage(ctx, model.Scope{}, assistant.ImageSearchInput{ImagePath: path})
	if err != nil {
		h.l.Errorf(ctx, "uc.SearchByImage: %v", err)
		response.InternalError(c, err)
		return
	}

	response.OK(c, h.newSimilarityResp(out))
}

// TextSearch godoc
// @Summary     Find catalog items similar to a description
// @Description Runs a similarity search over the product index from free text.
// @Tags        Assistant
// @Accept      json
// @Produce     json
// @Param       body body textSearchReq true "Description and optional result count"
// @Success     200 {object} similarityResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/ai/text-search [POST]
func (h *handler) TextSearch(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processTextSearchReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	out, err := h.uc.SearchByText(ctx, model.Scope{}, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.SearchByText: %v", err)
		response.InternalError(c, err)
		return
	}

	response.OK(c, h.newSimilarityResp(out))
}

func (h *handler) scope(u *userReq) model.Scope {
	if u == nil {
		return model.Scope{}
	}
	return model.Scope{UserID: u.ID}
}
