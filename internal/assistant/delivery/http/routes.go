package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h *handler) {
	ai := rg.Group("/ai")
	{
		ai.POST("/agent-query", h.AgentQuery)
		ai.POST("/image-search", h.ImageSearch)
		ai.POST("/text-search", h.TextSearch)
	}
}
