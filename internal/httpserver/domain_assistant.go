package httpserver

import (
	"context"
	"os"

	"github.com/gin-gonic/gin"

	assistantHTTP "ai-shopping-assistant/internal/assistant/delivery/http"
)

// setupAssistantDomain initializes the assistant delivery layer and registers
// its routes under /api/v1/ai.
func (srv HTTPServer) setupAssistantDomain(ctx context.Context, api *gin.RouterGroup) error {
	if err := os.MkdirAll(srv.bufferDir, 0o755); err != nil {
		return err
	}

	h := assistantHTTP.New(srv.l, srv.assistantUC, srv.bufferDir)
	assistantHTTP.RegisterRoutes(api, h)

	srv.l.Infof(ctx, "Assistant domain registered, upload buffer: %s", srv.bufferDir)
	return nil
}
