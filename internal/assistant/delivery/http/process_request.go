package http

import (
	"fmt"
	"mime/multipart"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// maxImageSize caps uploaded image files at 10 MB.
const maxImageSize = 10 << 20

// processAgentQueryReq binds and validates the agent query request body.
func (h *handler) processAgentQueryReq(c *gin.Context) (agentQueryReq, error) {
	var req agentQueryReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

// processTextSearchReq binds and validates the text similarity request body.
func (h *handler) processTextSearchReq(c *gin.Context) (textSearchReq, error) {
	var req textSearchReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

// processImageUpload saves the uploaded image into the buffer directory and
// returns its path. The caller is responsible for removing the file.
func (h *handler) processImageUpload(c *gin.Context) (string, error) {
	file, err := c.FormFile("image")
	if err != nil {
		return "", fmt.Errorf("missing image file: %w", err)
	}
	if file.Size > maxImageSize {
		return "", fmt.Errorf("image too large: %d bytes", file.Size)
	}

	path := filepath.Join(h.bufferDir, uuid.NewString()+safeExt(file))
	if err := c.SaveUploadedFile(file, path); err != nil {
		return "", fmt.Errorf("buffer upload: %w", err)
	}
	return path, nil
}

func safeExt(file *multipart.FileHeader) string {
	switch ext := filepath.Ext(file.Filename); ext {
	case ".jpg", ".jpeg", ".png", ".gif", ".webp":
		return ext
	default:
		return ".img"
	}
}
