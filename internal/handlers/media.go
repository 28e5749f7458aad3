package handlers

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/microtweet/microtweet/internal/middleware"
	"github.com/microtweet/microtweet/internal/services"
)

type MediaHandler struct {
	mediaService *services.MediaService
}

func NewMediaHandler(mediaService *services.MediaService) *MediaHandler {
	return &MediaHandler{mediaService: mediaService}
}

func (h *MediaHandler) Upload(c *gin.Context) {
	user := middleware.CurrentUser(c)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		fail(c, fmt.Errorf("missing file payload: %w", services.ErrBadRequest))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		fail(c, fmt.Errorf("unreadable file payload: %w", services.ErrBadRequest))
		return
	}
	defer file.Close()

	mediaID, err := h.mediaService.Upload(c.Request.Context(), user, fileHeader.Filename, file)
	if err != nil {
		fail(c, err)
		return
	}

	ok(c, gin.H{"media_id": mediaID})
}
