package handlers

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/microtweet/microtweet/internal/middleware"
	"github.com/microtweet/microtweet/internal/services"
)

type UserHandler struct {
	userService *services.UserService
}

func NewUserHandler(userService *services.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

func (h *UserHandler) GetUser(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		fail(c, err)
		return
	}

	profile, err := h.userService.Profile(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}

	ok(c, gin.H{"user": profile})
}

func (h *UserHandler) GetMe(c *gin.Context) {
	user := middleware.CurrentUser(c)

	profile, err := h.userService.Profile(c.Request.Context(), user.ID)
	if err != nil {
		fail(c, err)
		return
	}

	ok(c, gin.H{"user": profile})
}

func (h *UserHandler) Follow(c *gin.Context) {
	user := middleware.CurrentUser(c)

	targetID, err := parseID(c, "id")
	if err != nil {
		fail(c, err)
		return
	}

	if err := h.userService.Follow(c.Request.Context(), user, targetID); err != nil {
		fail(c, err)
		return
	}

	ok(c, nil)
}

func (h *UserHandler) Unfollow(c *gin.Context) {
	user := middleware.CurrentUser(c)

	targetID, err := parseID(c, "id")
	if err != nil {
		fail(c, err)
		return
	}

	if err := h.userService.Unfollow(c.Request.Context(), user, targetID); err != nil {
		fail(c, err)
		return
	}

	ok(c, nil)
}

func parseID(c *gin.Context, param string) (uint64, error) {
	id, err := strconv.ParseUint(c.Param(param), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s '%s': %w", param, c.Param(param), services.ErrBadRequest)
	}
	return id, nil
}
