package middleware

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/microtweet/microtweet/internal/models"
	"github.com/microtweet/microtweet/internal/services"
)

// APIKeyHeader carries the caller's static key on every authenticated
// request.
const APIKeyHeader = "api-key"

const userContextKey = "current_user"

// NewAPIKeyAuth resolves the caller from the api-key header and stores
// the user on the request context. An absent or unknown key reports a
// record-not-found envelope, not a 401.
func NewAPIKeyAuth(users *services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.GetHeader(APIKeyHeader)

		user, err := users.GetByAPIKey(c.Request.Context(), key)
		if err != nil {
			status := http.StatusOK
			errorType := "server error"
			if errors.Is(err, services.ErrNotFound) {
				status = http.StatusNotFound
				errorType = "record not found"
			}
			c.AbortWithStatusJSON(status, gin.H{
				"result":        false,
				"error_type":    errorType,
				"error_message": fmt.Sprintf("User with api-key: '%s' doesn't exist.", key),
			})
			return
		}

		c.Set(userContextKey, user)
		c.Next()
	}
}

// CurrentUser returns the user resolved by NewAPIKeyAuth, or nil when
// the route is not behind it.
func CurrentUser(c *gin.Context) *models.User {
	value, ok := c.Get(userContextKey)
	if !ok {
		return nil
	}
	user, ok := value.(*models.User)
	if !ok {
		return nil
	}
	return user
}
