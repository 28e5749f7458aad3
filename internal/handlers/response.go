package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/microtweet/microtweet/internal/services"
)

func ok(c *gin.Context, payload gin.H) {
	body := gin.H{"result": true}
	for k, v := range payload {
		body[k] = v
	}
	c.JSON(http.StatusOK, body)
}

// fail translates a classified failure into the response envelope.
// Only not-found changes the HTTP status; every other failure is a 200
// with result=false, matching the existing client contract.
func fail(c *gin.Context, err error) {
	status := http.StatusOK
	errorType := "server error"

	switch {
	case errors.Is(err, services.ErrNotFound):
		status = http.StatusNotFound
		errorType = "record not found"
	case errors.Is(err, services.ErrBadRequest):
		errorType = "bad request"
	case errors.Is(err, services.ErrConstraintViolation):
		errorType = "constraint violation"
	case errors.Is(err, services.ErrWriteFailed):
		errorType = "write failed"
	}

	c.JSON(status, gin.H{
		"result":        false,
		"error_type":    errorType,
		"error_message": err.Error(),
	})
}
