package handlers

import (
	"errors"
	"net/http"

	"expense_tracker/internal/service"

	"github.com/gin-gonic/gin"
)

const (
	errInternal     = "internal server error"
	errInvalidBody  = "invalid body: "
	errInvalidID    = "invalid expense id"
	bearerChallenge = "Bearer"
	wwwAuthenticate = "WWW-Authenticate"
)

// Centralized error logging and response.
func (h *Handler) logAndJSONError(c *gin.Context, httpCode int, userMsg, logKey string, err error, kv ...interface{}) {
	if err != nil {
		fields := append([]interface{}{"err", err, "request_id", c.GetString(ctxRequestID)}, kv...)
		h.log.Errorw(logKey, fields...)
	}
	c.AbortWithStatusJSON(httpCode, gin.H{"error": userMsg})
}

// unauthorized writes the single 401 shape used for every token failure.
func unauthorized(c *gin.Context) {
	c.Header(wwwAuthenticate, bearerChallenge)
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": service.ErrUnauthorized.Error()})
}

// writeError maps service errors onto HTTP responses. Unknown errors are
// logged under logKey and reported as 500.
func (h *Handler) writeError(c *gin.Context, err error, logKey string, kv ...interface{}) {
	switch {
	case errors.Is(err, service.ErrValidation):
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrConflict):
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": service.ErrConflict.Error()})
	case errors.Is(err, service.ErrInvalidCredentials):
		c.Header(wwwAuthenticate, bearerChallenge)
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": service.ErrInvalidCredentials.Error()})
	case errors.Is(err, service.ErrUnauthorized):
		unauthorized(c)
	case errors.Is(err, service.ErrNotFound):
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": service.ErrNotFound.Error()})
	default:
		h.logAndJSONError(c, http.StatusInternalServerError, errInternal, logKey, err, kv...)
	}
}
