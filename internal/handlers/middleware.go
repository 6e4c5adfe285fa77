package handlers

import (
	"strings"
	"time"

	"expense_tracker/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	ctxUser      = "user"
	ctxRequestID = "requestId"

	headerRequestID = "X-Request-ID"
)

// requestID tags every request with an id, reusing the caller's when present.
func (h *Handler) requestID(c *gin.Context) {
	id := c.GetHeader(headerRequestID)
	if id == "" || len(id) > 64 {
		id = uuid.NewString()
	}
	c.Set(ctxRequestID, id)
	c.Header(headerRequestID, id)
	c.Next()
}

// accessLog emits one line per request after it has been served.
func (h *Handler) accessLog(c *gin.Context) {
	start := time.Now()
	c.Next()

	h.log.Infow("http_request",
		"method", c.Request.Method,
		"path", c.FullPath(),
		"status", c.Writer.Status(),
		"latency", time.Since(start),
		"client_ip", c.ClientIP(),
		"request_id", c.GetString(ctxRequestID),
	)
}

// bearerToken extracts the token from an "Authorization: Bearer <token>" header.
func bearerToken(header string) (string, bool) {
	scheme, token, ok := strings.Cut(header, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

// ownerMiddleware resolves the acting user from the bearer token. Every
// failure produces the same 401 response.
func (h *Handler) ownerMiddleware(c *gin.Context) {
	token, ok := bearerToken(c.GetHeader("Authorization"))
	if !ok {
		unauthorized(c)
		return
	}

	user, err := h.services.Authenticate(c.Request.Context(), token)
	if err != nil {
		h.writeError(c, err, "auth_resolve_user_failed")
		return
	}

	// store in Gin context
	c.Set(ctxUser, user)
	c.Next()
}

// currentUser returns the user stored by ownerMiddleware.
func currentUser(c *gin.Context) models.User {
	u, _ := c.MustGet(ctxUser).(models.User)
	return u
}
