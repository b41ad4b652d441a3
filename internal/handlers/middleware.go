package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const userIDKey = "userId"

// bearerAuth verifies the Authorization header and stores the caller's
// user id on the context. Any valid, unexpired token authorizes every
// protected endpoint; there are no per-endpoint role checks.
func (h *Handler) bearerAuth(c *gin.Context) {
	header := c.GetHeader("Authorization")
	if header == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
			"error": "missing Authorization header",
		})
		return
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
			"error": "invalid Authorization header format",
		})
		return
	}

	userID, err := h.services.ParseToken(parts[1])
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
			"error": "invalid or expired token",
		})
		return
	}

	c.Set(userIDKey, userID)
	c.Next()
}

// requestLog tags every request with a generated id and writes one access
// log line after the handler chain completes.
func (h *Handler) requestLog(c *gin.Context) {
	start := time.Now()
	requestID := uuid.NewString()
	c.Set("requestId", requestID)
	c.Header("X-Request-Id", requestID)

	c.Next()

	if h.log == nil {
		return
	}
	status := c.Writer.Status()
	fields := []interface{}{
		"request_id", requestID,
		"method", c.Request.Method,
		"path", c.Request.URL.Path,
		"status", status,
		"duration_ms", time.Since(start).Milliseconds(),
	}
	if status >= http.StatusInternalServerError {
		h.log.Errorw("http_request", fields...)
		return
	}
	h.log.Infow("http_request", fields...)
}
