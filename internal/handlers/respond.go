package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Response messages fixed by the API contract.
const (
	msgUserRegistered  = "User registered successfully"
	msgCategoryDeleted = "Category deleted successfully"
	msgExpenseDeleted  = "Expense deleted successfully"

	errUsernameTaken      = "Username already exists"
	errInvalidCredentials = "Invalid username or password"
	errCategoryNotFound   = "Category not found"
	errCategoryInUse      = "Category is referenced by expenses"
	errExpenseNotFound    = "Expense not found"
	errInternal           = "internal server error"
	errInvalidBodyPref    = "invalid body: "
)

// bindJSONOrBadRequest tries to bind the request body into dst and writes a 400 JSON on failure.
// Returns false if the request was already handled (aborted), true otherwise.
func (h *Handler) bindJSONOrBadRequest(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		if h.log != nil {
			h.log.Infow("bad_request_body", "path", c.Request.URL.Path, "err", err)
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidBodyPref + err.Error()})
		return false
	}
	return true
}

// jsonError writes a JSON error body with the given status.
func jsonError(c *gin.Context, httpCode int, msg string) {
	c.JSON(httpCode, gin.H{"error": msg})
}

// serverError logs the underlying failure and responds 500 with an opaque message.
func (h *Handler) serverError(c *gin.Context, logKey string, err error, kv ...interface{}) {
	if h.log != nil && err != nil {
		fields := append([]interface{}{"err", err}, kv...)
		h.log.Errorw(logKey, fields...)
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": errInternal})
}
