package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type userResponse struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
}

// @Summary      List all users
// @Tags         users
// @Produce      json
// @Success      200  {array}   userResponse
// @Failure      401  {object}  map[string]string
// @Router       /users [get]
// @Security     BearerAuth
func (h *Handler) listUsers(c *gin.Context) {
	users, err := h.services.Users.List(c.Request.Context())
	if err != nil {
		h.serverError(c, "users_list_failed", err)
		return
	}

	out := make([]userResponse, 0, len(users))
	for _, u := range users {
		out = append(out, userResponse{ID: u.ID, Username: u.Username})
	}
	c.JSON(http.StatusOK, out)
}
