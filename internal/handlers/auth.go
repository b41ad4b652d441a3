package handlers

import (
	"errors"
	"net/http"

	"expense_manager/internal/service"

	"github.com/gin-gonic/gin"
)

type registerRequest struct {
	Name     string `json:"name" binding:"required"`
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type loginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// @Summary      Register a new user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "User credentials"
// @Success      201   {object}  map[string]string
// @Failure      400   {object}  map[string]string
// @Router       /register [post]
func (h *Handler) register(c *gin.Context) {
	var input registerRequest
	if ok := h.bindJSONOrBadRequest(c, &input); !ok {
		return
	}

	err := h.services.Register(c.Request.Context(), input.Name, input.Username, input.Password)
	if err != nil {
		if errors.Is(err, service.ErrUsernameTaken) {
			jsonError(c, http.StatusBadRequest, errUsernameTaken)
			return
		}
		h.serverError(c, "register_failed", err, "username", input.Username)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": msgUserRegistered})
}

// @Summary      Log in and obtain a bearer token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "User credentials"
// @Success      200   {object}  map[string]string  "access_token, name"
// @Failure      401   {object}  map[string]string
// @Router       /login [post]
func (h *Handler) login(c *gin.Context) {
	var input loginRequest
	if ok := h.bindJSONOrBadRequest(c, &input); !ok {
		return
	}

	res, err := h.services.Login(c.Request.Context(), input.Username, input.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			if h.log != nil {
				h.log.Infow("login_rejected", "username", input.Username)
			}
			jsonError(c, http.StatusUnauthorized, errInvalidCredentials)
			return
		}
		h.serverError(c, "login_failed", err, "username", input.Username)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"access_token": res.AccessToken,
		"name":         res.Name,
	})
}
