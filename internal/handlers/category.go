package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"expense_manager/internal/service"

	"github.com/gin-gonic/gin"
)

type categoryRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
}

// @Summary      Create a category
// @Tags         categories
// @Accept       json
// @Produce      json
// @Param        body  body      categoryRequest  true  "Category payload"
// @Success      201   {object}  models.Category
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /categories [post]
// @Security     BearerAuth
func (h *Handler) addCategory(c *gin.Context) {
	var input categoryRequest
	if ok := h.bindJSONOrBadRequest(c, &input); !ok {
		return
	}

	created, err := h.services.Categories.Add(c.Request.Context(), service.CategoryParams{
		Name:        input.Name,
		Description: input.Description,
		ImageURL:    input.ImageURL,
	})
	if err != nil {
		h.serverError(c, "category_add_failed", err, "name", input.Name)
		return
	}

	c.JSON(http.StatusCreated, created)
}

// @Summary      List categories
// @Tags         categories
// @Produce      json
// @Success      200  {array}   models.Category
// @Failure      401  {object}  map[string]string
// @Router       /categories [get]
// @Security     BearerAuth
func (h *Handler) listCategories(c *gin.Context) {
	categories, err := h.services.Categories.List(c.Request.Context())
	if err != nil {
		h.serverError(c, "category_list_failed", err)
		return
	}
	c.JSON(http.StatusOK, categories)
}

// @Summary      Delete a category
// @Description  Hard delete. Fails with 409 while any expense still references the category.
// @Tags         categories
// @Produce      json
// @Param        id   path      int  true  "Category ID"
// @Success      200  {object}  map[string]interface{}  "message, category"
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      409  {object}  map[string]string
// @Router       /categories/{id} [delete]
// @Security     BearerAuth
func (h *Handler) deleteCategory(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		jsonError(c, http.StatusNotFound, errCategoryNotFound)
		return
	}

	deleted, err := h.services.Categories.Delete(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrCategoryNotFound):
			jsonError(c, http.StatusNotFound, errCategoryNotFound)
		case errors.Is(err, service.ErrCategoryInUse):
			jsonError(c, http.StatusConflict, errCategoryInUse)
		default:
			h.serverError(c, "category_delete_failed", err, "id", id)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  msgCategoryDeleted,
		"category": deleted,
	})
}
