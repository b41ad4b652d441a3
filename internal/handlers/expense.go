package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"expense_manager/internal/service"

	"github.com/gin-gonic/gin"
)

type expenseRequest struct {
	// Pointer so an explicit zero amount binds as present.
	Amount      *float64 `json:"amount" binding:"required"`
	CategoryID  int      `json:"category_id" binding:"required"`
	Description string   `json:"description"`
	Date        string   `json:"date" binding:"required"` // YYYY-MM-DD
}

// @Summary      Create an expense
// @Tags         expenses
// @Accept       json
// @Produce      json
// @Param        body  body      expenseRequest  true  "Expense payload"
// @Success      201   {object}  models.ExpenseDetail
// @Failure      400   {object}  map[string]string  "missing fields, bad date, or category not found"
// @Failure      401   {object}  map[string]string
// @Router       /expenses [post]
// @Security     BearerAuth
func (h *Handler) addExpense(c *gin.Context) {
	var input expenseRequest
	if ok := h.bindJSONOrBadRequest(c, &input); !ok {
		return
	}

	created, err := h.services.Expenses.Add(c.Request.Context(), service.ExpenseParams{
		Amount:      *input.Amount,
		CategoryID:  input.CategoryID,
		Description: input.Description,
		Date:        input.Date,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDate):
			jsonError(c, http.StatusBadRequest, err.Error())
		case errors.Is(err, service.ErrCategoryNotFound):
			jsonError(c, http.StatusBadRequest, errCategoryNotFound)
		default:
			h.serverError(c, "expense_add_failed", err, "category_id", input.CategoryID)
		}
		return
	}

	c.JSON(http.StatusCreated, created)
}

// @Summary      List active expenses
// @Tags         expenses
// @Produce      json
// @Success      200  {array}   models.ExpenseDetail
// @Failure      401  {object}  map[string]string
// @Router       /expenses [get]
// @Security     BearerAuth
func (h *Handler) listExpenses(c *gin.Context) {
	expenses, err := h.services.Expenses.ListActive(c.Request.Context())
	if err != nil {
		h.serverError(c, "expense_list_failed", err)
		return
	}
	c.JSON(http.StatusOK, expenses)
}

// @Summary      List soft-deleted expenses
// @Tags         expenses
// @Produce      json
// @Success      200  {array}   models.ExpenseDetail
// @Failure      401  {object}  map[string]string
// @Router       /expenses/deleted [get]
// @Security     BearerAuth
func (h *Handler) listDeletedExpenses(c *gin.Context) {
	expenses, err := h.services.Expenses.ListDeleted(c.Request.Context())
	if err != nil {
		h.serverError(c, "expense_list_deleted_failed", err)
		return
	}
	c.JSON(http.StatusOK, expenses)
}

// @Summary      Soft-delete an expense
// @Tags         expenses
// @Produce      json
// @Param        id   path      int  true  "Expense ID"
// @Success      200  {object}  map[string]interface{}  "message, expense"
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /expenses/{id} [delete]
// @Security     BearerAuth
func (h *Handler) deleteExpense(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		jsonError(c, http.StatusNotFound, errExpenseNotFound)
		return
	}

	deleted, err := h.services.Expenses.Delete(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrExpenseNotFound) {
			jsonError(c, http.StatusNotFound, errExpenseNotFound)
			return
		}
		h.serverError(c, "expense_delete_failed", err, "id", id)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": msgExpenseDeleted,
		"expense": deleted,
	})
}

// @Summary      Spending summary
// @Tags         reporting
// @Produce      json
// @Success      200  {object}  models.SpendingSummary
// @Failure      401  {object}  map[string]string
// @Router       /summary [get]
// @Security     BearerAuth
func (h *Handler) getSummary(c *gin.Context) {
	sum, err := h.services.Reporting.Summary(c.Request.Context())
	if err != nil {
		h.serverError(c, "summary_failed", err)
		return
	}
	c.JSON(http.StatusOK, sum)
}
