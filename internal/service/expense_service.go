package service

import (
	"context"
	"errors"
	"time"

	"expense_manager/internal/models"
	"expense_manager/internal/repository"
)

const dateLayout = "2006-01-02"

var (
	ErrExpenseNotFound = errors.New("expense not found")
	ErrInvalidDate     = errors.New("invalid date, expected YYYY-MM-DD")
)

type ExpenseService struct {
	expenses   repository.Expenses
	categories repository.Categories
}

func NewExpenseService(expenses repository.Expenses, categories repository.Categories) *ExpenseService {
	return &ExpenseService{expenses: expenses, categories: categories}
}

// Add validates the date and the category reference, then creates an
// active expense. The response carries the category's image URL.
func (s *ExpenseService) Add(ctx context.Context, p ExpenseParams) (models.ExpenseDetail, error) {
	date, err := normalizeDate(p.Date)
	if err != nil {
		return models.ExpenseDetail{}, err
	}

	category, err := s.categories.GetByID(ctx, p.CategoryID)
	if err != nil {
		return models.ExpenseDetail{}, err
	}
	if category == nil {
		return models.ExpenseDetail{}, ErrCategoryNotFound
	}

	e := models.Expense{
		Amount:      p.Amount,
		CategoryID:  p.CategoryID,
		Description: p.Description,
		Date:        date,
	}
	id, err := s.expenses.Create(ctx, e)
	if err != nil {
		return models.ExpenseDetail{}, err
	}
	e.ID = id

	return models.ExpenseDetail{Expense: e, CategoryImageURL: category.ImageURL}, nil
}

// ListActive returns expenses with is_deleted=false.
func (s *ExpenseService) ListActive(ctx context.Context) ([]models.ExpenseDetail, error) {
	return s.expenses.ListByStatus(ctx, false)
}

// ListDeleted returns expenses with is_deleted=true.
func (s *ExpenseService) ListDeleted(ctx context.Context) ([]models.ExpenseDetail, error) {
	return s.expenses.ListByStatus(ctx, true)
}

// Delete soft-deletes an expense and returns the updated snapshot.
// Re-deleting an already soft-deleted expense is a no-op that still
// returns the snapshot; the flag never moves back to false.
func (s *ExpenseService) Delete(ctx context.Context, id int) (models.Expense, error) {
	e, err := s.expenses.GetByID(ctx, id)
	if err != nil {
		return models.Expense{}, err
	}
	if e == nil {
		return models.Expense{}, ErrExpenseNotFound
	}

	if err := s.expenses.MarkDeleted(ctx, id); err != nil {
		return models.Expense{}, err
	}
	e.IsDeleted = true
	return *e, nil
}

// normalizeDate parses and re-formats so "2024-1-2" style inputs are
// rejected and the stored form is always zero-padded.
func normalizeDate(s string) (string, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return "", ErrInvalidDate
	}
	return t.Format(dateLayout), nil
}
