package service

import (
	"context"
	"errors"

	"expense_manager/internal/models"
	"expense_manager/internal/repository"
)

var (
	ErrCategoryNotFound = errors.New("category not found")
	// ErrCategoryInUse guards hard deletion: a category still referenced by
	// expense rows (active or soft-deleted) cannot be removed, which keeps
	// the expense→category join total.
	ErrCategoryInUse = errors.New("category is referenced by expenses")
)

type CategoryService struct {
	categories repository.Categories
	expenses   repository.Expenses
}

func NewCategoryService(categories repository.Categories, expenses repository.Expenses) *CategoryService {
	return &CategoryService{categories: categories, expenses: expenses}
}

// Add creates a category. No uniqueness or non-empty-name rule applies.
func (s *CategoryService) Add(ctx context.Context, p CategoryParams) (models.Category, error) {
	c := models.Category{
		Name:        p.Name,
		Description: p.Description,
		ImageURL:    p.ImageURL,
	}
	id, err := s.categories.Create(ctx, c)
	if err != nil {
		return models.Category{}, err
	}
	c.ID = id
	return c, nil
}

// List returns all categories.
func (s *CategoryService) List(ctx context.Context) ([]models.Category, error) {
	return s.categories.List(ctx)
}

// Delete hard-deletes a category and returns its last snapshot.
func (s *CategoryService) Delete(ctx context.Context, id int) (models.Category, error) {
	c, err := s.categories.GetByID(ctx, id)
	if err != nil {
		return models.Category{}, err
	}
	if c == nil {
		return models.Category{}, ErrCategoryNotFound
	}

	n, err := s.expenses.CountByCategory(ctx, id)
	if err != nil {
		return models.Category{}, err
	}
	if n > 0 {
		return models.Category{}, ErrCategoryInUse
	}

	if err := s.categories.Delete(ctx, id); err != nil {
		return models.Category{}, err
	}
	return *c, nil
}
