package repository

import (
	"context"
	"database/sql"

	"expense_manager/internal/models"
)

type Users interface {
	Create(ctx context.Context, name, username, passwordHash string) (int, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	List(ctx context.Context) ([]models.User, error)
}

type Categories interface {
	Create(ctx context.Context, c models.Category) (int, error)
	GetByID(ctx context.Context, id int) (*models.Category, error)
	List(ctx context.Context) ([]models.Category, error)
	Delete(ctx context.Context, id int) error
}

type Expenses interface {
	Create(ctx context.Context, e models.Expense) (int, error)
	GetByID(ctx context.Context, id int) (*models.Expense, error)
	ListByStatus(ctx context.Context, deleted bool) ([]models.ExpenseDetail, error)
	MarkDeleted(ctx context.Context, id int) error
	CountByCategory(ctx context.Context, categoryID int) (int, error)
	Summary(ctx context.Context) (models.SpendingSummary, error)
}

type Repository struct {
	Users      Users
	Categories Categories
	Expenses   Expenses
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		Users:      NewUserRepository(db),
		Categories: NewCategoryRepository(db),
		Expenses:   NewExpenseRepository(db),
	}
}
