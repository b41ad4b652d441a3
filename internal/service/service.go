package service

import (
	"context"
	"time"

	"expense_manager/internal/models"
	"expense_manager/internal/repository"
)

type Authorization interface {
	Register(ctx context.Context, name, username, password string) error
	Login(ctx context.Context, username, password string) (LoginResult, error)
	ParseToken(accessToken string) (int, error)
}

// Users exposes the user directory visible to any authenticated caller.
type Users interface {
	List(ctx context.Context) ([]models.User, error)
}

type Categories interface {
	Add(ctx context.Context, p CategoryParams) (models.Category, error)
	List(ctx context.Context) ([]models.Category, error)
	Delete(ctx context.Context, id int) (models.Category, error)
}

type Expenses interface {
	Add(ctx context.Context, p ExpenseParams) (models.ExpenseDetail, error)
	ListActive(ctx context.Context) ([]models.ExpenseDetail, error)
	ListDeleted(ctx context.Context) ([]models.ExpenseDetail, error)
	Delete(ctx context.Context, id int) (models.Expense, error)
}

// Reporting exposes read-only aggregates over the expense table.
type Reporting interface {
	Summary(ctx context.Context) (models.SpendingSummary, error)
}

//
// Root Service aggregates all sub-services.
//

type Service struct {
	Authorization
	Users
	Categories
	Expenses
	Reporting
}

// Config carries the runtime knobs the services need from main.
type Config struct {
	SigningKey string
	TokenTTL   time.Duration
}

// NewService wires the repository layer into concrete services.
func NewService(repos *repository.Repository, cfg Config) *Service {
	return &Service{
		Authorization: NewAuthService(repos.Users, cfg),
		Users:         NewUserService(repos.Users),
		Categories:    NewCategoryService(repos.Categories, repos.Expenses),
		Expenses:      NewExpenseService(repos.Expenses, repos.Categories),
		Reporting:     NewReportingService(repos.Expenses),
	}
}
