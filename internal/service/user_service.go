package service

import (
	"context"

	"expense_manager/internal/models"
	"expense_manager/internal/repository"
)

type UserService struct {
	users repository.Users
}

func NewUserService(users repository.Users) *UserService {
	return &UserService{users: users}
}

// List returns every registered user as (id, username).
func (s *UserService) List(ctx context.Context) ([]models.User, error) {
	return s.users.List(ctx)
}
