package service

import (
	"context"
	"time"

	"expense_manager/internal/models"
	"expense_manager/internal/repository"
)

type ReportingService struct {
	expenses repository.Expenses
}

func NewReportingService(expenses repository.Expenses) *ReportingService {
	return &ReportingService{expenses: expenses}
}

// Summary returns the latest aggregate snapshot over the expense table.
func (s *ReportingService) Summary(ctx context.Context) (models.SpendingSummary, error) {
	sum, err := s.expenses.Summary(ctx)
	if err != nil {
		return models.SpendingSummary{}, err
	}
	if sum.GeneratedAt.IsZero() {
		sum.GeneratedAt = time.Now().UTC()
	}
	return sum, nil
}
