package repository

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"strings"
	"testing"

	"expense_manager/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
)

func newExpenseRepoMock(t *testing.T) (*ExpenseRepository, sqlmock.Sqlmock, func()) {
	t.Helper()

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}

	repo := NewExpenseRepository(db)
	cleanup := func() {
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Fatalf("unmet sqlmock expectations: %v", err)
		}
		_ = db.Close()
	}
	return repo, mock, cleanup
}

func TestExpenseRepository_Create(t *testing.T) {
	tests := []struct {
		name        string
		input       models.Expense
		mockExpect  func(sqlmock.Sqlmock)
		wantID      int
		wantErr     bool
		errContains string
	}{
		{
			name:  "success",
			input: models.Expense{Amount: 12.5, CategoryID: 1, Description: "lunch", Date: "2025-08-01"},
			mockExpect: func(m sqlmock.Sqlmock) {
				m.ExpectExec(regexp.QuoteMeta(insertExpenseSQL)).
					WithArgs(12.5, 1, "lunch", "2025-08-01").
					WillReturnResult(sqlmock.NewResult(10, 1))
			},
			wantID: 10,
		},
		{
			name:  "exec error",
			input: models.Expense{Amount: 5, CategoryID: 2, Date: "2025-08-02"},
			mockExpect: func(m sqlmock.Sqlmock) {
				m.ExpectExec(regexp.QuoteMeta(insertExpenseSQL)).
					WithArgs(5.0, 2, "", "2025-08-02").
					WillReturnError(errors.New("db exec failed"))
			},
			wantErr:     true,
			errContains: "insert expense",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, cleanup := newExpenseRepoMock(t)
			defer cleanup()

			tt.mockExpect(mock)

			id, err := repo.Create(context.Background(), tt.input)

			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got nil")
				}
				if tt.errContains != "" && !strings.Contains(err.Error(), tt.errContains) {
					t.Fatalf("expected error to contain %q, got %q", tt.errContains, err.Error())
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if id != tt.wantID {
				t.Fatalf("unexpected id: want %d, got %d", tt.wantID, id)
			}
		})
	}
}

func TestExpenseRepository_GetByID(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		repo, mock, cleanup := newExpenseRepoMock(t)
		defer cleanup()

		rows := sqlmock.NewRows([]string{"id", "amount", "category_id", "description", "date", "is_deleted"}).
			AddRow(10, 12.5, 1, "lunch", "2025-08-01", false)
		mock.ExpectQuery(regexp.QuoteMeta(selectExpenseByIDSQL)).
			WithArgs(10).
			WillReturnRows(rows)

		e, err := repo.GetByID(context.Background(), 10)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := models.Expense{ID: 10, Amount: 12.5, CategoryID: 1, Description: "lunch", Date: "2025-08-01"}
		if e == nil || *e != want {
			t.Fatalf("unexpected expense: want %+v, got %+v", want, e)
		}
	})

	t.Run("not found returns nil, nil", func(t *testing.T) {
		repo, mock, cleanup := newExpenseRepoMock(t)
		defer cleanup()

		mock.ExpectQuery(regexp.QuoteMeta(selectExpenseByIDSQL)).
			WithArgs(404).
			WillReturnError(sql.ErrNoRows)

		e, err := repo.GetByID(context.Background(), 404)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if e != nil {
			t.Fatalf("expected nil expense, got %+v", e)
		}
	})
}

func TestExpenseRepository_ListByStatus(t *testing.T) {
	repo, mock, cleanup := newExpenseRepoMock(t)
	defer cleanup()

	rows := sqlmock.NewRows([]string{"id", "amount", "category_id", "description", "date", "is_deleted", "image_url"}).
		AddRow(1, 12.5, 1, "lunch", "2025-08-01", false, "http://img/food.png").
		AddRow(2, 80.0, 2, "train", "2025-08-02", false, "")
	mock.ExpectQuery(regexp.QuoteMeta(listExpensesByStatusSQL)).
		WithArgs(false).
		WillReturnRows(rows)

	out, err := repo.ListByStatus(context.Background(), false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("expected 2 expenses, got %d", len(out))
	}
	if out[0].CategoryImageURL != "http://img/food.png" {
		t.Fatalf("expected enriched image url, got %q", out[0].CategoryImageURL)
	}
	if out[1].Amount != 80.0 || out[1].Date != "2025-08-02" {
		t.Fatalf("unexpected second expense: %+v", out[1])
	}
}

func TestExpenseRepository_MarkDeleted(t *testing.T) {
	repo, mock, cleanup := newExpenseRepoMock(t)
	defer cleanup()

	mock.ExpectExec(regexp.QuoteMeta(markExpenseDeletedSQL)).
		WithArgs(10).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.MarkDeleted(context.Background(), 10); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestExpenseRepository_CountByCategory(t *testing.T) {
	repo, mock, cleanup := newExpenseRepoMock(t)
	defer cleanup()

	rows := sqlmock.NewRows([]string{"count"}).AddRow(3)
	mock.ExpectQuery(regexp.QuoteMeta(countExpensesByCategorySQL)).
		WithArgs(1).
		WillReturnRows(rows)

	n, err := repo.CountByCategory(context.Background(), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != 3 {
		t.Fatalf("expected 3, got %d", n)
	}
}

func TestExpenseRepository_Summary(t *testing.T) {
	repo, mock, cleanup := newExpenseRepoMock(t)
	defer cleanup()

	rows := sqlmock.NewRows([]string{"active", "deleted", "total"}).AddRow(4, 2, 107.25)
	mock.ExpectQuery(regexp.QuoteMeta(summarySQL)).WillReturnRows(rows)

	sum, err := repo.Summary(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sum.ActiveCount != 4 || sum.DeletedCount != 2 || sum.TotalAmount != 107.25 {
		t.Fatalf("unexpected summary: %+v", sum)
	}
	if sum.GeneratedAt.IsZero() {
		t.Fatalf("expected GeneratedAt to be set")
	}
}
