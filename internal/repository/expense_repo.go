package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"expense_manager/internal/models"
)

type ExpenseRepository struct {
	db *sql.DB
}

func NewExpenseRepository(db *sql.DB) *ExpenseRepository {
	return &ExpenseRepository{db: db}
}

var _ Expenses = (*ExpenseRepository)(nil)

const (
	insertExpenseSQL = `
		INSERT INTO expenses (amount, category_id, description, date, is_deleted)
		VALUES (?, ?, ?, ?, 0)
	`

	selectExpenseByIDSQL = `
		SELECT id, amount, category_id, description, date, is_deleted
		FROM expenses WHERE id = ?
	`

	// The join makes a dangling category reference impossible to hit at
	// listing time; the service layer forbids deleting referenced categories.
	listExpensesByStatusSQL = `
		SELECT e.id, e.amount, e.category_id, e.description, e.date, e.is_deleted, c.image_url
		FROM expenses e
		JOIN categories c ON c.id = e.category_id
		WHERE e.is_deleted = ?
		ORDER BY e.id
	`

	markExpenseDeletedSQL = `UPDATE expenses SET is_deleted = 1 WHERE id = ?`

	countExpensesByCategorySQL = `SELECT COUNT(*) FROM expenses WHERE category_id = ?`

	summarySQL = `
		SELECT
			COUNT(CASE WHEN is_deleted = 0 THEN 1 END),
			COUNT(CASE WHEN is_deleted = 1 THEN 1 END),
			COALESCE(SUM(CASE WHEN is_deleted = 0 THEN amount END), 0)
		FROM expenses
	`
)

// Create inserts a new active expense and returns its ID.
func (r *ExpenseRepository) Create(ctx context.Context, e models.Expense) (int, error) {
	res, err := r.db.ExecContext(ctx, insertExpenseSQL, e.Amount, e.CategoryID, e.Description, e.Date)
	if err != nil {
		return 0, fmt.Errorf("insert expense: %w", err)
	}
	lastID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("get last insert id for expense: %w", err)
	}
	return int(lastID), nil
}

// GetByID fetches an expense by id. Returns (nil, nil) if not found.
func (r *ExpenseRepository) GetByID(ctx context.Context, id int) (*models.Expense, error) {
	var e models.Expense
	err := r.db.QueryRowContext(ctx, selectExpenseByIDSQL, id).
		Scan(&e.ID, &e.Amount, &e.CategoryID, &e.Description, &e.Date, &e.IsDeleted)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select expense %d: %w", id, err)
	}
	return &e, nil
}

// ListByStatus returns expenses filtered on the is_deleted flag, each
// enriched with its category's image URL, ordered by id.
func (r *ExpenseRepository) ListByStatus(ctx context.Context, deleted bool) ([]models.ExpenseDetail, error) {
	rows, err := r.db.QueryContext(ctx, listExpensesByStatusSQL, deleted)
	if err != nil {
		return nil, fmt.Errorf("list expenses (deleted=%t): %w", deleted, err)
	}
	defer rows.Close()

	out := make([]models.ExpenseDetail, 0, 32)
	for rows.Next() {
		var d models.ExpenseDetail
		if err := rows.Scan(
			&d.ID, &d.Amount, &d.CategoryID, &d.Description, &d.Date, &d.IsDeleted,
			&d.CategoryImageURL,
		); err != nil {
			return nil, fmt.Errorf("scan expense row: %w", err)
		}
		out = append(out, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate expense rows: %w", err)
	}
	return out, nil
}

// MarkDeleted sets is_deleted on an expense row. The flag only ever moves
// from false to true; no statement in this package reverses it.
func (r *ExpenseRepository) MarkDeleted(ctx context.Context, id int) error {
	if _, err := r.db.ExecContext(ctx, markExpenseDeletedSQL, id); err != nil {
		return fmt.Errorf("mark expense %d deleted: %w", id, err)
	}
	return nil
}

// CountByCategory counts all expenses (active and soft-deleted) that
// reference the given category.
func (r *ExpenseRepository) CountByCategory(ctx context.Context, categoryID int) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, countExpensesByCategorySQL, categoryID).Scan(&n); err != nil {
		return 0, fmt.Errorf("count expenses for category %d: %w", categoryID, err)
	}
	return n, nil
}

// Summary computes aggregate counts and the active total in one query.
func (r *ExpenseRepository) Summary(ctx context.Context) (models.SpendingSummary, error) {
	var s models.SpendingSummary
	if err := r.db.QueryRowContext(ctx, summarySQL).
		Scan(&s.ActiveCount, &s.DeletedCount, &s.TotalAmount); err != nil {
		return models.SpendingSummary{}, fmt.Errorf("expense summary: %w", err)
	}
	s.GeneratedAt = time.Now().UTC()
	return s, nil
}
