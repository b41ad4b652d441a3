package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"expense_manager/internal/models"
)

type CategoryRepository struct {
	db *sql.DB
}

func NewCategoryRepository(db *sql.DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

var _ Categories = (*CategoryRepository)(nil)

const (
	insertCategorySQL     = `INSERT INTO categories (name, description, image_url) VALUES (?, ?, ?)`
	selectCategoryByIDSQL = `SELECT id, name, description, image_url FROM categories WHERE id = ?`
	listCategoriesSQL     = `SELECT id, name, description, image_url FROM categories ORDER BY id`
	deleteCategorySQL     = `DELETE FROM categories WHERE id = ?`
)

// Create inserts a new category and returns its ID.
func (r *CategoryRepository) Create(ctx context.Context, c models.Category) (int, error) {
	res, err := r.db.ExecContext(ctx, insertCategorySQL, c.Name, c.Description, c.ImageURL)
	if err != nil {
		return 0, fmt.Errorf("insert category %q: %w", c.Name, err)
	}
	lastID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("get last insert id for category %q: %w", c.Name, err)
	}
	return int(lastID), nil
}

// GetByID fetches a category by id. Returns (nil, nil) if not found.
func (r *CategoryRepository) GetByID(ctx context.Context, id int) (*models.Category, error) {
	var c models.Category
	err := r.db.QueryRowContext(ctx, selectCategoryByIDSQL, id).
		Scan(&c.ID, &c.Name, &c.Description, &c.ImageURL)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select category %d: %w", id, err)
	}
	return &c, nil
}

// List returns all categories ordered by id.
func (r *CategoryRepository) List(ctx context.Context) ([]models.Category, error) {
	rows, err := r.db.QueryContext(ctx, listCategoriesSQL)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()

	out := make([]models.Category, 0, 16)
	for rows.Next() {
		var c models.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Description, &c.ImageURL); err != nil {
			return nil, fmt.Errorf("scan category row: %w", err)
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate category rows: %w", err)
	}
	return out, nil
}

// Delete hard-deletes a category row.
func (r *CategoryRepository) Delete(ctx context.Context, id int) error {
	if _, err := r.db.ExecContext(ctx, deleteCategorySQL, id); err != nil {
		return fmt.Errorf("delete category %d: %w", id, err)
	}
	return nil
}
