package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"expense_manager/internal/models"
)

// ErrDuplicateUsername reports a violation of the users.username UNIQUE
// constraint, so concurrent registrations losing the race still map to a
// conflict rather than a generic store failure.
var ErrDuplicateUsername = errors.New("duplicate username")

type UserRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Ensure implementation of Users interface at compile time.
var _ Users = (*UserRepository)(nil)

const (
	insertUserSQL           = `INSERT INTO users (name, username, password_hash) VALUES (?, ?, ?)`
	selectUserByUsernameSQL = `SELECT id, name, username, password_hash FROM users WHERE username = ?`
	listUsersSQL            = `SELECT id, username FROM users ORDER BY id`
)

// Create inserts a new user and returns its ID.
func (r *UserRepository) Create(ctx context.Context, name, username, passwordHash string) (int, error) {
	res, err := r.db.ExecContext(ctx, insertUserSQL, name, username, passwordHash)
	if err != nil {
		if isUsernameUniqueViolation(err) {
			return 0, ErrDuplicateUsername
		}
		return 0, fmt.Errorf("insert user %q: %w", username, err)
	}
	lastID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("get last insert id for user %q: %w", username, err)
	}
	return int(lastID), nil
}

// isUsernameUniqueViolation matches the sqlite driver's constraint error
// by message; the driver does not export a constructible error type.
func isUsernameUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed: users.username")
}

// GetByUsername fetches a user by username. Returns (nil, nil) if not found.
func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	var u models.User
	err := r.db.QueryRowContext(ctx, selectUserByUsernameSQL, username).
		Scan(&u.ID, &u.Name, &u.Username, &u.PasswordHash)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select user %q: %w", username, err)
	}
	return &u, nil
}

// List returns id and username for every user, ordered by id.
func (r *UserRepository) List(ctx context.Context) ([]models.User, error) {
	rows, err := r.db.QueryContext(ctx, listUsersSQL)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	out := make([]models.User, 0, 16)
	for rows.Next() {
		var u models.User
		if err := rows.Scan(&u.ID, &u.Username); err != nil {
			return nil, fmt.Errorf("scan user row: %w", err)
		}
		out = append(out, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate user rows: %w", err)
	}
	return out, nil
}
