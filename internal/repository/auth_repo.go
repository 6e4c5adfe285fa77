package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"expense_tracker/internal/models"

	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

type UserRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Ensure implementation of Authorization interface at compile time.
var _ Authorization = (*UserRepository)(nil)

const (
	insertUserSQL        = `INSERT INTO users (name, email, password_hash) VALUES (?, ?, ?)`
	selectUserByEmailSQL = `SELECT id, name, email, password_hash FROM users WHERE email = ?`
	selectUserByIDSQL    = `SELECT id, name, email, password_hash FROM users WHERE id = ?`
)

// Create inserts a new user and returns it with the generated ID.
func (r *UserRepository) Create(ctx context.Context, name, email, passwordHash string) (models.User, error) {
	res, err := r.db.ExecContext(ctx, insertUserSQL, name, email, passwordHash)
	if err != nil {
		if isUniqueViolation(err) {
			return models.User{}, ErrDuplicateEmail
		}
		return models.User{}, fmt.Errorf("insert user %q: %w", email, err)
	}
	lastID, err := res.LastInsertId()
	if err != nil {
		return models.User{}, fmt.Errorf("get last insert id for user %q: %w", email, err)
	}
	return models.User{ID: lastID, Name: name, Email: email, PasswordHash: passwordHash}, nil
}

// GetByEmail fetches a user by exact email. Returns (nil, nil) if not found.
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	u, err := r.scanOne(r.db.QueryRowContext(ctx, selectUserByEmailSQL, email))
	if err != nil {
		return nil, fmt.Errorf("select user %q: %w", email, err)
	}
	return u, nil
}

// GetByID fetches a user by ID. Returns (nil, nil) if not found.
func (r *UserRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	u, err := r.scanOne(r.db.QueryRowContext(ctx, selectUserByIDSQL, id))
	if err != nil {
		return nil, fmt.Errorf("select user %d: %w", id, err)
	}
	return u, nil
}

func (r *UserRepository) scanOne(row *sql.Row) (*models.User, error) {
	var u models.User
	if err := row.Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}

func isUniqueViolation(err error) bool {
	var se *sqlite.Error
	if !errors.As(err, &se) {
		return false
	}
	return se.Code() == sqlite3.SQLITE_CONSTRAINT_UNIQUE
}
