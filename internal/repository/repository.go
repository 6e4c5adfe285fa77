package repository

import (
	"context"
	"database/sql"
	"errors"

	"expense_tracker/internal/models"
)

var (
	// ErrNotFound is returned when no row matches an ownership-scoped lookup.
	ErrNotFound = errors.New("not found")
	// ErrDuplicateEmail is returned when the users.email unique constraint fires.
	ErrDuplicateEmail = errors.New("email already exists")
)

type Authorization interface {
	Create(ctx context.Context, name, email, hash string) (models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByID(ctx context.Context, id int64) (*models.User, error)
}

// ExpenseRepo is the ownership-scoped expense store. Every method takes the
// owning user's id; rows of other users are invisible.
type ExpenseRepo interface {
	Create(ctx context.Context, userID int64, e models.NewExpense, date models.Date) (models.Expense, error)
	Get(ctx context.Context, userID, id int64) (models.Expense, error)
	Update(ctx context.Context, userID, id int64, p models.ExpensePatch) (models.Expense, error)
	Delete(ctx context.Context, userID, id int64) error
	List(ctx context.Context, userID int64, from, to models.Date, category models.Category) ([]models.Expense, error)
	Sum(ctx context.Context, userID int64, month int) (int64, error)
}

type Repository struct {
	Auth     Authorization
	Expenses ExpenseRepo
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		Auth:     NewUserRepository(db),
		Expenses: NewExpenseSQLite(db),
	}
}
