package service

import (
	"context"
	"time"

	"expense_tracker/internal/models"
	"expense_tracker/internal/repository"
)

type Authorization interface {
	Register(ctx context.Context, name, email, password string) (models.User, error)
	Login(ctx context.Context, email, password string) (string, error)
	Authenticate(ctx context.Context, token string) (models.User, error)
}

// Expenses is the ownership-scoped expense store. The acting user is always explicit.
type Expenses interface {
	Create(ctx context.Context, user models.User, in models.NewExpense) (models.Expense, error)
	Get(ctx context.Context, user models.User, id int64) (models.Expense, error)
	Update(ctx context.Context, user models.User, id int64, p models.ExpensePatch) (models.Expense, error)
	Delete(ctx context.Context, user models.User, id int64) error
	GetAll(ctx context.Context, user models.User) ([]models.Expense, error)
}

// Query filters and aggregates a user's expenses.
type Query interface {
	List(ctx context.Context, user models.User, f ListFilter) ([]models.Expense, error)
	Summarize(ctx context.Context, user models.User, month *int) (models.Summary, error)
}

type Service struct {
	Authorization
	Expenses
	Query
}

// Deps carries the non-repository settings the services need.
type Deps struct {
	SigningKey string
	TokenTTL   time.Duration
	BcryptCost int
	// Now defaults to time.Now; "today" is its local calendar date.
	Now func() time.Time
}

func NewService(repos *repository.Repository, deps Deps) *Service {
	now := deps.Now
	if now == nil {
		now = time.Now
	}
	tokens := NewTokenManager(deps.SigningKey, deps.TokenTTL, now)
	return &Service{
		Authorization: NewAuthService(repos.Auth, tokens, deps.BcryptCost),
		Expenses:      NewExpenseService(repos.Expenses, now),
		Query:         NewQueryService(repos.Expenses, now),
	}
}
