package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"expense_tracker/internal/models"
	"expense_tracker/internal/repository"
)

type ExpenseService struct {
	expenseRepo repository.ExpenseRepo
	now         func() time.Time
}

func NewExpenseService(expenseRepo repository.ExpenseRepo, now func() time.Time) *ExpenseService {
	if now == nil {
		now = time.Now
	}
	return &ExpenseService{expenseRepo: expenseRepo, now: now}
}

func validateDescription(s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", invalid("description must not be empty")
	}
	return s, nil
}

func validateAmount(a int64) error {
	if a < 0 {
		return invalid("amount must be >= 0")
	}
	return nil
}

func validateCategory(c models.Category) error {
	if !c.Valid() {
		return invalid("invalid category %q", string(c))
	}
	return nil
}

// translate maps repository sentinels onto service errors.
func translate(err error) error {
	if errors.Is(err, repository.ErrNotFound) {
		return ErrNotFound
	}
	return err
}

// Create stores a new expense for user dated today.
func (s *ExpenseService) Create(ctx context.Context, user models.User, in models.NewExpense) (models.Expense, error) {
	desc, err := validateDescription(in.Description)
	if err != nil {
		return models.Expense{}, err
	}
	if err := validateAmount(in.Amount); err != nil {
		return models.Expense{}, err
	}
	if err := validateCategory(in.Category); err != nil {
		return models.Expense{}, err
	}
	in.Description = desc

	return s.expenseRepo.Create(ctx, user.ID, in, models.DateOf(s.now()))
}

func (s *ExpenseService) Get(ctx context.Context, user models.User, id int64) (models.Expense, error) {
	e, err := s.expenseRepo.Get(ctx, user.ID, id)
	return e, translate(err)
}

// Update applies only the fields set in p. An empty patch returns the stored expense.
func (s *ExpenseService) Update(ctx context.Context, user models.User, id int64, p models.ExpensePatch) (models.Expense, error) {
	if p.Description != nil {
		desc, err := validateDescription(*p.Description)
		if err != nil {
			return models.Expense{}, err
		}
		p.Description = &desc
	}
	if p.Amount != nil {
		if err := validateAmount(*p.Amount); err != nil {
			return models.Expense{}, err
		}
	}
	if p.Category != nil {
		if err := validateCategory(*p.Category); err != nil {
			return models.Expense{}, err
		}
	}

	if p.Empty() {
		return s.Get(ctx, user, id)
	}
	e, err := s.expenseRepo.Update(ctx, user.ID, id, p)
	return e, translate(err)
}

func (s *ExpenseService) Delete(ctx context.Context, user models.User, id int64) error {
	return translate(s.expenseRepo.Delete(ctx, user.ID, id))
}

// GetAll returns every expense of user ordered by id.
func (s *ExpenseService) GetAll(ctx context.Context, user models.User) ([]models.Expense, error) {
	return s.expenseRepo.List(ctx, user.ID, models.Date{}, models.Date{}, "")
}
