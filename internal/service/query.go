package service

import (
	"context"
	"time"

	"expense_tracker/internal/models"
	"expense_tracker/internal/repository"
)

type QueryService struct {
	expenseRepo repository.ExpenseRepo
	now         func() time.Time
}

func NewQueryService(expenseRepo repository.ExpenseRepo, now func() time.Time) *QueryService {
	if now == nil {
		now = time.Now
	}
	return &QueryService{expenseRepo: expenseRepo, now: now}
}

// resolveRange validates f and turns it into concrete inclusive bounds.
func resolveRange(f ListFilter, today models.Date) (models.Date, models.Date, error) {
	if f.DateFilter != "" && (!f.Start.IsZero() || !f.End.IsZero()) {
		return models.Date{}, models.Date{}, invalid("use either a named range or explicit bounds, not both")
	}

	if f.DateFilter != "" {
		days, ok := windowDays[f.DateFilter]
		if !ok {
			return models.Date{}, models.Date{}, invalid("invalid date_filter %q: must be week, month or 3months", f.DateFilter)
		}
		return today.AddDays(-(days - 1)), today, nil
	}

	if !f.Start.IsZero() && !f.End.IsZero() && f.Start.After(f.End.Time) {
		return models.Date{}, models.Date{}, invalid("start must not be after end")
	}
	return f.Start, f.End, nil
}

// List returns user's expenses matching f, ordered by id.
func (s *QueryService) List(ctx context.Context, user models.User, f ListFilter) ([]models.Expense, error) {
	if f.Category != "" {
		if err := validateCategory(f.Category); err != nil {
			return nil, err
		}
	}
	from, to, err := resolveRange(f, models.DateOf(s.now()))
	if err != nil {
		return nil, err
	}
	return s.expenseRepo.List(ctx, user.ID, from, to, f.Category)
}

// Summarize totals user's amounts, optionally for one month-of-year across all years.
func (s *QueryService) Summarize(ctx context.Context, user models.User, month *int) (models.Summary, error) {
	m := 0
	if month != nil {
		if *month < 1 || *month > 12 {
			return models.Summary{}, invalid("month must be between 1 and 12")
		}
		m = *month
	}
	total, err := s.expenseRepo.Sum(ctx, user.ID, m)
	if err != nil {
		return models.Summary{}, err
	}
	return models.Summary{Month: month, Total: total}, nil
}
