package service

import (
	"context"
	"time"

	"expense_tracker/internal/models"
	"expense_tracker/internal/repository"
)

// mockAuthRepo is a lightweight in-test mock for repository.Authorization.
type mockAuthRepo struct {
	CreateFn     func(name, email, hash string) (models.User, error)
	GetByEmailFn func(email string) (*models.User, error)
	GetByIDFn    func(id int64) (*models.User, error)

	createCalls []struct {
		name  string
		email string
		hash  string
	}
	getCalls []string
}

func (m *mockAuthRepo) Create(_ context.Context, name, email, hash string) (models.User, error) {
	m.createCalls = append(m.createCalls, struct {
		name  string
		email string
		hash  string
	}{name: name, email: email, hash: hash})
	return m.CreateFn(name, email, hash)
}

func (m *mockAuthRepo) GetByEmail(_ context.Context, email string) (*models.User, error) {
	m.getCalls = append(m.getCalls, email)
	return m.GetByEmailFn(email)
}

func (m *mockAuthRepo) GetByID(_ context.Context, id int64) (*models.User, error) {
	return m.GetByIDFn(id)
}

// fakeExpenseRepo is an in-memory repository.ExpenseRepo with the same
// ownership and ordering rules as the SQLite one.
type fakeExpenseRepo struct {
	rows   []models.Expense
	nextID int64
	err    error

	// captured inputs
	gotFrom     models.Date
	gotTo       models.Date
	gotCategory models.Category
	gotMonth    int
	listCalls   int
	updateCalls int
}

var _ repository.ExpenseRepo = (*fakeExpenseRepo)(nil)

func (f *fakeExpenseRepo) Create(_ context.Context, userID int64, e models.NewExpense, date models.Date) (models.Expense, error) {
	if f.err != nil {
		return models.Expense{}, f.err
	}
	f.nextID++
	row := models.Expense{
		ID:          f.nextID,
		Description: e.Description,
		Amount:      e.Amount,
		Date:        date,
		Category:    e.Category,
		UserID:      userID,
	}
	f.rows = append(f.rows, row)
	return row, nil
}

func (f *fakeExpenseRepo) find(userID, id int64) int {
	for i, r := range f.rows {
		if r.ID == id && r.UserID == userID {
			return i
		}
	}
	return -1
}

func (f *fakeExpenseRepo) Get(_ context.Context, userID, id int64) (models.Expense, error) {
	if f.err != nil {
		return models.Expense{}, f.err
	}
	i := f.find(userID, id)
	if i < 0 {
		return models.Expense{}, repository.ErrNotFound
	}
	return f.rows[i], nil
}

func (f *fakeExpenseRepo) Update(_ context.Context, userID, id int64, p models.ExpensePatch) (models.Expense, error) {
	f.updateCalls++
	if f.err != nil {
		return models.Expense{}, f.err
	}
	i := f.find(userID, id)
	if i < 0 {
		return models.Expense{}, repository.ErrNotFound
	}
	if p.Description != nil {
		f.rows[i].Description = *p.Description
	}
	if p.Amount != nil {
		f.rows[i].Amount = *p.Amount
	}
	if p.Category != nil {
		f.rows[i].Category = *p.Category
	}
	return f.rows[i], nil
}

func (f *fakeExpenseRepo) Delete(_ context.Context, userID, id int64) error {
	if f.err != nil {
		return f.err
	}
	i := f.find(userID, id)
	if i < 0 {
		return repository.ErrNotFound
	}
	f.rows = append(f.rows[:i], f.rows[i+1:]...)
	return nil
}

func (f *fakeExpenseRepo) List(_ context.Context, userID int64, from, to models.Date, category models.Category) ([]models.Expense, error) {
	f.listCalls++
	f.gotFrom, f.gotTo, f.gotCategory = from, to, category
	if f.err != nil {
		return nil, f.err
	}
	out := []models.Expense{}
	for _, r := range f.rows {
		if r.UserID != userID {
			continue
		}
		if !from.IsZero() && r.Date.Before(from.Time) {
			continue
		}
		if !to.IsZero() && r.Date.After(to.Time) {
			continue
		}
		if category != "" && r.Category != category {
			continue
		}
		out = append(out, r)
	}
	return out, nil
}

func (f *fakeExpenseRepo) Sum(_ context.Context, userID int64, month int) (int64, error) {
	f.gotMonth = month
	if f.err != nil {
		return 0, f.err
	}
	var total int64
	for _, r := range f.rows {
		if r.UserID != userID {
			continue
		}
		if month != 0 && int(r.Date.Month()) != month {
			continue
		}
		total += r.Amount
	}
	return total, nil
}

// fixedClock returns a Now func pinned to the given local date at noon.
func fixedClock(y int, m time.Month, d int) func() time.Time {
	t := time.Date(y, m, d, 12, 0, 0, 0, time.Local)
	return func() time.Time { return t }
}
