package repository_test

import (
	"context"
	"testing"
	"time"

	"expense_tracker/internal/models"
	"expense_tracker/internal/repository"
	"expense_tracker/internal/repository/db"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// SQLiteSuite runs the repositories against a migrated in-memory database.
type SQLiteSuite struct {
	suite.Suite
	repos *repository.Repository
	ctx   context.Context
	alice models.User
	bob   models.User
}

func (s *SQLiteSuite) SetupTest() {
	conn, err := db.InitDB(":memory:")
	require.NoError(s.T(), err, "failed to create test database")
	s.T().Cleanup(func() { _ = conn.Close() })

	s.repos = repository.NewRepository(conn)
	s.ctx = context.Background()

	s.alice, err = s.repos.Auth.Create(s.ctx, "Alice", "a@x.com", "hash-a")
	require.NoError(s.T(), err)
	s.bob, err = s.repos.Auth.Create(s.ctx, "Bob", "b@x.com", "hash-b")
	require.NoError(s.T(), err)
}

func (s *SQLiteSuite) add(owner models.User, desc string, amount int64, cat models.Category, date models.Date) models.Expense {
	e, err := s.repos.Expenses.Create(s.ctx, owner.ID, models.NewExpense{
		Description: desc,
		Amount:      amount,
		Category:    cat,
	}, date)
	require.NoError(s.T(), err)
	return e
}

func (s *SQLiteSuite) TestDuplicateEmailIsReported() {
	_, err := s.repos.Auth.Create(s.ctx, "Other", "a@x.com", "hash")
	assert.ErrorIs(s.T(), err, repository.ErrDuplicateEmail)

	u, err := s.repos.Auth.GetByEmail(s.ctx, "a@x.com")
	require.NoError(s.T(), err)
	require.NotNil(s.T(), u)
	assert.Equal(s.T(), s.alice.ID, u.ID)
}

func (s *SQLiteSuite) TestEmailMatchIsExact() {
	u, err := s.repos.Auth.GetByEmail(s.ctx, "A@X.COM")
	require.NoError(s.T(), err)
	assert.Nil(s.T(), u)
}

func (s *SQLiteSuite) TestCreateAndListAreOwnerScoped() {
	day := models.NewDate(2026, time.October, 16)
	e := s.add(s.alice, "coffee", 300, models.CategoryGroceries, day)

	mine, err := s.repos.Expenses.List(s.ctx, s.alice.ID, models.Date{}, models.Date{}, "")
	require.NoError(s.T(), err)
	require.Len(s.T(), mine, 1)
	assert.Equal(s.T(), e.ID, mine[0].ID)
	assert.Equal(s.T(), "2026-10-16", mine[0].Date.String())
	assert.Equal(s.T(), models.CategoryGroceries, mine[0].Category)

	theirs, err := s.repos.Expenses.List(s.ctx, s.bob.ID, models.Date{}, models.Date{}, "")
	require.NoError(s.T(), err)
	assert.Empty(s.T(), theirs)

	_, err = s.repos.Expenses.Get(s.ctx, s.bob.ID, e.ID)
	assert.ErrorIs(s.T(), err, repository.ErrNotFound)
}

func (s *SQLiteSuite) TestListDateBoundsAreInclusive() {
	s.add(s.alice, "before", 1, models.CategoryOthers, models.NewDate(2026, time.October, 9))
	first := s.add(s.alice, "start", 2, models.CategoryOthers, models.NewDate(2026, time.October, 10))
	last := s.add(s.alice, "end", 3, models.CategoryLeisure, models.NewDate(2026, time.October, 16))
	s.add(s.alice, "after", 4, models.CategoryOthers, models.NewDate(2026, time.October, 17))

	got, err := s.repos.Expenses.List(s.ctx, s.alice.ID,
		models.NewDate(2026, time.October, 10), models.NewDate(2026, time.October, 16), "")
	require.NoError(s.T(), err)
	require.Len(s.T(), got, 2)
	assert.Equal(s.T(), first.ID, got[0].ID)
	assert.Equal(s.T(), last.ID, got[1].ID)

	got, err = s.repos.Expenses.List(s.ctx, s.alice.ID,
		models.NewDate(2026, time.October, 10), models.Date{}, models.CategoryLeisure)
	require.NoError(s.T(), err)
	require.Len(s.T(), got, 1)
	assert.Equal(s.T(), last.ID, got[0].ID)
}

func (s *SQLiteSuite) TestPartialUpdateKeepsOtherFields() {
	e := s.add(s.alice, "coffee", 300, models.CategoryGroceries, models.NewDate(2026, time.October, 1))

	amount := int64(450)
	updated, err := s.repos.Expenses.Update(s.ctx, s.alice.ID, e.ID, models.ExpensePatch{Amount: &amount})
	require.NoError(s.T(), err)
	assert.Equal(s.T(), int64(450), updated.Amount)
	assert.Equal(s.T(), "coffee", updated.Description)
	assert.Equal(s.T(), models.CategoryGroceries, updated.Category)
	assert.Equal(s.T(), "2026-10-01", updated.Date.String())

	_, err = s.repos.Expenses.Update(s.ctx, s.bob.ID, e.ID, models.ExpensePatch{Amount: &amount})
	assert.ErrorIs(s.T(), err, repository.ErrNotFound)

	_, err = s.repos.Expenses.Update(s.ctx, s.alice.ID, e.ID, models.ExpensePatch{})
	assert.NoError(s.T(), err, "empty patch on an owned row is a no-op")
}

func (s *SQLiteSuite) TestDeleteIsOwnerScoped() {
	e := s.add(s.alice, "coffee", 300, models.CategoryGroceries, models.NewDate(2026, time.October, 1))

	assert.ErrorIs(s.T(), s.repos.Expenses.Delete(s.ctx, s.bob.ID, e.ID), repository.ErrNotFound)
	require.NoError(s.T(), s.repos.Expenses.Delete(s.ctx, s.alice.ID, e.ID))
	assert.ErrorIs(s.T(), s.repos.Expenses.Delete(s.ctx, s.alice.ID, e.ID), repository.ErrNotFound)
}

func (s *SQLiteSuite) TestSumByMonthIgnoresYear() {
	s.add(s.alice, "feb 2025", 100, models.CategoryOthers, models.NewDate(2025, time.February, 10))
	s.add(s.alice, "feb 2026", 200, models.CategoryOthers, models.NewDate(2026, time.February, 28))
	s.add(s.alice, "mar 2026", 400, models.CategoryOthers, models.NewDate(2026, time.March, 1))
	s.add(s.bob, "bob feb", 1000, models.CategoryOthers, models.NewDate(2026, time.February, 1))

	total, err := s.repos.Expenses.Sum(s.ctx, s.alice.ID, 2)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), int64(300), total)

	total, err = s.repos.Expenses.Sum(s.ctx, s.alice.ID, 0)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), int64(700), total)

	total, err = s.repos.Expenses.Sum(s.ctx, s.alice.ID, 7)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), int64(0), total)
}

func (s *SQLiteSuite) TestSchemaRejectsNegativeAmountAndUnknownCategory() {
	_, err := s.repos.Expenses.Create(s.ctx, s.alice.ID, models.NewExpense{
		Description: "bad", Amount: -1, Category: models.CategoryOthers,
	}, models.NewDate(2026, time.January, 1))
	assert.Error(s.T(), err)

	_, err = s.repos.Expenses.Create(s.ctx, s.alice.ID, models.NewExpense{
		Description: "bad", Amount: 1, Category: models.Category("Travel"),
	}, models.NewDate(2026, time.January, 1))
	assert.Error(s.T(), err)
}

func TestSQLiteSuite(t *testing.T) {
	suite.Run(t, new(SQLiteSuite))
}
