package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"expense_tracker/internal/models"
)

type ExpenseSQLite struct {
	db *sql.DB
}

func NewExpenseSQLite(db *sql.DB) *ExpenseSQLite { return &ExpenseSQLite{db: db} }

var _ ExpenseRepo = (*ExpenseSQLite)(nil)

const (
	expenseColumns = `id, description, amount, date, category, user_id`

	insertExpenseSQL = `INSERT INTO expenses (description, amount, date, category, user_id) VALUES (?, ?, ?, ?, ?)`

	selectExpenseSQL = `SELECT ` + expenseColumns + ` FROM expenses WHERE id = ? AND user_id = ?`

	// NULL arguments keep the stored value.
	updateExpenseSQL = `UPDATE expenses SET
		description = COALESCE(?, description),
		amount = COALESCE(?, amount),
		category = COALESCE(?, category)
		WHERE id = ? AND user_id = ?`

	deleteExpenseSQL = `DELETE FROM expenses WHERE id = ? AND user_id = ?`

	sumExpensesSQL = `SELECT COALESCE(SUM(amount), 0) FROM expenses WHERE user_id = ?`
)

// Create inserts an expense owned by userID dated date.
func (r *ExpenseSQLite) Create(ctx context.Context, userID int64, e models.NewExpense, date models.Date) (models.Expense, error) {
	res, err := r.db.ExecContext(ctx, insertExpenseSQL, e.Description, e.Amount, date, string(e.Category), userID)
	if err != nil {
		return models.Expense{}, fmt.Errorf("insert expense for user %d: %w", userID, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return models.Expense{}, fmt.Errorf("get last insert id for expense: %w", err)
	}
	return models.Expense{
		ID:          id,
		Description: e.Description,
		Amount:      e.Amount,
		Date:        date,
		Category:    e.Category,
		UserID:      userID,
	}, nil
}

// Get returns the expense only if userID owns it.
func (r *ExpenseSQLite) Get(ctx context.Context, userID, id int64) (models.Expense, error) {
	e, err := scanExpense(r.db.QueryRowContext(ctx, selectExpenseSQL, id, userID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Expense{}, ErrNotFound
		}
		return models.Expense{}, fmt.Errorf("select expense %d: %w", id, err)
	}
	return e, nil
}

// Update applies p in a single transaction and returns the stored row.
func (r *ExpenseSQLite) Update(ctx context.Context, userID, id int64, p models.ExpensePatch) (models.Expense, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return models.Expense{}, fmt.Errorf("begin update expense %d: %w", id, err)
	}
	defer func() { _ = tx.Rollback() }()

	var category any
	if p.Category != nil {
		category = string(*p.Category)
	}

	res, err := tx.ExecContext(ctx, updateExpenseSQL, p.Description, p.Amount, category, id, userID)
	if err != nil {
		return models.Expense{}, fmt.Errorf("update expense %d: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return models.Expense{}, fmt.Errorf("rows affected for expense %d: %w", id, err)
	}
	if n == 0 {
		return models.Expense{}, ErrNotFound
	}

	e, err := scanExpense(tx.QueryRowContext(ctx, selectExpenseSQL, id, userID))
	if err != nil {
		return models.Expense{}, fmt.Errorf("reload expense %d: %w", id, err)
	}
	if err := tx.Commit(); err != nil {
		return models.Expense{}, fmt.Errorf("commit update expense %d: %w", id, err)
	}
	return e, nil
}

// Delete removes the expense if userID owns it.
func (r *ExpenseSQLite) Delete(ctx context.Context, userID, id int64) error {
	res, err := r.db.ExecContext(ctx, deleteExpenseSQL, id, userID)
	if err != nil {
		return fmt.Errorf("delete expense %d: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected for expense %d: %w", id, err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// List returns userID's expenses filtered by [from, to] (inclusive, zero = open)
// and category (empty = any), ordered by id ASC.
func (r *ExpenseSQLite) List(ctx context.Context, userID int64, from, to models.Date, category models.Category) ([]models.Expense, error) {
	conds := []string{"user_id = ?"}
	args := []any{userID}

	if !from.IsZero() {
		conds = append(conds, "date >= ?")
		args = append(args, from)
	}
	if !to.IsZero() {
		conds = append(conds, "date <= ?")
		args = append(args, to)
	}
	if category != "" {
		conds = append(conds, "category = ?")
		args = append(args, string(category))
	}

	q := `SELECT ` + expenseColumns + ` FROM expenses WHERE ` + strings.Join(conds, " AND ") + ` ORDER BY id ASC`

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("list expenses for user %d: %w", userID, err)
	}
	defer rows.Close()

	out := make([]models.Expense, 0, 16)
	for rows.Next() {
		e, err := scanExpense(rows)
		if err != nil {
			return nil, fmt.Errorf("scan expense: %w", err)
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Sum totals userID's amounts; month in 1..12 restricts to that month of any year, 0 means all.
func (r *ExpenseSQLite) Sum(ctx context.Context, userID int64, month int) (int64, error) {
	q := sumExpensesSQL
	args := []any{userID}
	if month != 0 {
		q += ` AND CAST(strftime('%m', date) AS INTEGER) = ?`
		args = append(args, month)
	}

	var total int64
	if err := r.db.QueryRowContext(ctx, q, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("sum expenses for user %d: %w", userID, err)
	}
	return total, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanExpense(row rowScanner) (models.Expense, error) {
	var (
		e        models.Expense
		category string
	)
	if err := row.Scan(&e.ID, &e.Description, &e.Amount, &e.Date, &category, &e.UserID); err != nil {
		return models.Expense{}, err
	}
	e.Category = models.Category(category)
	return e, nil
}
