// Package storage is the embedded SQLite implementation of the tabular
// store. It exists for local runs without spreadsheet credentials; the
// append/scan/positional-delete contract is the same one the
// spreadsheet honors, with append order defined by an autoincrement
// sequence.
package storage

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"kharcha/internal/core"
	"kharcha/internal/sheets"

	_ "modernc.org/sqlite"
)

type Repository struct {
	db *sql.DB
}

var _ sheets.Store = (*Repository)(nil)

func NewRepository(dbPath string) (*Repository, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	if err := runMigrations(dbPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return &Repository{db: db}, nil
}

func (r *Repository) Close() error {
	if r.db != nil {
		return r.db.Close()
	}
	return nil
}

func storeErr(op string, err error) error {
	return fmt.Errorf("%w: %s: %v", sheets.ErrStoreUnavailable, op, err)
}

func (r *Repository) AppendExpense(ctx context.Context, e core.Expense) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO expenses (id, date, member_name, category, description, amount, month, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		e.ID, e.Date, e.MemberName, e.Category, e.Description, e.Amount, e.Month, e.CreatedAt)
	if err != nil {
		return storeErr("append expense", err)
	}
	return nil
}

func (r *Repository) ListExpenses(ctx context.Context) ([]core.Expense, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, date, member_name, category, description, amount, month, created_at
		 FROM expenses ORDER BY seq`)
	if err != nil {
		return nil, storeErr("list expenses", err)
	}
	defer rows.Close()
	var out []core.Expense
	for rows.Next() {
		var e core.Expense
		if err := rows.Scan(&e.ID, &e.Date, &e.MemberName, &e.Category, &e.Description, &e.Amount, &e.Month, &e.CreatedAt); err != nil {
			return nil, storeErr("scan expense", err)
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr("list expenses", err)
	}
	return out, nil
}

func (r *Repository) ListBudgets(ctx context.Context) ([]core.Budget, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT month, total_budget, total_spent, remaining_budget, last_updated
		 FROM monthly_budgets ORDER BY rowid`)
	if err != nil {
		return nil, storeErr("list budgets", err)
	}
	defer rows.Close()
	var out []core.Budget
	for rows.Next() {
		var b core.Budget
		if err := rows.Scan(&b.Month, &b.TotalBudget, &b.TotalSpent, &b.RemainingBudget, &b.LastUpdated); err != nil {
			return nil, storeErr("scan budget", err)
		}
		out = append(out, b)
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr("list budgets", err)
	}
	return out, nil
}

func (r *Repository) UpsertBudget(ctx context.Context, b core.Budget) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO monthly_budgets (month, total_budget, total_spent, remaining_budget, last_updated)
		 VALUES (?, ?, ?, ?, ?)
		 ON CONFLICT(month) DO UPDATE SET
		   total_budget = excluded.total_budget,
		   total_spent = excluded.total_spent,
		   remaining_budget = excluded.remaining_budget,
		   last_updated = excluded.last_updated`,
		b.Month, b.TotalBudget, b.TotalSpent, b.RemainingBudget, b.LastUpdated)
	if err != nil {
		return storeErr("upsert budget", err)
	}
	return nil
}

// RawSlice mirrors the spreadsheet's 1-based row addressing: row 1 is
// the header, row 2 the oldest data row.
func (r *Repository) RawSlice(ctx context.Context, fromRow, toRow int) ([][]string, error) {
	offset := fromRow - 2
	if offset < 0 {
		offset = 0
	}
	limit := toRow - fromRow + 1
	if limit <= 0 {
		return nil, nil
	}
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, date, member_name, category, description, amount, month, created_at
		 FROM expenses ORDER BY seq LIMIT ? OFFSET ?`, limit, offset)
	if err != nil {
		return nil, storeErr("read raw slice", err)
	}
	defer rows.Close()
	var out [][]string
	for rows.Next() {
		var e core.Expense
		if err := rows.Scan(&e.ID, &e.Date, &e.MemberName, &e.Category, &e.Description, &e.Amount, &e.Month, &e.CreatedAt); err != nil {
			return nil, storeErr("scan raw slice", err)
		}
		out = append(out, sheets.ExpenseRow(e))
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr("read raw slice", err)
	}
	return out, nil
}

func (r *Repository) DeleteExpenseRows(ctx context.Context, fromIndex, toIndexExclusive int) error {
	count := toIndexExclusive - fromIndex
	if count <= 0 {
		return nil
	}
	_, err := r.db.ExecContext(ctx,
		`DELETE FROM expenses WHERE seq IN
		   (SELECT seq FROM expenses ORDER BY seq LIMIT ? OFFSET ?)`,
		count, fromIndex)
	if err != nil {
		return storeErr("delete expense rows", err)
	}
	return nil
}
