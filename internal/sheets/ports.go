// Package sheets defines the outbound ports for the tabular backing
// store. The store exposes two logical tables: an append-only expense
// log and a one-row-per-month budget table. Implementations live in
// sheets/google (the real spreadsheet), storage (embedded SQLite) and
// sheets/memory (tests and zero-config runs).
package sheets

import (
	"context"
	"errors"

	"kharcha/internal/core"
)

// ErrStoreUnavailable marks failures to reach the backing store
// (connection, auth, remote call errors). Callers surface it as a
// server error; it is never retried inside the store.
var ErrStoreUnavailable = errors.New("backing store unavailable")

// Expenses column order. This is the wire contract shared with the
// spreadsheet and with archive files; do not reorder.
var ExpenseHeader = []string{
	"id", "date", "memberName", "category", "description", "amount", "month", "createdAt",
}

// MonthlyBudgets column order.
var BudgetHeader = []string{
	"month", "totalBudget", "totalSpent", "remainingBudget", "lastUpdated",
}

type (
	// ExpenseAppender appends one row to the expense log. The backing
	// store serializes raw appends, so concurrent appends never
	// conflict.
	ExpenseAppender interface {
		AppendExpense(ctx context.Context, e core.Expense) error
	}

	// ExpenseLister returns all live expense rows in append order,
	// oldest first. Full scan; acceptable because the archiver bounds
	// the live row count.
	ExpenseLister interface {
		ListExpenses(ctx context.Context) ([]core.Expense, error)
	}

	// BudgetLister returns all budget rows in storage order.
	BudgetLister interface {
		ListBudgets(ctx context.Context) ([]core.Budget, error)
	}

	// BudgetUpserter overwrites the row for b.Month in place, or
	// appends a new row if none exists. Row positions shift after
	// archival deletions, so implementations must re-derive the
	// position from a fresh scan immediately before writing; a cached
	// row index is never trusted across calls.
	BudgetUpserter interface {
		UpsertBudget(ctx context.Context, b core.Budget) error
	}

	// RawReader returns a contiguous slice of raw expense rows for
	// export, addressed in the store's native 1-based row numbering
	// where the header is row 1.
	RawReader interface {
		RawSlice(ctx context.Context, fromRow, toRow int) ([][]string, error)
	}

	// RowPurger deletes a contiguous slice of the expense log by
	// position. Indices are 0-based over data rows: row 0 is the first
	// row past the header. Used only by the archiver.
	RowPurger interface {
		DeleteExpenseRows(ctx context.Context, fromIndex, toIndexExclusive int) error
	}

	// Store is the full tabular contract the backend factory wires in.
	Store interface {
		ExpenseAppender
		ExpenseLister
		BudgetLister
		BudgetUpserter
		RawReader
		RowPurger
	}
)
