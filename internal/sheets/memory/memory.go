// Package memory is an in-process implementation of the tabular store.
// It keeps the two tables as raw string rows, mirroring how the
// spreadsheet behaves (positional rows, shifting indices after
// deletion), which makes it a faithful stand-in for unit tests and
// zero-config local runs.
package memory

import (
	"context"
	"fmt"
	"sync"

	"kharcha/internal/core"
	"kharcha/internal/sheets"
)

type Store struct {
	mu       sync.Mutex
	expenses [][]string
	budgets  [][]string
}

var _ sheets.Store = (*Store)(nil)

func New() *Store {
	return &Store{}
}

func (s *Store) AppendExpense(_ context.Context, e core.Expense) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.expenses = append(s.expenses, sheets.ExpenseRow(e))
	return nil
}

func (s *Store) ListExpenses(_ context.Context) ([]core.Expense, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]core.Expense, 0, len(s.expenses))
	for _, row := range s.expenses {
		out = append(out, sheets.ExpenseFromRow(row))
	}
	return out, nil
}

func (s *Store) ListBudgets(_ context.Context) ([]core.Budget, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]core.Budget, 0, len(s.budgets))
	for _, row := range s.budgets {
		out = append(out, sheets.BudgetFromRow(row))
	}
	return out, nil
}

func (s *Store) UpsertBudget(_ context.Context, b core.Budget) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	row := sheets.BudgetRow(b)
	// Fresh positional scan on every call; indices are not stable.
	for i, existing := range s.budgets {
		if len(existing) > 0 && existing[0] == b.Month {
			s.budgets[i] = row
			return nil
		}
	}
	s.budgets = append(s.budgets, row)
	return nil
}

// RawSlice addresses rows in the store's native 1-based numbering, with
// the header occupying row 1.
func (s *Store) RawSlice(_ context.Context, fromRow, toRow int) ([][]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	from := fromRow - 2 // row 2 is the first data row
	to := toRow - 1
	if from < 0 {
		from = 0
	}
	if to > len(s.expenses) {
		to = len(s.expenses)
	}
	if from >= to {
		return nil, nil
	}
	out := make([][]string, 0, to-from)
	for _, row := range s.expenses[from:to] {
		cp := make([]string, len(row))
		copy(cp, row)
		out = append(out, cp)
	}
	return out, nil
}

func (s *Store) DeleteExpenseRows(_ context.Context, fromIndex, toIndexExclusive int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if fromIndex < 0 || toIndexExclusive < fromIndex || toIndexExclusive > len(s.expenses) {
		return fmt.Errorf("delete range [%d,%d) out of bounds for %d rows", fromIndex, toIndexExclusive, len(s.expenses))
	}
	s.expenses = append(s.expenses[:fromIndex], s.expenses[toIndexExclusive:]...)
	return nil
}
