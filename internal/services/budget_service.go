// Package services orchestrates the domain operations over the tabular
// store: recording expenses, keeping the per-month budget cache in sync
// with the expense log, and bounding the log's size through archival.
package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"kharcha/internal/core"
	"kharcha/internal/sheets"
)

// Dashboard is the flat month view served to the routing layer. The
// headline totals come from the cached budget row; the breakdowns are
// recomputed from a live scan.
type Dashboard struct {
	Month             string             `json:"month"`
	TotalBudget       float64            `json:"totalBudget"`
	TotalSpent        float64            `json:"totalSpent"`
	RemainingBudget   float64            `json:"remainingBudget"`
	CategoryBreakdown map[string]float64 `json:"categoryBreakdown"`
	MemberBreakdown   map[string]float64 `json:"memberBreakdown"`
	DailyTotals       []core.DailyTotal  `json:"dailyTotals"`
}

// BudgetService keeps each month's budget row consistent with the
// expense log after every mutation. There is no cross-call locking: two
// concurrent writers for the same month race read-compute-write and the
// later write wins, which is accepted at household request rates.
type BudgetService struct {
	store    sheets.Store
	archiver *Archiver // optional; nil disables the post-insert trigger
	now      func() string
	newID    func() string
}

func NewBudgetService(store sheets.Store, archiver *Archiver) *BudgetService {
	return &BudgetService{
		store:    store,
		archiver: archiver,
		now:      core.NowISO,
		newID:    uuid.NewString,
	}
}

// RecordExpense assigns an id and creation timestamp, derives the month
// key from the date, appends the row and refreshes the month's budget
// cache. The append and the recompute are two separate remote writes; a
// crash in between leaves the cache stale until the next mutation for
// that month, which is recoverable because the cache is always
// recomputable from the log.
func (s *BudgetService) RecordExpense(ctx context.Context, e core.Expense) (core.Expense, error) {
	month, err := core.MonthFromDate(e.Date)
	if err != nil {
		return core.Expense{}, err
	}
	e.ID = s.newID()
	e.Month = month
	e.CreatedAt = s.now()

	if err := s.store.AppendExpense(ctx, e); err != nil {
		return core.Expense{}, fmt.Errorf("append expense: %w", err)
	}
	if _, err := s.Recompute(ctx, month); err != nil {
		return core.Expense{}, fmt.Errorf("recompute after append: %w", err)
	}

	// Maintenance side effect, invisible to the caller.
	if s.archiver != nil {
		s.archiver.Trigger()
	}
	return e, nil
}

// Recompute rebuilds the budget row for month from the expense log and
// persists it. A missing row is synthesized with a zero allocation.
func (s *BudgetService) Recompute(ctx context.Context, month string) (core.Budget, error) {
	b, err := s.findBudget(ctx, month)
	if err != nil {
		return core.Budget{}, err
	}
	expenses, err := s.store.ListExpenses(ctx)
	if err != nil {
		return core.Budget{}, fmt.Errorf("scan expense log: %w", err)
	}
	summary := core.Summarize(expenses, month)

	b.TotalSpent = summary.TotalSpent
	b.RemainingBudget = b.TotalBudget - summary.TotalSpent
	b.LastUpdated = s.now()

	if err := s.store.UpsertBudget(ctx, b); err != nil {
		return core.Budget{}, fmt.Errorf("persist budget: %w", err)
	}
	slog.InfoContext(ctx, "Budget recomputed",
		"month", month, "total_spent", b.TotalSpent, "remaining", b.RemainingBudget)
	return b, nil
}

// SetBudget writes the new allocation for month and then recomputes the
// derived fields from the real log. Two remote writes occur; a crash
// between them leaves the allocation updated and the aggregates stale
// until the next trigger.
func (s *BudgetService) SetBudget(ctx context.Context, month string, totalBudget float64) (core.Budget, error) {
	b, err := s.findBudget(ctx, month)
	if err != nil {
		return core.Budget{}, err
	}
	b.TotalBudget = totalBudget
	if b.LastUpdated == "" {
		// First write for this month: initial guess before the recompute
		// corrects the spent side.
		b.RemainingBudget = totalBudget
	}
	b.LastUpdated = s.now()
	if err := s.store.UpsertBudget(ctx, b); err != nil {
		return core.Budget{}, fmt.Errorf("persist budget: %w", err)
	}
	return s.Recompute(ctx, month)
}

// GetBudgetSummary returns the budget row for month, or a zero-valued
// default when none exists. Absence is never an error.
func (s *BudgetService) GetBudgetSummary(ctx context.Context, month string) (core.Budget, error) {
	return s.findBudget(ctx, month)
}

// GetDashboard assembles the flat month view: cached budget totals plus
// breakdowns from a fresh scan.
func (s *BudgetService) GetDashboard(ctx context.Context, month string) (Dashboard, error) {
	b, err := s.findBudget(ctx, month)
	if err != nil {
		return Dashboard{}, err
	}
	expenses, err := s.store.ListExpenses(ctx)
	if err != nil {
		return Dashboard{}, fmt.Errorf("scan expense log: %w", err)
	}
	summary := core.Summarize(expenses, month)
	return Dashboard{
		Month:             month,
		TotalBudget:       b.TotalBudget,
		TotalSpent:        b.TotalSpent,
		RemainingBudget:   b.RemainingBudget,
		CategoryBreakdown: summary.CategoryBreakdown,
		MemberBreakdown:   summary.MemberBreakdown,
		DailyTotals:       summary.DailyTotals,
	}, nil
}

// ListExpenses returns the month-filtered view of the live log.
func (s *BudgetService) ListExpenses(ctx context.Context, month string) ([]core.Expense, error) {
	all, err := s.store.ListExpenses(ctx)
	if err != nil {
		return nil, fmt.Errorf("scan expense log: %w", err)
	}
	out := make([]core.Expense, 0)
	for _, e := range all {
		if e.Month == month {
			out = append(out, e)
		}
	}
	return out, nil
}

func (s *BudgetService) findBudget(ctx context.Context, month string) (core.Budget, error) {
	budgets, err := s.store.ListBudgets(ctx)
	if err != nil {
		return core.Budget{}, fmt.Errorf("scan budget table: %w", err)
	}
	for _, b := range budgets {
		if b.Month == month {
			return b, nil
		}
	}
	return core.ZeroBudget(month), nil
}
