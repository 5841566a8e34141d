package sheets

import "kharcha/internal/core"

// Row codecs shared by every store implementation and by archive files.
// Amounts are written as plain decimals and read back through the
// number normalizer, because the spreadsheet may hand back
// display-formatted strings.

func ExpenseRow(e core.Expense) []string {
	return []string{
		e.ID,
		e.Date,
		e.MemberName,
		e.Category,
		e.Description,
		core.FormatAmount(e.Amount),
		e.Month,
		e.CreatedAt,
	}
}

func ExpenseFromRow(row []string) core.Expense {
	get := func(i int) string {
		if i < len(row) {
			return row[i]
		}
		return ""
	}
	return core.Expense{
		ID:          get(0),
		Date:        get(1),
		MemberName:  get(2),
		Category:    get(3),
		Description: get(4),
		Amount:      core.ParseNumber(get(5)),
		Month:       get(6),
		CreatedAt:   get(7),
	}
}

func BudgetRow(b core.Budget) []string {
	return []string{
		b.Month,
		core.FormatAmount(b.TotalBudget),
		core.FormatAmount(b.TotalSpent),
		core.FormatAmount(b.RemainingBudget),
		b.LastUpdated,
	}
}

func BudgetFromRow(row []string) core.Budget {
	get := func(i int) string {
		if i < len(row) {
			return row[i]
		}
		return ""
	}
	return core.Budget{
		Month:           get(0),
		TotalBudget:     core.ParseNumber(get(1)),
		TotalSpent:      core.ParseNumber(get(2)),
		RemainingBudget: core.ParseNumber(get(3)),
		LastUpdated:     get(4),
	}
}
