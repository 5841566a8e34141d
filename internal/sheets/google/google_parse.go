package google

import (
	"fmt"
	"strings"

	"kharcha/internal/core"
	"kharcha/internal/sheets"
)

// Conversion between the Sheets API's loosely typed value matrices and
// domain records. Reads are best-effort: a malformed cell normalizes to
// its zero value and never fails the scan.

func toStrings(in []any) []string {
	out := make([]string, len(in))
	for i, v := range in {
		if v == nil {
			continue
		}
		out[i] = strings.TrimSpace(fmt.Sprint(v))
	}
	return out
}

func expensesFromValues(values [][]any) []core.Expense {
	out := make([]core.Expense, 0, len(values))
	for _, row := range values {
		cols := toStrings(row)
		if isBlank(cols) {
			continue
		}
		out = append(out, sheets.ExpenseFromRow(cols))
	}
	return out
}

func budgetsFromValues(values [][]any) []core.Budget {
	out := make([]core.Budget, 0, len(values))
	for _, row := range values {
		cols := toStrings(row)
		if isBlank(cols) {
			continue
		}
		out = append(out, sheets.BudgetFromRow(cols))
	}
	return out
}

func isBlank(cols []string) bool {
	for _, c := range cols {
		if c != "" {
			return false
		}
	}
	return true
}
