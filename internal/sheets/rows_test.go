package sheets

import (
	"reflect"
	"testing"

	"kharcha/internal/core"
)

func TestExpenseRowRoundTrip(t *testing.T) {
	e := core.Expense{
		ID:          "abc-123",
		Date:        "15/06/2024",
		MemberName:  "Anika",
		Category:    "Food",
		Description: "groceries",
		Amount:      1234.56,
		Month:       "2024-06",
		CreatedAt:   "2024-06-15T10:00:00Z",
	}
	got := ExpenseFromRow(ExpenseRow(e))
	if !reflect.DeepEqual(got, e) {
		t.Fatalf("round trip mismatch:\n got %+v\nwant %+v", got, e)
	}
}

func TestExpenseFromRowShortRow(t *testing.T) {
	e := ExpenseFromRow([]string{"id-1", "01/01/2024"})
	if e.ID != "id-1" || e.Date != "01/01/2024" {
		t.Fatalf("unexpected parse: %+v", e)
	}
	if e.Amount != 0 || e.Month != "" {
		t.Fatalf("missing cells should zero out, got %+v", e)
	}
}

func TestExpenseFromRowFormattedAmount(t *testing.T) {
	e := ExpenseFromRow([]string{"id", "01/01/2024", "A", "Food", "", "৳ 50,000", "2024-01", ""})
	if e.Amount != 50000 {
		t.Fatalf("formatted amount: got %v, want 50000", e.Amount)
	}
}

func TestBudgetRowRoundTrip(t *testing.T) {
	b := core.Budget{
		Month:           "2024-06",
		TotalBudget:     5000,
		TotalSpent:      100,
		RemainingBudget: 4900,
		LastUpdated:     "2024-06-15T10:00:00Z",
	}
	if got := BudgetFromRow(BudgetRow(b)); !reflect.DeepEqual(got, b) {
		t.Fatalf("round trip mismatch:\n got %+v\nwant %+v", got, b)
	}
}

func TestHeadersMatchRowWidth(t *testing.T) {
	if len(ExpenseRow(core.Expense{})) != len(ExpenseHeader) {
		t.Fatal("expense row width must match header width")
	}
	if len(BudgetRow(core.Budget{})) != len(BudgetHeader) {
		t.Fatal("budget row width must match header width")
	}
}
