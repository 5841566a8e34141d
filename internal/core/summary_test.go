package core

import "testing"

func TestSummarizeEmptyMonth(t *testing.T) {
	s := Summarize(nil, "2024-06")
	if s.TotalSpent != 0 {
		t.Fatalf("total spent: got %v, want 0", s.TotalSpent)
	}
	if len(s.CategoryBreakdown) != 0 || len(s.MemberBreakdown) != 0 || len(s.DailyTotals) != 0 {
		t.Fatalf("expected empty breakdowns, got %+v", s)
	}
}

func TestSummarizeFiltersByExactMonth(t *testing.T) {
	expenses := []Expense{
		{Date: "15/06/2024", MemberName: "A", Category: "Food", Amount: 100, Month: "2024-06"},
		{Date: "16/06/2024", MemberName: "B", Category: "Transport", Amount: 40, Month: "2024-06"},
		{Date: "01/07/2024", MemberName: "A", Category: "Food", Amount: 999, Month: "2024-07"},
	}
	s := Summarize(expenses, "2024-06")
	if s.TotalSpent != 140 {
		t.Fatalf("total spent: got %v, want 140", s.TotalSpent)
	}
	if got := s.CategoryBreakdown["Food"]; got != 100 {
		t.Fatalf("Food: got %v, want 100", got)
	}
	if got := s.MemberBreakdown["B"]; got != 40 {
		t.Fatalf("member B: got %v, want 40", got)
	}
}

func TestSummarizeDefaultsMissingFields(t *testing.T) {
	expenses := []Expense{
		{Date: "01/06/2024", Amount: 10, Month: "2024-06"},
	}
	s := Summarize(expenses, "2024-06")
	if got := s.CategoryBreakdown["Other"]; got != 10 {
		t.Fatalf("missing category should land in Other, got %+v", s.CategoryBreakdown)
	}
	if got := s.MemberBreakdown["Unknown"]; got != 10 {
		t.Fatalf("missing member should land in Unknown, got %+v", s.MemberBreakdown)
	}
}

func TestSummarizeDailyTotalsCalendarOrder(t *testing.T) {
	expenses := []Expense{
		{Date: "5/3/2024", Amount: 1, Month: "2024-03", MemberName: "A"},
		{Date: "15/1/2024", Amount: 2, Month: "2024-03", MemberName: "A"},
		{Date: "1/1/2024", Amount: 3, Month: "2024-03", MemberName: "A"},
	}
	s := Summarize(expenses, "2024-03")
	want := []string{"1/1/2024", "15/1/2024", "5/3/2024"}
	if len(s.DailyTotals) != len(want) {
		t.Fatalf("daily totals: got %d entries, want %d", len(s.DailyTotals), len(want))
	}
	for i, w := range want {
		if s.DailyTotals[i].Date != w {
			t.Fatalf("daily totals order: got %v at %d, want %s", s.DailyTotals[i].Date, i, w)
		}
	}
}

func TestSummarizeMergesSameDay(t *testing.T) {
	expenses := []Expense{
		{Date: "02/06/2024", Amount: 10, Month: "2024-06", MemberName: "A"},
		{Date: "02/06/2024", Amount: 15, Month: "2024-06", MemberName: "B"},
	}
	s := Summarize(expenses, "2024-06")
	if len(s.DailyTotals) != 1 || s.DailyTotals[0].Amount != 25 {
		t.Fatalf("same-day totals should merge, got %+v", s.DailyTotals)
	}
}
