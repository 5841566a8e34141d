package core

import (
	"errors"
	"testing"
)

func TestMonthFromDate(t *testing.T) {
	cases := []struct {
		in   string
		want string
		ok   bool
	}{
		{"15/06/2024", "2024-06", true},
		{"01/12/2023", "2023-12", true},
		{"31/01/2024", "2024-01", true},
		{"2024-06-15", "", false},
		{"5/6/2024", "", false}, // canonical form requires zero padding
		{"", "", false},
	}
	for _, tc := range cases {
		got, err := MonthFromDate(tc.in)
		if tc.ok {
			if err != nil || got != tc.want {
				t.Fatalf("MonthFromDate(%q) = %q, %v; want %q", tc.in, got, err, tc.want)
			}
		} else if err == nil {
			t.Fatalf("MonthFromDate(%q) expected error", tc.in)
		}
	}
}

func TestIsValidMonth(t *testing.T) {
	for in, want := range map[string]bool{
		"2024-06": true,
		"1999-01": true,
		"2024-6":  false,
		"2024/06": false,
		"":        false,
	} {
		if got := IsValidMonth(in); got != want {
			t.Fatalf("IsValidMonth(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestExpenseValidate(t *testing.T) {
	valid := Expense{
		Date:       "15/06/2024",
		MemberName: "Anika",
		Category:   "Food",
		Amount:     100,
	}
	if err := valid.Validate(); err != nil {
		t.Fatalf("valid expense rejected: %v", err)
	}

	cases := []struct {
		name    string
		mutate  func(*Expense)
		wantErr error
	}{
		{"bad date", func(e *Expense) { e.Date = "15-06-2024" }, ErrInvalidDate},
		{"empty member", func(e *Expense) { e.MemberName = "  " }, ErrEmptyMemberName},
		{"zero amount", func(e *Expense) { e.Amount = 0 }, ErrInvalidAmount},
		{"negative amount", func(e *Expense) { e.Amount = -5 }, ErrInvalidAmount},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			e := valid
			tc.mutate(&e)
			if err := e.Validate(); !errors.Is(err, tc.wantErr) {
				t.Fatalf("got %v, want %v", err, tc.wantErr)
			}
		})
	}

	t.Run("unknown category", func(t *testing.T) {
		e := valid
		e.Category = "Gadgets"
		if err := e.Validate(); err == nil {
			t.Fatal("expected error for category outside the allowed set")
		}
	})
}

func TestValidateBudgetInput(t *testing.T) {
	if err := ValidateBudgetInput("2024-06", 5000); err != nil {
		t.Fatalf("valid budget rejected: %v", err)
	}
	if err := ValidateBudgetInput("2024-06", 0); err != nil {
		t.Fatalf("zero budget should be allowed: %v", err)
	}
	if err := ValidateBudgetInput("06-2024", 10); !errors.Is(err, ErrInvalidMonth) {
		t.Fatalf("got %v, want ErrInvalidMonth", err)
	}
	if err := ValidateBudgetInput("2024-06", -1); !errors.Is(err, ErrInvalidBudget) {
		t.Fatalf("got %v, want ErrInvalidBudget", err)
	}
}
