package core

import (
	"errors"
	"fmt"
	"strings"
)

// Categories is the closed set of expense categories. Anything else is
// rejected at the edge; rows read back with an empty category aggregate
// under "Other".
var Categories = []string{
	"Food",
	"Transport",
	"Entertainment",
	"Utilities",
	"Healthcare",
	"Education",
	"Shopping",
	"Other",
}

type (
	// Expense is one immutable row of the expense log. Rows are never
	// updated in place; the only deletion is the bulk purge performed
	// by the archiver.
	Expense struct {
		ID          string  `json:"id"`
		Date        string  `json:"date"` // DD/MM/YYYY
		MemberName  string  `json:"memberName"`
		Category    string  `json:"category"`
		Description string  `json:"description"`
		Amount      float64 `json:"amount"`
		Month       string  `json:"month"` // YYYY-MM, always derived from Date
		CreatedAt   string  `json:"createdAt"` // RFC3339
	}

	// Budget is the per-month row of the budget table. TotalSpent and
	// RemainingBudget are an eagerly maintained cache over the expense
	// log, never independently authoritative.
	Budget struct {
		Month           string  `json:"month"`
		TotalBudget     float64 `json:"totalBudget"`
		TotalSpent      float64 `json:"totalSpent"`
		RemainingBudget float64 `json:"remainingBudget"`
		LastUpdated     string  `json:"lastUpdated"`
	}
)

var (
	ErrInvalidDate     = errors.New("invalid date, expected DD/MM/YYYY")
	ErrInvalidMonth    = errors.New("invalid month, expected YYYY-MM")
	ErrInvalidAmount   = errors.New("amount must be a positive number")
	ErrInvalidBudget   = errors.New("total budget must be a non-negative number")
	ErrEmptyMemberName = errors.New("missing or empty member name")
)

// ValidCategory reports whether c is one of the allowed categories.
func ValidCategory(c string) bool {
	for _, v := range Categories {
		if v == c {
			return true
		}
	}
	return false
}

func (e Expense) Validate() error {
	if !IsValidDate(e.Date) {
		return ErrInvalidDate
	}
	if strings.TrimSpace(e.MemberName) == "" {
		return ErrEmptyMemberName
	}
	if !ValidCategory(e.Category) {
		return fmt.Errorf("invalid category %q, allowed: %s", e.Category, strings.Join(Categories, ", "))
	}
	if e.Amount <= 0 {
		return ErrInvalidAmount
	}
	return nil
}

// ValidateBudgetInput checks the caller-supplied fields of a budget edit.
func ValidateBudgetInput(month string, totalBudget float64) error {
	if !IsValidMonth(month) {
		return ErrInvalidMonth
	}
	if totalBudget < 0 {
		return ErrInvalidBudget
	}
	return nil
}

// ZeroBudget returns the default record served when no row exists for a
// month. Absence is never an error.
func ZeroBudget(month string) Budget {
	return Budget{Month: month}
}
