package core

import "sort"

// DailyTotal is one point of the per-day spending series.
type DailyTotal struct {
	Date   string  `json:"date"`
	Amount float64 `json:"amount"`
}

// MonthSummary is the aggregation of the expense log for one month.
type MonthSummary struct {
	Month             string
	TotalSpent        float64
	CategoryBreakdown map[string]float64
	MemberBreakdown   map[string]float64
	DailyTotals       []DailyTotal
}

// Summarize computes the monthly totals and breakdowns from a full scan
// of the expense log. It filters on exact month-key equality, never on
// date ranges. A month with no expenses yields zero totals and empty
// breakdowns. Pure; no I/O.
func Summarize(expenses []Expense, month string) MonthSummary {
	s := MonthSummary{
		Month:             month,
		CategoryBreakdown: map[string]float64{},
		MemberBreakdown:   map[string]float64{},
	}
	daily := map[string]float64{}
	for _, e := range expenses {
		if e.Month != month {
			continue
		}
		cat := e.Category
		if cat == "" {
			cat = "Other"
		}
		member := e.MemberName
		if member == "" {
			member = "Unknown"
		}
		s.TotalSpent += e.Amount
		s.CategoryBreakdown[cat] += e.Amount
		s.MemberBreakdown[member] += e.Amount
		if e.Date != "" {
			daily[e.Date] += e.Amount
		}
	}
	dates := make([]string, 0, len(daily))
	for d := range daily {
		dates = append(dates, d)
	}
	// Calendar order, not string order: "2/1/2024" sorts before
	// "10/1/2024". Unparseable dates sink to the end.
	sort.Slice(dates, func(i, j int) bool {
		ti, erri := ParseDate(dates[i])
		tj, errj := ParseDate(dates[j])
		if erri != nil || errj != nil {
			if erri == nil {
				return true
			}
			if errj == nil {
				return false
			}
			return dates[i] < dates[j]
		}
		return ti.Before(tj)
	})
	for _, d := range dates {
		s.DailyTotals = append(s.DailyTotals, DailyTotal{Date: d, Amount: daily[d]})
	}
	return s
}
