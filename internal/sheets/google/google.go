// Package google implements the tabular store against a real Google
// Sheets spreadsheet using a service account. Two named sheets hold the
// tables: Expenses (append-only log) and MonthlyBudgets (one row per
// month).
package google

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"kharcha/internal/core"
	"kharcha/internal/sheets"

	goption "google.golang.org/api/option"
	gsheet "google.golang.org/api/sheets/v4"
)

type Config struct {
	SpreadsheetID   string
	CredentialsJSON string // inline service account JSON
	CredentialsFile string // or a path to it
	ExpensesSheet   string // default "Expenses"
	BudgetsSheet    string // default "MonthlyBudgets"
}

type Client struct {
	svc           *gsheet.Service
	spreadsheetID string
	expensesSheet string
	budgetsSheet  string
}

var _ sheets.Store = (*Client)(nil)

func New(ctx context.Context, cfg Config) (*Client, error) {
	if strings.TrimSpace(cfg.SpreadsheetID) == "" {
		return nil, errors.New("missing spreadsheet ID")
	}
	credentials, err := resolveCredentials(cfg)
	if err != nil {
		return nil, err
	}
	svc, err := gsheet.NewService(ctx,
		goption.WithCredentialsJSON(credentials),
		goption.WithScopes(gsheet.SpreadsheetsScope))
	if err != nil {
		return nil, fmt.Errorf("create sheets service: %w", err)
	}
	expensesSheet := cfg.ExpensesSheet
	if expensesSheet == "" {
		expensesSheet = "Expenses"
	}
	budgetsSheet := cfg.BudgetsSheet
	if budgetsSheet == "" {
		budgetsSheet = "MonthlyBudgets"
	}
	return &Client{
		svc:           svc,
		spreadsheetID: cfg.SpreadsheetID,
		expensesSheet: expensesSheet,
		budgetsSheet:  budgetsSheet,
	}, nil
}

func resolveCredentials(cfg Config) ([]byte, error) {
	if j := strings.TrimSpace(cfg.CredentialsJSON); j != "" {
		return []byte(j), nil
	}
	if f := strings.TrimSpace(cfg.CredentialsFile); f != "" {
		b, err := os.ReadFile(f)
		if err != nil {
			return nil, fmt.Errorf("read service account file: %w", err)
		}
		return b, nil
	}
	return nil, errors.New("missing service account credentials")
}

// storeErr wraps a remote failure so callers can classify it.
func storeErr(op string, err error) error {
	return fmt.Errorf("%w: %s: %v", sheets.ErrStoreUnavailable, op, err)
}

func (c *Client) AppendExpense(ctx context.Context, e core.Expense) error {
	rng := fmt.Sprintf("%s!A:H", c.expensesSheet)
	vr := &gsheet.ValueRange{Values: [][]any{expenseValues(e)}}
	_, err := c.svc.Spreadsheets.Values.Append(c.spreadsheetID, rng, vr).
		ValueInputOption("USER_ENTERED").Context(ctx).Do()
	if err != nil {
		return storeErr("append expense", err)
	}
	slog.InfoContext(ctx, "Expense appended to sheet",
		"sheet", c.expensesSheet, "id", e.ID, "month", e.Month, "amount", e.Amount)
	return nil
}

func (c *Client) ListExpenses(ctx context.Context) ([]core.Expense, error) {
	rng := fmt.Sprintf("%s!A2:H", c.expensesSheet)
	resp, err := c.svc.Spreadsheets.Values.Get(c.spreadsheetID, rng).Context(ctx).Do()
	if err != nil {
		return nil, storeErr("list expenses", err)
	}
	return expensesFromValues(resp.Values), nil
}

func (c *Client) ListBudgets(ctx context.Context) ([]core.Budget, error) {
	rng := fmt.Sprintf("%s!A2:E", c.budgetsSheet)
	resp, err := c.svc.Spreadsheets.Values.Get(c.spreadsheetID, rng).Context(ctx).Do()
	if err != nil {
		return nil, storeErr("list budgets", err)
	}
	return budgetsFromValues(resp.Values), nil
}

// UpsertBudget re-reads the budget table to locate the row for the
// month immediately before writing. Positions shift when the archiver
// deletes rows elsewhere in the spreadsheet, so a cached index is never
// trusted across calls.
func (c *Client) UpsertBudget(ctx context.Context, b core.Budget) error {
	budgets, err := c.ListBudgets(ctx)
	if err != nil {
		return err
	}
	values := [][]any{budgetValues(b)}
	for i, existing := range budgets {
		if existing.Month == b.Month {
			rowNumber := i + 2 // header is row 1
			rng := fmt.Sprintf("%s!A%d:E%d", c.budgetsSheet, rowNumber, rowNumber)
			_, err := c.svc.Spreadsheets.Values.Update(c.spreadsheetID, rng, &gsheet.ValueRange{Values: values}).
				ValueInputOption("USER_ENTERED").Context(ctx).Do()
			if err != nil {
				return storeErr("update budget row", err)
			}
			return nil
		}
	}
	rng := fmt.Sprintf("%s!A:E", c.budgetsSheet)
	_, err = c.svc.Spreadsheets.Values.Append(c.spreadsheetID, rng, &gsheet.ValueRange{Values: values}).
		ValueInputOption("USER_ENTERED").Context(ctx).Do()
	if err != nil {
		return storeErr("append budget row", err)
	}
	return nil
}

func (c *Client) RawSlice(ctx context.Context, fromRow, toRow int) ([][]string, error) {
	rng := fmt.Sprintf("%s!A%d:H%d", c.expensesSheet, fromRow, toRow)
	resp, err := c.svc.Spreadsheets.Values.Get(c.spreadsheetID, rng).Context(ctx).Do()
	if err != nil {
		return nil, storeErr("read raw slice", err)
	}
	out := make([][]string, 0, len(resp.Values))
	for _, row := range resp.Values {
		out = append(out, toStrings(row))
	}
	return out, nil
}

// DeleteExpenseRows removes a contiguous range of data rows. Indices
// are 0-based over data rows; the grid index adds one for the header.
func (c *Client) DeleteExpenseRows(ctx context.Context, fromIndex, toIndexExclusive int) error {
	sheetID, err := c.sheetIDByTitle(ctx, c.expensesSheet)
	if err != nil {
		return err
	}
	req := &gsheet.BatchUpdateSpreadsheetRequest{
		Requests: []*gsheet.Request{{
			DeleteDimension: &gsheet.DeleteDimensionRequest{
				Range: &gsheet.DimensionRange{
					SheetId:    sheetID,
					Dimension:  "ROWS",
					StartIndex: int64(fromIndex + 1),
					EndIndex:   int64(toIndexExclusive + 1),
				},
			},
		}},
	}
	if _, err := c.svc.Spreadsheets.BatchUpdate(c.spreadsheetID, req).Context(ctx).Do(); err != nil {
		return storeErr("delete expense rows", err)
	}
	slog.InfoContext(ctx, "Deleted expense rows from sheet",
		"sheet", c.expensesSheet, "from", fromIndex, "to", toIndexExclusive)
	return nil
}

func (c *Client) sheetIDByTitle(ctx context.Context, title string) (int64, error) {
	meta, err := c.svc.Spreadsheets.Get(c.spreadsheetID).Context(ctx).Do()
	if err != nil {
		return 0, storeErr("read spreadsheet metadata", err)
	}
	for _, s := range meta.Sheets {
		if s.Properties != nil && s.Properties.Title == title {
			return s.Properties.SheetId, nil
		}
	}
	return 0, storeErr("resolve sheet id", fmt.Errorf("no sheet titled %q", title))
}

func expenseValues(e core.Expense) []any {
	return []any{e.ID, e.Date, e.MemberName, e.Category, e.Description, e.Amount, e.Month, e.CreatedAt}
}

func budgetValues(b core.Budget) []any {
	return []any{b.Month, b.TotalBudget, b.TotalSpent, b.RemainingBudget, b.LastUpdated}
}
