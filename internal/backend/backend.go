// Package backend selects and constructs the tabular store
// implementation: the Google Sheets spreadsheet, an embedded SQLite
// database, or the in-memory store.
package backend

import (
	"kharcha/internal/config"
	"kharcha/internal/sheets"
)

// Type identifies a store implementation.
type Type string

const (
	SheetsBackend Type = "sheets"
	SQLiteBackend Type = "sqlite"
	MemoryBackend Type = "memory"
)

func (t Type) String() string { return string(t) }

// IsValid returns true if the backend type is valid.
func (t Type) IsValid() bool {
	switch t {
	case SheetsBackend, SQLiteBackend, MemoryBackend:
		return true
	default:
		return false
	}
}

// CleanupFunc releases backend resources at shutdown.
type CleanupFunc func() error

// Result carries the constructed store and its optional cleanup.
type Result struct {
	Store   sheets.Store
	Cleanup CleanupFunc
}

// Settings holds what the factory needs from the application config.
type Settings struct {
	Type Type

	// Google Sheets
	SpreadsheetID   string
	CredentialsJSON string
	CredentialsFile string
	ExpensesSheet   string
	BudgetsSheet    string

	// SQLite
	SQLiteDBPath string
}

// FromAppConfig maps the application config onto factory settings.
func FromAppConfig(cfg *config.Config) Settings {
	return Settings{
		Type:            Type(cfg.DataBackend),
		SpreadsheetID:   cfg.GoogleSpreadsheetID,
		CredentialsJSON: cfg.GoogleServiceAccountJSON,
		CredentialsFile: cfg.GoogleServiceAccountFile,
		ExpensesSheet:   cfg.ExpensesSheetName,
		BudgetsSheet:    cfg.BudgetsSheetName,
		SQLiteDBPath:    cfg.SQLiteDBPath,
	}
}
