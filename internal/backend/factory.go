package backend

import (
	"context"
	"fmt"
	"log/slog"

	gsheet "kharcha/internal/sheets/google"
	"kharcha/internal/sheets/memory"
	"kharcha/internal/storage"
)

// Factory creates stores based on configuration.
type Factory struct {
	logger *slog.Logger
}

func NewFactory(logger *slog.Logger) *Factory {
	if logger == nil {
		logger = slog.Default()
	}
	return &Factory{logger: logger}
}

func (f *Factory) Create(ctx context.Context, settings Settings) (*Result, error) {
	if !settings.Type.IsValid() {
		return nil, fmt.Errorf("invalid backend type: %s", settings.Type)
	}

	switch settings.Type {
	case SheetsBackend:
		cli, err := gsheet.New(ctx, gsheet.Config{
			SpreadsheetID:   settings.SpreadsheetID,
			CredentialsJSON: settings.CredentialsJSON,
			CredentialsFile: settings.CredentialsFile,
			ExpensesSheet:   settings.ExpensesSheet,
			BudgetsSheet:    settings.BudgetsSheet,
		})
		if err != nil {
			return nil, fmt.Errorf("initialize Google Sheets store: %w", err)
		}
		f.logger.Info("Initialized Google Sheets backend", "spreadsheet_id", settings.SpreadsheetID)
		return &Result{Store: cli}, nil

	case SQLiteBackend:
		repo, err := storage.NewRepository(settings.SQLiteDBPath)
		if err != nil {
			return nil, fmt.Errorf("initialize SQLite store: %w", err)
		}
		f.logger.Info("Initialized SQLite backend", "db_path", settings.SQLiteDBPath)
		return &Result{Store: repo, Cleanup: repo.Close}, nil

	default:
		f.logger.Info("Initialized memory backend")
		return &Result{Store: memory.New()}, nil
	}
}
