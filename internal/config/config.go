package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

type Config struct {
	// HTTP Server
	Port string

	// Access control
	FamilyPIN string
	AdminPIN  string

	// Backend selection
	DataBackend string

	// Google Sheets
	GoogleSpreadsheetID      string
	GoogleServiceAccountJSON string
	GoogleServiceAccountFile string
	ExpensesSheetName        string
	BudgetsSheetName         string

	// SQLite
	SQLiteDBPath string

	// Archival
	ArchiveDir     string
	ArchiveMaxRows int
	ArchiveChunk   int
}

func Load() *Config {
	return &Config{
		Port:      getEnv("PORT", "3000"),
		FamilyPIN: getEnv("FAMILY_PIN", ""),
		AdminPIN:  getEnv("ADMIN_PIN", ""),

		DataBackend: getEnv("DATA_BACKEND", "memory"),

		GoogleSpreadsheetID:      getEnv("GOOGLE_SPREADSHEET_ID", ""),
		GoogleServiceAccountJSON: getEnv("GOOGLE_SERVICE_ACCOUNT_JSON", ""),
		GoogleServiceAccountFile: getEnv("GOOGLE_SERVICE_ACCOUNT_FILE", ""),
		ExpensesSheetName:        getEnv("EXPENSES_SHEET_NAME", "Expenses"),
		BudgetsSheetName:         getEnv("BUDGETS_SHEET_NAME", "MonthlyBudgets"),

		SQLiteDBPath: getEnv("SQLITE_DB_PATH", "./data/kharcha.db"),

		ArchiveDir:     getEnv("ARCHIVE_DIR", "./archives"),
		ArchiveMaxRows: getEnvInt("ARCHIVE_MAX_ROWS", 40000),
		ArchiveChunk:   getEnvInt("ARCHIVE_CHUNK", 30000),
	}
}

// Validate validates the configuration and returns an error if invalid
func (c *Config) Validate() error {
	var errors []string

	if port, err := strconv.Atoi(c.Port); err != nil {
		errors = append(errors, fmt.Sprintf("invalid port '%s': must be a number", c.Port))
	} else if port < 1 || port > 65535 {
		errors = append(errors, fmt.Sprintf("invalid port %d: must be between 1 and 65535", port))
	}

	validBackends := []string{"memory", "sheets", "sqlite"}
	isValidBackend := false
	for _, backend := range validBackends {
		if c.DataBackend == backend {
			isValidBackend = true
			break
		}
	}
	if !isValidBackend {
		errors = append(errors, fmt.Sprintf("invalid data backend '%s': must be one of %v", c.DataBackend, validBackends))
	}

	if c.DataBackend == "sheets" {
		if c.GoogleSpreadsheetID == "" {
			errors = append(errors, "Google Spreadsheet ID is required when using sheets backend")
		}
		if c.GoogleServiceAccountJSON == "" && c.GoogleServiceAccountFile == "" {
			errors = append(errors, "either GOOGLE_SERVICE_ACCOUNT_JSON or GOOGLE_SERVICE_ACCOUNT_FILE must be provided for sheets backend")
		}
		if c.GoogleServiceAccountFile != "" {
			if _, err := os.Stat(c.GoogleServiceAccountFile); os.IsNotExist(err) {
				errors = append(errors, fmt.Sprintf("Google service account file does not exist: %s", c.GoogleServiceAccountFile))
			}
		}
	}

	if c.DataBackend == "sqlite" && c.SQLiteDBPath == "" {
		errors = append(errors, "SQLite database path cannot be empty when using sqlite backend")
	}

	if c.ArchiveMaxRows < 1 {
		errors = append(errors, fmt.Sprintf("invalid archive max rows %d: must be at least 1", c.ArchiveMaxRows))
	}
	if c.ArchiveChunk < 1 {
		errors = append(errors, fmt.Sprintf("invalid archive chunk %d: must be at least 1", c.ArchiveChunk))
	}
	// The chunk must stay below the trigger threshold so each run
	// creates headroom instead of re-triggering on the next insert.
	if c.ArchiveChunk >= 1 && c.ArchiveMaxRows >= 1 && c.ArchiveChunk > c.ArchiveMaxRows {
		errors = append(errors, fmt.Sprintf("archive chunk %d must not exceed archive max rows %d", c.ArchiveChunk, c.ArchiveMaxRows))
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(errors, "\n- "))
	}

	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return defaultValue
}
