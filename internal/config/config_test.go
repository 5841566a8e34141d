package config

import (
	"strings"
	"testing"
)

func validConfig() *Config {
	return &Config{
		Port:           "3000",
		FamilyPIN:      "1234",
		AdminPIN:       "9999",
		DataBackend:    "memory",
		SQLiteDBPath:   "./data/test.db",
		ArchiveDir:     "./archives",
		ArchiveMaxRows: 40000,
		ArchiveChunk:   30000,
	}
}

func TestValidateAcceptsDefaults(t *testing.T) {
	if err := validConfig().Validate(); err != nil {
		t.Fatalf("valid config rejected: %v", err)
	}
}

func TestValidatePort(t *testing.T) {
	for _, port := range []string{"", "abc", "0", "70000"} {
		c := validConfig()
		c.Port = port
		if err := c.Validate(); err == nil {
			t.Fatalf("port %q should fail validation", port)
		}
	}
}

func TestValidateBackend(t *testing.T) {
	c := validConfig()
	c.DataBackend = "postgres"
	if err := c.Validate(); err == nil {
		t.Fatal("unknown backend should fail validation")
	}
}

func TestValidateSheetsBackendNeedsCredentials(t *testing.T) {
	c := validConfig()
	c.DataBackend = "sheets"
	err := c.Validate()
	if err == nil {
		t.Fatal("sheets backend without spreadsheet ID should fail")
	}
	if !strings.Contains(err.Error(), "Spreadsheet ID") {
		t.Fatalf("unexpected error: %v", err)
	}

	c.GoogleSpreadsheetID = "sheet-id"
	if err := c.Validate(); err == nil {
		t.Fatal("sheets backend without credentials should fail")
	}

	c.GoogleServiceAccountJSON = `{"type":"service_account"}`
	if err := c.Validate(); err != nil {
		t.Fatalf("sheets backend with inline credentials rejected: %v", err)
	}
}

func TestValidateArchiveThresholds(t *testing.T) {
	c := validConfig()
	c.ArchiveChunk = 50000 // larger than the trigger threshold
	if err := c.Validate(); err == nil {
		t.Fatal("chunk above max rows should fail validation")
	}

	c = validConfig()
	c.ArchiveMaxRows = 0
	if err := c.Validate(); err == nil {
		t.Fatal("zero max rows should fail validation")
	}
}
