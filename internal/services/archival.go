package services

import (
	"context"
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/sync/singleflight"

	"kharcha/internal/sheets"
)

const (
	DefaultMaxRows      = 40000
	DefaultArchiveChunk = 30000
)

// Archiver bounds the live expense log. Once the row count reaches
// maxRows it exports the oldest chunk rows to a timestamped CSV file
// and deletes them from the log. The chunk is deliberately smaller than
// the threshold so a run creates headroom instead of re-triggering on
// every following insert.
type Archiver struct {
	store   sheets.Store
	dir     string
	maxRows int
	chunk   int

	group singleflight.Group
	now   func() time.Time
}

func NewArchiver(store sheets.Store, dir string, maxRows, chunk int) *Archiver {
	if maxRows <= 0 {
		maxRows = DefaultMaxRows
	}
	if chunk <= 0 {
		chunk = DefaultArchiveChunk
	}
	return &Archiver{
		store:   store,
		dir:     dir,
		maxRows: maxRows,
		chunk:   chunk,
		now:     time.Now,
	}
}

// Trigger runs a check-and-archive pass in the background. It never
// blocks or fails the insert that caused it; errors are logged for
// operational visibility only. Concurrent triggers coalesce into one
// in-flight run.
func (a *Archiver) Trigger() {
	go func() {
		_, _, _ = a.group.Do("archive", func() (any, error) {
			if err := a.CheckAndArchive(context.Background()); err != nil {
				slog.Error("Archival run failed", "error", err)
			}
			return nil, nil
		})
	}()
}

// CheckAndArchive reads the live row count and, when the threshold is
// reached, exports the oldest chunk and purges it from the log.
func (a *Archiver) CheckAndArchive(ctx context.Context) error {
	expenses, err := a.store.ListExpenses(ctx)
	if err != nil {
		return fmt.Errorf("count live rows: %w", err)
	}
	count := len(expenses)
	slog.DebugContext(ctx, "Archival check", "live_rows", count, "max_rows", a.maxRows)
	if count < a.maxRows {
		return nil
	}

	slog.InfoContext(ctx, "Archival threshold reached", "live_rows", count, "chunk", a.chunk)
	// Oldest chunk data rows: native rows 2 .. chunk+1 (header is row 1).
	rows, err := a.store.RawSlice(ctx, 2, a.chunk+1)
	if err != nil {
		return fmt.Errorf("export slice: %w", err)
	}
	if len(rows) == 0 {
		slog.WarnContext(ctx, "No rows found to archive despite threshold")
		return nil
	}

	path, err := a.writeArchive(rows)
	if err != nil {
		return fmt.Errorf("write archive file: %w", err)
	}
	slog.InfoContext(ctx, "Archive file written", "path", path, "rows", len(rows))

	// Only after the file is durable do the rows leave the live log.
	if err := a.store.DeleteExpenseRows(ctx, 0, len(rows)); err != nil {
		return fmt.Errorf("purge archived rows: %w", err)
	}
	slog.InfoContext(ctx, "Archival complete", "archived_rows", len(rows))
	return nil
}

// writeArchive persists the exported rows with a header row prepended.
// The file is the only remaining copy of that data once the purge runs,
// so it carries its own column names.
func (a *Archiver) writeArchive(rows [][]string) (string, error) {
	if err := os.MkdirAll(a.dir, 0755); err != nil {
		return "", fmt.Errorf("create archive directory: %w", err)
	}
	ts := strings.NewReplacer(":", "-", ".", "-").
		Replace(a.now().UTC().Format("2006-01-02T15:04:05.000Z"))
	path := filepath.Join(a.dir, fmt.Sprintf("archive_expenses_%s.csv", ts))

	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	w := csv.NewWriter(f)
	if err := w.Write(sheets.ExpenseHeader); err != nil {
		f.Close()
		return "", err
	}
	if err := w.WriteAll(rows); err != nil {
		f.Close()
		return "", err
	}
	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		return "", err
	}
	if err := f.Close(); err != nil {
		return "", err
	}
	return path, nil
}
