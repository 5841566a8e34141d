package services

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"kharcha/internal/core"
	"kharcha/internal/sheets"
	"kharcha/internal/sheets/memory"
)

func seedStore(t *testing.T, store *memory.Store, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		e := core.Expense{
			ID:         fmt.Sprintf("id-%d", i),
			Date:       "01/06/2024",
			MemberName: "A",
			Category:   "Food",
			Amount:     float64(i + 1),
			Month:      "2024-06",
			CreatedAt:  "2024-06-01T00:00:00Z",
		}
		if err := store.AppendExpense(context.Background(), e); err != nil {
			t.Fatal(err)
		}
	}
}

func archiveFiles(t *testing.T, dir string) []string {
	t.Helper()
	matches, err := filepath.Glob(filepath.Join(dir, "archive_expenses_*.csv"))
	if err != nil {
		t.Fatal(err)
	}
	return matches
}

func TestBelowThresholdIsNoOp(t *testing.T) {
	store := memory.New()
	seedStore(t, store, 9)
	dir := t.TempDir()
	a := NewArchiver(store, dir, 10, 6)

	if err := a.CheckAndArchive(context.Background()); err != nil {
		t.Fatal(err)
	}
	if files := archiveFiles(t, dir); len(files) != 0 {
		t.Fatalf("no archive expected below threshold, found %v", files)
	}
	live, _ := store.ListExpenses(context.Background())
	if len(live) != 9 {
		t.Fatalf("live rows must be untouched, got %d", len(live))
	}
}

func TestAtThresholdArchivesExactlyChunk(t *testing.T) {
	store := memory.New()
	seedStore(t, store, 10)
	dir := t.TempDir()
	a := NewArchiver(store, dir, 10, 6)

	if err := a.CheckAndArchive(context.Background()); err != nil {
		t.Fatal(err)
	}
	files := archiveFiles(t, dir)
	if len(files) != 1 {
		t.Fatalf("expected one archive file, found %v", files)
	}
	live, _ := store.ListExpenses(context.Background())
	if len(live) != 4 {
		t.Fatalf("live rows after archival: got %d, want 4", len(live))
	}
	// The oldest rows left the log; the survivors are the newest.
	if live[0].ID != "id-6" {
		t.Fatalf("wrong rows purged, oldest survivor: %+v", live[0])
	}
}

func TestArchiveRoundTrip(t *testing.T) {
	store := memory.New()
	seedStore(t, store, 10)
	dir := t.TempDir()
	a := NewArchiver(store, dir, 10, 6)

	want, err := store.RawSlice(context.Background(), 2, 7)
	if err != nil {
		t.Fatal(err)
	}
	if err := a.CheckAndArchive(context.Background()); err != nil {
		t.Fatal(err)
	}

	files := archiveFiles(t, dir)
	if len(files) != 1 {
		t.Fatalf("expected one archive file, found %v", files)
	}
	f, err := os.Open(files[0])
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(records[0], sheets.ExpenseHeader) {
		t.Fatalf("archive header: got %v", records[0])
	}
	if !reflect.DeepEqual(records[1:], want) {
		t.Fatalf("archive rows differ from exported slice:\n got %v\nwant %v", records[1:], want)
	}
}

func TestArchiveFileNamesAreTimestamped(t *testing.T) {
	store := memory.New()
	seedStore(t, store, 2)
	dir := t.TempDir()
	a := NewArchiver(store, dir, 2, 1)
	a.now = func() time.Time { return time.Date(2024, 6, 15, 10, 30, 0, 0, time.UTC) }

	if err := a.CheckAndArchive(context.Background()); err != nil {
		t.Fatal(err)
	}
	files := archiveFiles(t, dir)
	if len(files) != 1 {
		t.Fatalf("expected one archive file, found %v", files)
	}
	want := "archive_expenses_2024-06-15T10-30-00-000Z.csv"
	if filepath.Base(files[0]) != want {
		t.Fatalf("archive name: got %s, want %s", filepath.Base(files[0]), want)
	}
}

func TestDefaultsApplied(t *testing.T) {
	a := NewArchiver(memory.New(), t.TempDir(), 0, 0)
	if a.maxRows != DefaultMaxRows || a.chunk != DefaultArchiveChunk {
		t.Fatalf("defaults: maxRows=%d chunk=%d", a.maxRows, a.chunk)
	}
}
