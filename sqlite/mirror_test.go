package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/etnz/spend"
	"github.com/google/go-cmp/cmp"
)

func sampleStore() *spend.Store {
	s := spend.NewStore()
	s.Add(spend.Expense{Date: "01-03-2025", Amount: 10.5, Category: "Food", Description: "bread"})
	s.Add(spend.Expense{Date: "02-03-2025", Amount: 3, Category: "Transport", Description: "bus"})
	s.Add(spend.Expense{Date: "15-03-2025", Amount: 4.5, Category: "Food", Description: "milk"})
	s.Add(spend.Expense{Date: "garbage", Amount: 100, Category: "Food"})
	return s
}

// write mirrors s into the database at path, then closes it.
func write(t *testing.T, path string, s *spend.Store) {
	t.Helper()
	db, err := Open(path)
	if err != nil {
		t.Fatalf("Open() error: %v", err)
	}
	defer db.Close()
	if err := db.Write(context.Background(), s); err != nil {
		t.Fatalf("Write() error: %v", err)
	}
}

func TestWriteReplaces(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "mirror", "spend.db")
	s := sampleStore()

	write(t, path, s)
	// A second write replaces the content and migrations are not replayed.
	if err := s.Delete(2); err != nil {
		t.Fatal(err)
	}
	write(t, path, s)

	db, err := Open(path)
	if err != nil {
		t.Fatalf("Open() error: %v", err)
	}
	defer db.Close()

	got, err := db.Expenses(ctx)
	if err != nil {
		t.Fatalf("Expenses() error: %v", err)
	}
	if diff := cmp.Diff(s.Expenses(), got); diff != "" {
		t.Errorf("Expenses() mismatch (-want +got):\n%s", diff)
	}
}

func TestTotals(t *testing.T) {
	ctx := context.Background()
	db, err := Open(filepath.Join(t.TempDir(), "spend.db"))
	if err != nil {
		t.Fatalf("Open() error: %v", err)
	}
	defer db.Close()

	if err := db.Write(ctx, sampleStore()); err != nil {
		t.Fatalf("Write() error: %v", err)
	}
	got, err := db.Totals(ctx, 20250301, 20250310)
	if err != nil {
		t.Fatalf("Totals() error: %v", err)
	}
	want := []Total{
		{Category: "Food", Amount: 10.5, Count: 1},
		{Category: "Transport", Amount: 3, Count: 1},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Totals() mismatch (-want +got):\n%s", diff)
	}
}
