package runlog

import (
	"context"
	"path/filepath"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "history.db"))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestRecordAndRecent(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	base := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	runs := []Run{
		{ID: "run-1", Mode: "process", Folder: "/photos", StartedAt: base, Moved: 4, Failed: 1},
		{ID: "run-2", Mode: "gather", Folder: "/photos", StartedAt: base.Add(time.Hour), Moved: 5},
	}
	for _, run := range runs {
		if err := store.Record(ctx, run); err != nil {
			t.Fatal(err)
		}
	}

	recent, err := store.Recent(ctx, 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(recent) != 2 {
		t.Fatalf("expected 2 runs, got %d", len(recent))
	}
	// Newest first.
	if recent[0].ID != "run-2" || recent[1].ID != "run-1" {
		t.Fatalf("unexpected order: %s, %s", recent[0].ID, recent[1].ID)
	}
	if recent[1].Moved != 4 || recent[1].Failed != 1 {
		t.Fatalf("counts not round-tripped: %+v", recent[1])
	}
	if !recent[1].StartedAt.Equal(base) {
		t.Fatalf("started_at: got %v, want %v", recent[1].StartedAt, base)
	}
}

func TestRecentLimit(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		run := Run{
			ID:        string(rune('a' + i)),
			Mode:      "process",
			Folder:    "/photos",
			StartedAt: time.Now().UTC().Add(time.Duration(i) * time.Minute),
		}
		if err := store.Record(ctx, run); err != nil {
			t.Fatal(err)
		}
	}

	recent, err := store.Recent(ctx, 3)
	if err != nil {
		t.Fatal(err)
	}
	if len(recent) != 3 {
		t.Fatalf("limit not honored: got %d", len(recent))
	}
}

func TestReopenExistingDatabase(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.db")
	store, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := store.Record(context.Background(), Run{ID: "run-1", Mode: "process", Folder: "/p", StartedAt: time.Now().UTC()}); err != nil {
		t.Fatal(err)
	}
	if err := store.Close(); err != nil {
		t.Fatal(err)
	}

	reopened, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer reopened.Close()

	recent, err := reopened.Recent(context.Background(), 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(recent) != 1 {
		t.Fatalf("expected persisted run, got %d", len(recent))
	}
}
