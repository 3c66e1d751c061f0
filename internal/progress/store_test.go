package progress

import (
	"context"
	"errors"
	"testing"

	"prioritiser-backend/internal/assessment"
)

func TestFileStoreRoundTrip(t *testing.T) {
	store := NewFileStore(t.TempDir())
	ctx := context.Background()

	state := State{
		Answers: assessment.AnswersMap{"foundations_tracking": "b"},
		Step:    2,
	}
	if err := store.Save(ctx, "client-1", state); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := store.Load(ctx, "client-1")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.Step != 2 {
		t.Fatalf("expected step 2, got %d", loaded.Step)
	}
	if loaded.Answers["foundations_tracking"] != "b" {
		t.Fatalf("expected saved answer, got %v", loaded.Answers)
	}
}

func TestFileStoreLastWriteWins(t *testing.T) {
	store := NewFileStore(t.TempDir())
	ctx := context.Background()

	_ = store.Save(ctx, "client-1", State{Answers: assessment.AnswersMap{"website_speed": "a"}, Step: 1})
	_ = store.Save(ctx, "client-1", State{Answers: assessment.AnswersMap{"website_speed": "d"}, Step: 3})

	loaded, err := store.Load(ctx, "client-1")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.Step != 3 || loaded.Answers["website_speed"] != "d" {
		t.Fatalf("expected last write to win, got %+v", loaded)
	}
}

func TestFileStoreClear(t *testing.T) {
	store := NewFileStore(t.TempDir())
	ctx := context.Background()

	_ = store.Save(ctx, "client-1", State{Step: 1})
	if err := store.Clear(ctx, "client-1"); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if _, err := store.Load(ctx, "client-1"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound after clear, got %v", err)
	}

	// Clearing absent progress is not an error.
	if err := store.Clear(ctx, "client-1"); err != nil {
		t.Fatalf("Clear absent: %v", err)
	}
}

func TestFileStoreRejectsUnsafeClientIDs(t *testing.T) {
	store := NewFileStore(t.TempDir())
	ctx := context.Background()

	for _, id := range []string{"", "../../etc/passwd", "a/b", "id with spaces"} {
		if err := store.Save(ctx, id, State{}); !errors.Is(err, ErrInvalidClientID) {
			t.Fatalf("expected ErrInvalidClientID for %q, got %v", id, err)
		}
	}
}
