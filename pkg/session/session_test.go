package session

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/deckforge/deckforge/pkg/spec"
)

func TestNewSession(t *testing.T) {
	sess := New("renewable energy", DefaultTTL)

	if sess.ID == "" {
		t.Error("expected non-empty ID")
	}
	if sess.Topic != "renewable energy" {
		t.Errorf("Topic = %q, want %q", sess.Topic, "renewable energy")
	}
	if sess.IsExpired() {
		t.Error("fresh session should not be expired")
	}

	other := New("renewable energy", DefaultTTL)
	if other.ID == sess.ID {
		t.Error("two sessions should get distinct IDs")
	}
}

func TestSessionIsExpired(t *testing.T) {
	sess := New("topic", -time.Hour)
	if !sess.IsExpired() {
		t.Error("session with past expiry should be expired")
	}
}

func TestSessionAppend(t *testing.T) {
	sess := New("topic", DefaultTTL)
	before := sess.UpdatedAt

	time.Sleep(time.Millisecond)
	sess.Append("user", "add a slide on costs")
	sess.Append("assistant", "done")

	if len(sess.Messages) != 2 {
		t.Fatalf("len(Messages) = %d, want 2", len(sess.Messages))
	}
	if sess.Messages[0].Role != "user" || sess.Messages[1].Role != "assistant" {
		t.Errorf("unexpected roles: %q, %q", sess.Messages[0].Role, sess.Messages[1].Role)
	}
	if !sess.UpdatedAt.After(before) {
		t.Error("Append should bump UpdatedAt")
	}
	if len(sess.History()) != 2 {
		t.Errorf("len(History()) = %d, want 2", len(sess.History()))
	}
}

func TestSessionSetOutline(t *testing.T) {
	sess := New("topic", DefaultTTL)
	sess.SetOutline(spec.Outline{
		Title:  "Solar Power",
		Slides: []spec.Slide{{Title: "Basics", Items: []string{"photons in, volts out"}}},
	})

	if sess.Outline == nil {
		t.Fatal("expected outline to be set")
	}
	if sess.Outline.Title != "Solar Power" {
		t.Errorf("Outline.Title = %q, want %q", sess.Outline.Title, "Solar Power")
	}
}

func TestFileStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	store, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}

	sess := New("machine learning basics", DefaultTTL)
	sess.Append("user", "five slides please")
	sess.SetOutline(spec.Outline{Title: "ML Basics", Slides: []spec.Slide{{Title: "Intro"}}})

	if err := store.Set(ctx, sess); err != nil {
		t.Fatalf("Set: %v", err)
	}

	got, err := store.Get(ctx, sess.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got == nil {
		t.Fatal("expected session, got nil")
	}
	if got.Topic != sess.Topic {
		t.Errorf("Topic = %q, want %q", got.Topic, sess.Topic)
	}
	if len(got.Messages) != 1 {
		t.Errorf("len(Messages) = %d, want 1", len(got.Messages))
	}
	if got.Outline == nil || got.Outline.Title != "ML Basics" {
		t.Errorf("outline not round-tripped: %+v", got.Outline)
	}
}

func TestFileStoreGetMissing(t *testing.T) {
	ctx := context.Background()
	store, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}

	got, err := store.Get(ctx, "no-such-session")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got != nil {
		t.Errorf("expected nil for missing session, got %+v", got)
	}
}

func TestFileStoreExpiredSessionDeleted(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	store, err := NewFileStore(dir)
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}

	sess := New("old topic", -time.Hour)
	if err := store.Set(ctx, sess); err != nil {
		t.Fatalf("Set: %v", err)
	}

	got, err := store.Get(ctx, sess.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got != nil {
		t.Error("expected expired session to read as missing")
	}
	if _, err := os.Stat(filepath.Join(dir, sess.ID+".json")); !os.IsNotExist(err) {
		t.Error("expected expired session file to be removed")
	}
}

func TestFileStoreDelete(t *testing.T) {
	ctx := context.Background()
	store, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}

	sess := New("topic", DefaultTTL)
	if err := store.Set(ctx, sess); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := store.Delete(ctx, sess.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	got, err := store.Get(ctx, sess.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got != nil {
		t.Error("expected session to be gone after delete")
	}

	// Deleting a missing session is not an error.
	if err := store.Delete(ctx, "no-such-session"); err != nil {
		t.Errorf("Delete missing: %v", err)
	}
}

func TestFileStoreListNewestFirst(t *testing.T) {
	ctx := context.Background()
	store, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}

	older := New("first topic", DefaultTTL)
	older.UpdatedAt = time.Now().Add(-time.Hour)
	newer := New("second topic", DefaultTTL)
	expired := New("stale topic", -time.Hour)

	for _, sess := range []*Session{older, newer, expired} {
		if err := store.Set(ctx, sess); err != nil {
			t.Fatalf("Set: %v", err)
		}
	}

	sessions, err := store.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(sessions) != 2 {
		t.Fatalf("len(sessions) = %d, want 2", len(sessions))
	}
	if sessions[0].ID != newer.ID {
		t.Errorf("sessions[0].ID = %q, want newest %q", sessions[0].ID, newer.ID)
	}
	if sessions[1].ID != older.ID {
		t.Errorf("sessions[1].ID = %q, want %q", sessions[1].ID, older.ID)
	}

	latest, err := store.Latest(ctx)
	if err != nil {
		t.Fatalf("Latest: %v", err)
	}
	if latest == nil || latest.ID != newer.ID {
		t.Errorf("Latest = %+v, want session %q", latest, newer.ID)
	}
}

func TestFileStoreCleanup(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	store, err := NewFileStore(dir)
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}

	live := New("live topic", DefaultTTL)
	stale := New("stale topic", -time.Minute)
	for _, sess := range []*Session{live, stale} {
		if err := store.Set(ctx, sess); err != nil {
			t.Fatalf("Set: %v", err)
		}
	}

	// Garbage that should be ignored, not removed.
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("keep"), 0600); err != nil {
		t.Fatal(err)
	}

	if err := store.Cleanup(ctx); err != nil {
		t.Fatalf("Cleanup: %v", err)
	}

	if _, err := os.Stat(filepath.Join(dir, live.ID+".json")); err != nil {
		t.Errorf("live session should survive cleanup: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, stale.ID+".json")); !os.IsNotExist(err) {
		t.Error("stale session should be removed by cleanup")
	}
	if _, err := os.Stat(filepath.Join(dir, "notes.txt")); err != nil {
		t.Errorf("non-session file should be untouched: %v", err)
	}
}
