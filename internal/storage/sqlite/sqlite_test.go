package sqlite

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/mmynk/classboard/internal/storage"
)

func TestSQLiteStore(t *testing.T) {
	// Create temp directory for test database
	tempDir, err := os.MkdirTemp("", "classboard-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tempDir)

	dbPath := filepath.Join(tempDir, "nested", "test.db")
	store, err := New(dbPath)
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	defer store.Close()

	ctx := context.Background()

	t.Run("Get missing key returns ErrNotFound", func(t *testing.T) {
		_, err := store.Get(ctx, "classHelperData")
		if !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("Expected ErrNotFound, got %v", err)
		}
	})

	t.Run("Put then Get round-trips the value", func(t *testing.T) {
		value := []byte(`{"classCount":3}`)
		if err := store.Put(ctx, "classHelperData", value); err != nil {
			t.Fatalf("Put failed: %v", err)
		}

		got, err := store.Get(ctx, "classHelperData")
		if err != nil {
			t.Fatalf("Get failed: %v", err)
		}
		if string(got) != string(value) {
			t.Errorf("Expected %s, got %s", value, got)
		}

		ts, err := store.UpdatedAt(ctx, "classHelperData")
		if err != nil {
			t.Fatalf("UpdatedAt failed: %v", err)
		}
		if ts == 0 {
			t.Error("Expected updated_at to be set")
		}
	})

	t.Run("Put replaces existing value", func(t *testing.T) {
		if err := store.Put(ctx, "k", []byte("one")); err != nil {
			t.Fatalf("Put failed: %v", err)
		}
		if err := store.Put(ctx, "k", []byte("two")); err != nil {
			t.Fatalf("Put failed: %v", err)
		}

		got, err := store.Get(ctx, "k")
		if err != nil {
			t.Fatalf("Get failed: %v", err)
		}
		if string(got) != "two" {
			t.Errorf("Expected two, got %s", got)
		}
	})

	t.Run("Delete removes key and tolerates missing keys", func(t *testing.T) {
		if err := store.Delete(ctx, "k"); err != nil {
			t.Fatalf("Delete failed: %v", err)
		}
		if _, err := store.Get(ctx, "k"); !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("Expected ErrNotFound after delete, got %v", err)
		}
		if err := store.Delete(ctx, "never-there"); err != nil {
			t.Errorf("Delete of missing key failed: %v", err)
		}
	})

	t.Run("Data survives reopening", func(t *testing.T) {
		if err := store.Put(ctx, "persist", []byte("yes")); err != nil {
			t.Fatalf("Put failed: %v", err)
		}

		reopened, err := New(dbPath)
		if err != nil {
			t.Fatalf("Failed to reopen store: %v", err)
		}
		defer reopened.Close()

		got, err := reopened.Get(ctx, "persist")
		if err != nil {
			t.Fatalf("Get after reopen failed: %v", err)
		}
		if string(got) != "yes" {
			t.Errorf("Expected yes, got %s", got)
		}
	})
}
