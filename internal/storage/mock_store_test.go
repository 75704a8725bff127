package storage

import (
	"context"
	"errors"
	"testing"
)

func TestMockStoreBasicOperations(t *testing.T) {
	store := NewMockStore(map[string]string{"guide/setup.md": "# Setup\n"})
	ctx := context.Background()

	ok, _ := store.Exists(ctx, "guide/setup.md")
	if !ok {
		t.Fatal("seeded file should exist")
	}
	if err := store.Write(ctx, "guide/_index.md", []byte("# guide\n")); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	if err := store.Write(ctx, "_index.md", []byte("# .\n")); err != nil {
		t.Fatalf("root write failed: %v", err)
	}
	if err := store.Write(ctx, "other/_index.md", nil); err == nil {
		t.Fatal("expected error for missing directory")
	}

	data, err := store.Read(ctx, "guide/_index.md")
	if err != nil || string(data) != "# guide\n" {
		t.Fatalf("Read = %q, %v", data, err)
	}
	if _, err := store.Read(ctx, "absent.md"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	calls := store.Calls()
	if calls.Exists != 1 || calls.Write != 3 || calls.Read != 2 {
		t.Errorf("unexpected call counts %+v", calls)
	}
	want := []string{"_index.md", "guide/_index.md", "guide/setup.md"}
	got := store.Paths()
	if len(got) != len(want) {
		t.Fatalf("Paths() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Paths() = %v, want %v", got, want)
		}
	}
}

func TestMockStoreFailWrite(t *testing.T) {
	boom := errors.New("disk full")
	store := NewMockStore(nil)
	store.FailWrite = map[string]error{"SUMMARY.md": boom}

	if err := store.Write(context.Background(), "SUMMARY.md", []byte("x")); !errors.Is(err, boom) {
		t.Fatalf("expected injected error, got %v", err)
	}
	if _, ok := store.File("SUMMARY.md"); ok {
		t.Fatal("failed write must not store content")
	}
}
