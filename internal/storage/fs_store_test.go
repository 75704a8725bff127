package storage

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestFSStoreWriteAndRead(t *testing.T) {
	root := t.TempDir()
	store := NewFSStore(root)
	ctx := context.Background()

	if err := os.MkdirAll(filepath.Join(root, "guide"), 0o750); err != nil {
		t.Fatal(err)
	}
	if err := store.Write(ctx, "guide/_index.md", []byte("# guide\n")); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	data, err := store.Read(ctx, "guide/_index.md")
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if string(data) != "# guide\n" {
		t.Errorf("unexpected content %q", data)
	}

	info, err := os.Stat(filepath.Join(root, "guide", "_index.md"))
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if info.Mode().Perm() != 0o644 {
		t.Errorf("expected mode 0644, got %v", info.Mode().Perm())
	}

	entries, err := os.ReadDir(filepath.Join(root, "guide"))
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Errorf("expected temp files to be cleaned up, found %d entries", len(entries))
	}
}

func TestFSStoreWriteReplaces(t *testing.T) {
	store := NewFSStore(t.TempDir())
	ctx := context.Background()

	for _, content := range []string{"first\n", "second\n"} {
		if err := store.Write(ctx, "SUMMARY.md", []byte(content)); err != nil {
			t.Fatalf("Write failed: %v", err)
		}
	}
	data, err := store.Read(ctx, "SUMMARY.md")
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "second\n" {
		t.Errorf("unexpected content %q", data)
	}
}

func TestFSStoreWriteMissingDirectory(t *testing.T) {
	store := NewFSStore(t.TempDir())
	err := store.Write(context.Background(), "missing/_index.md", []byte("x"))
	if err == nil {
		t.Fatal("expected error writing into a missing directory")
	}
}

func TestFSStoreExists(t *testing.T) {
	root := t.TempDir()
	store := NewFSStore(root)
	ctx := context.Background()

	if err := os.WriteFile(filepath.Join(root, "index.md"), []byte("x"), 0o600); err != nil {
		t.Fatal(err)
	}
	if err := os.Mkdir(filepath.Join(root, "dir.md"), 0o750); err != nil {
		t.Fatal(err)
	}

	for p, want := range map[string]bool{"index.md": true, "absent.md": false, "dir.md": false} {
		got, err := store.Exists(ctx, p)
		if err != nil {
			t.Fatalf("Exists(%s): %v", p, err)
		}
		if got != want {
			t.Errorf("Exists(%s) = %v, want %v", p, got, want)
		}
	}
}

func TestFSStoreReadMissing(t *testing.T) {
	_, err := NewFSStore(t.TempDir()).Read(context.Background(), "nope.md")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestFSStoreRejectsEscapes(t *testing.T) {
	store := NewFSStore(t.TempDir())
	ctx := context.Background()
	for _, p := range []string{"../x.md", "/etc/passwd", "a/../../x.md"} {
		if err := store.Write(ctx, p, nil); !errors.Is(err, ErrOutsideRoot) {
			t.Errorf("Write(%s): expected ErrOutsideRoot, got %v", p, err)
		}
		if _, err := store.Exists(ctx, p); !errors.Is(err, ErrOutsideRoot) {
			t.Errorf("Exists(%s): expected ErrOutsideRoot, got %v", p, err)
		}
	}
}
