package levels

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWatcherReloads(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "levels.dat")
	if err := os.WriteFile(path, []byte(sample), 0o600); err != nil {
		t.Fatal(err)
	}

	w, err := NewWatcher(path)
	if err != nil {
		t.Fatalf("NewWatcher() = %v", err)
	}
	defer w.Close()

	// Other files in the directory are ignored.
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("hi"), 0o600); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("8,6,1,Y.J\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	select {
	case c := <-w.Catalog:
		if c.Len() != 1 || c.Pool(1)[0].Size != 6 {
			t.Errorf("reloaded catalog = %d pools", c.Len())
		}
	case err := <-w.Errors:
		t.Fatalf("watcher error: %v", err)
	case <-time.After(5 * time.Second):
		t.Fatal("no reload within 5s")
	}

	if err := os.WriteFile(path, []byte("8,6,1,zz\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	select {
	case <-w.Catalog:
		t.Fatal("malformed file produced a catalog")
	case err := <-w.Errors:
		if err == nil {
			t.Error("expected a parse error")
		}
	case <-time.After(5 * time.Second):
		t.Fatal("no error within 5s")
	}
}

func TestWatcherClose(t *testing.T) {
	path := filepath.Join(t.TempDir(), "levels.dat")
	if err := os.WriteFile(path, []byte(sample), 0o600); err != nil {
		t.Fatal(err)
	}
	w, err := NewWatcher(path)
	if err != nil {
		t.Fatalf("NewWatcher() = %v", err)
	}
	if err := w.Close(); err != nil {
		t.Errorf("Close() = %v", err)
	}
	if err := w.Close(); err != nil {
		t.Errorf("second Close() = %v", err)
	}
	select {
	case <-w.Done():
	default:
		t.Error("Done() not closed after Close()")
	}
}
