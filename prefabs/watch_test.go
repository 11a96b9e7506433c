package prefabs

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWatcherReportsSpecChanges(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignored"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, TuningFile), []byte("gravity: 0.4\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case name := <-w.Events:
		if !IsTuningFile(name, "") {
			t.Fatalf("unexpected event for %s", name)
		}
	case err := <-w.Errors:
		t.Fatalf("watcher error: %v", err)
	case <-time.After(5 * time.Second):
		t.Fatalf("no event for the tuning file")
	}
}

func TestWatcherCloseIsIdempotent(t *testing.T) {
	w, err := NewWatcher(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("second Close: %v", err)
	}
	for range w.Events {
	}
}

func TestNewWatcherMissingDir(t *testing.T) {
	if _, err := NewWatcher(filepath.Join(t.TempDir(), "missing")); err == nil {
		t.Fatalf("expected an error for a missing directory")
	}
}

func TestIsTuningFile(t *testing.T) {
	cases := []struct {
		path, name string
		want       bool
	}{
		{"prefabs/tuning.yaml", "", true},
		{"/abs/prefabs/tuning.yaml", "tuning.yaml", true},
		{"prefabs/hard.yaml", "", false},
		{"prefabs/hard.yaml", "hard.yaml", true},
		{"prefabs/demo_replay.yaml", "hard.yaml", false},
	}
	for _, c := range cases {
		if got := IsTuningFile(c.path, c.name); got != c.want {
			t.Fatalf("IsTuningFile(%q, %q) = %v, want %v", c.path, c.name, got, c.want)
		}
	}
}
