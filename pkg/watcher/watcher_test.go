package watcher

import (
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"
)

func TestWatcherFiresOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "pose.png")
	if err := os.WriteFile(path, []byte("v1"), 0644); err != nil {
		t.Fatal(err)
	}

	var fired atomic.Int32
	w, err := New(path, 20*time.Millisecond, func(string) {
		fired.Add(1)
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer w.Close()
	w.Start()

	if err := os.WriteFile(path, []byte("v2"), 0644); err != nil {
		t.Fatal(err)
	}

	deadline := time.Now().Add(2 * time.Second)
	for fired.Load() == 0 && time.Now().Before(deadline) {
		time.Sleep(10 * time.Millisecond)
	}
	if fired.Load() == 0 {
		t.Fatal("watcher did not fire after a write")
	}
}

func TestWatcherIgnoresSiblings(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "pose.png")
	if err := os.WriteFile(path, []byte("v1"), 0644); err != nil {
		t.Fatal(err)
	}

	var fired atomic.Int32
	w, err := New(path, 20*time.Millisecond, func(string) {
		fired.Add(1)
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer w.Close()
	w.Start()

	if err := os.WriteFile(filepath.Join(dir, "other.png"), []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	time.Sleep(200 * time.Millisecond)
	if fired.Load() != 0 {
		t.Fatal("watcher fired for an unrelated file")
	}
}

func TestWatcherDebouncesBursts(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "pose.png")
	if err := os.WriteFile(path, []byte("v1"), 0644); err != nil {
		t.Fatal(err)
	}

	var fired atomic.Int32
	w, err := New(path, 100*time.Millisecond, func(string) {
		fired.Add(1)
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer w.Close()
	w.Start()

	for i := 0; i < 5; i++ {
		if err := os.WriteFile(path, []byte("burst"), 0644); err != nil {
			t.Fatal(err)
		}
		time.Sleep(10 * time.Millisecond)
	}

	time.Sleep(500 * time.Millisecond)
	if got := fired.Load(); got != 1 {
		t.Fatalf("expected a single debounced callback, got %d", got)
	}
}
