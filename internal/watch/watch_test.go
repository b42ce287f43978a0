package watch

import (
	"context"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"
)

func TestDirDebouncesBursts(t *testing.T) {
	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, "docs"), 0o755); err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var calls atomic.Int32
	started := make(chan struct{})
	done := make(chan error, 1)
	go func() {
		close(started)
		done <- Dir(ctx, dir, 100*time.Millisecond, nil, func() { calls.Add(1) })
	}()
	<-started
	// Give the watcher time to register.
	time.Sleep(200 * time.Millisecond)

	for i := 0; i < 5; i++ {
		name := filepath.Join(dir, "docs", "final_report.md")
		if err := os.WriteFile(name, []byte{byte('a' + i)}, 0o644); err != nil {
			t.Fatal(err)
		}
	}

	deadline := time.Now().Add(3 * time.Second)
	for calls.Load() == 0 && time.Now().Before(deadline) {
		time.Sleep(20 * time.Millisecond)
	}
	// Let any stray second callback arrive.
	time.Sleep(300 * time.Millisecond)

	if got := calls.Load(); got != 1 {
		t.Errorf("callbacks = %d, want 1", got)
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Dir returned %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Dir did not return after cancel")
	}
}

func TestDirIgnoresHiddenFiles(t *testing.T) {
	dir := t.TempDir()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var calls atomic.Int32
	go Dir(ctx, dir, 50*time.Millisecond, nil, func() { calls.Add(1) })
	time.Sleep(200 * time.Millisecond)

	if err := os.WriteFile(filepath.Join(dir, ".final_report.md.123"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	time.Sleep(400 * time.Millisecond)
	if got := calls.Load(); got != 0 {
		t.Errorf("callbacks = %d, want 0", got)
	}
}

func TestDirMissingRoot(t *testing.T) {
	err := Dir(context.Background(), filepath.Join(t.TempDir(), "nope"), 0, nil, func() {})
	if err == nil {
		t.Error("expected error for missing directory")
	}
}
