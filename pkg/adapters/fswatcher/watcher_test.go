package fswatcher

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/user/imgbench/pkg/adapters/logger"
)

func TestWatch_ReportsChange(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "bench.yaml")
	other := filepath.Join(dir, "other.txt")
	if err := os.WriteFile(target, []byte("a"), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	timeout := time.After(5 * time.Second)

	got := make(chan []string, 1)
	done := make(chan error, 1)
	w := New(20*time.Millisecond, logger.NewNoop())
	go func() {
		done <- w.Watch(ctx, []string{target}, func(changed []string) {
			select {
			case got <- changed:
			default:
			}
			cancel()
		})
	}()

	// The watch starts asynchronously; keep writing until it is seen.
	ticker := time.NewTicker(50 * time.Millisecond)
	defer ticker.Stop()
	var changed []string
loop:
	for {
		select {
		case changed = <-got:
			break loop
		case <-timeout:
			t.Fatal("timed out waiting for change")
		case <-ticker.C:
			_ = os.WriteFile(other, []byte("x"), 0644)
			_ = os.WriteFile(target, []byte("b"), 0644)
		}
	}

	if len(changed) != 1 || changed[0] != target {
		t.Errorf("expected [%s], got %v", target, changed)
	}
	if err := <-done; err != nil {
		t.Errorf("Watch returned error: %v", err)
	}
}

func TestWatch_StopsOnCancel(t *testing.T) {
	dir := t.TempDir()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	w := New(0, logger.NewNoop())
	err := w.Watch(ctx, []string{filepath.Join(dir, "bench.yaml")}, func([]string) {
		t.Error("unexpected change")
	})
	if err != nil {
		t.Errorf("expected nil error, got %v", err)
	}
}

func TestWatch_MissingDirectory(t *testing.T) {
	w := New(0, logger.NewNoop())
	path := filepath.Join(t.TempDir(), "missing", "bench.yaml")
	if err := w.Watch(context.Background(), []string{path}, func([]string) {}); err == nil {
		t.Error("expected error for missing directory")
	}
}
