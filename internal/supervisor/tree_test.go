// CineMatch - Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package supervisor

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"sync/atomic"
	"testing"
	"time"

	"github.com/thejerf/suture/v4"
)

// mockService counts starts and optionally fails its first runs.
type mockService struct {
	name      string
	starts    atomic.Int32
	failFirst int32
	exitErr   error
}

func (m *mockService) Serve(ctx context.Context) error {
	n := m.starts.Add(1)
	if n <= m.failFirst {
		return errors.New("simulated failure")
	}
	if m.exitErr != nil {
		return m.exitErr
	}
	<-ctx.Done()
	return ctx.Err()
}

func (m *mockService) String() string { return m.name }

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
}

func TestSupervisorTreeConstruction(t *testing.T) {
	t.Run("creates hierarchical supervisor tree", func(t *testing.T) {
		tree, err := NewSupervisorTree(quietLogger(), TreeConfig{
			FailureThreshold: 5,
			FailureBackoff:   time.Second,
			ShutdownTimeout:  10 * time.Second,
		})
		if err != nil {
			t.Fatalf("failed to create tree: %v", err)
		}
		if tree.Root() == nil {
			t.Error("root supervisor should not be nil")
		}
	})

	t.Run("applies default values for zero config", func(t *testing.T) {
		tree, err := NewSupervisorTree(quietLogger(), TreeConfig{})
		if err != nil {
			t.Fatalf("failed to create tree: %v", err)
		}
		if tree.config != DefaultTreeConfig() {
			t.Errorf("config = %+v, want %+v", tree.config, DefaultTreeConfig())
		}
	})
}

func TestSupervisorTreeLifecycle(t *testing.T) {
	t.Run("tree starts and stops gracefully", func(t *testing.T) {
		tree, _ := NewSupervisorTree(quietLogger(), TreeConfig{
			FailureBackoff:  100 * time.Millisecond,
			ShutdownTimeout: time.Second,
		})

		api := &mockService{name: "mock-api"}
		console := &mockService{name: "mock-console"}
		tree.AddAPIService(api)
		tree.AddConsoleService(console)

		ctx, cancel := context.WithCancel(context.Background())
		errCh := tree.ServeBackground(ctx)

		time.Sleep(100 * time.Millisecond)
		cancel()

		select {
		case err := <-errCh:
			if err != nil && !errors.Is(err, context.Canceled) {
				t.Errorf("unexpected error: %v", err)
			}
		case <-time.After(2 * time.Second):
			t.Fatal("tree did not shut down in time")
		}

		if api.starts.Load() < 1 {
			t.Error("api service was not started")
		}
		if console.starts.Load() < 1 {
			t.Error("console service was not started")
		}
	})

	t.Run("console exit terminates the tree", func(t *testing.T) {
		tree, _ := NewSupervisorTree(quietLogger(), TreeConfig{ShutdownTimeout: time.Second})

		api := &mockService{name: "mock-api"}
		tree.AddAPIService(api)
		tree.AddConsoleService(&mockService{name: "mock-console", exitErr: suture.ErrTerminateSupervisorTree})

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		select {
		case <-tree.ServeBackground(ctx):
		case <-time.After(3 * time.Second):
			t.Fatal("tree kept running after the console exited")
		}
		if ctx.Err() != nil {
			t.Error("tree stopped by timeout instead of console exit")
		}
	})
}

func TestSupervisorTreeFailureHandling(t *testing.T) {
	tree, _ := NewSupervisorTree(quietLogger(), TreeConfig{
		FailureThreshold: 10,
		FailureBackoff:   10 * time.Millisecond,
		ShutdownTimeout:  time.Second,
	})

	failing := &mockService{name: "failing", failFirst: 2}
	stable := &mockService{name: "stable"}
	tree.AddConsoleService(failing)
	tree.AddAPIService(stable)

	ctx, cancel := context.WithTimeout(context.Background(), 300*time.Millisecond)
	defer cancel()

	errCh := tree.ServeBackground(ctx)
	time.Sleep(200 * time.Millisecond)

	if got := failing.starts.Load(); got < 3 {
		t.Errorf("expected at least 3 starts for failing service, got %d", got)
	}
	if got := stable.starts.Load(); got != 1 {
		t.Errorf("stable service starts = %d, want 1", got)
	}

	cancel()
	<-errCh
}

func TestDefaultTreeConfig(t *testing.T) {
	config := DefaultTreeConfig()

	if config.FailureThreshold != 5.0 {
		t.Errorf("expected FailureThreshold 5.0, got %f", config.FailureThreshold)
	}
	if config.FailureDecay != 30.0 {
		t.Errorf("expected FailureDecay 30.0, got %f", config.FailureDecay)
	}
	if config.FailureBackoff != 15*time.Second {
		t.Errorf("expected FailureBackoff 15s, got %v", config.FailureBackoff)
	}
	if config.ShutdownTimeout != 10*time.Second {
		t.Errorf("expected ShutdownTimeout 10s, got %v", config.ShutdownTimeout)
	}
}
