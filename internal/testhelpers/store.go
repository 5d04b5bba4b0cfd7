package testhelpers

import (
	"context"
	"testing"
	"time"

	"github.com/pageza/mixmaster/backend/internal/logger"
	"github.com/pageza/mixmaster/backend/internal/store"
)

// NewMemoryStore returns a hydrated mirror over a fresh memory backend. The
// backend is returned so tests can reopen a second mirror over the same data.
func NewMemoryStore(t *testing.T) (*store.Mirror, *store.MemoryBackend) {
	t.Helper()
	backend := store.NewMemoryBackend()
	return OpenMirror(t, backend), backend
}

// OpenMirror hydrates every known key from backend and closes the mirror on
// cleanup.
func OpenMirror(t *testing.T, backend store.Backend) *store.Mirror {
	t.Helper()
	m := store.NewMirror(backend, logger.Nop())
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	m.Hydrate(ctx, store.AllKeys...)
	if err := m.WaitReady(ctx); err != nil {
		t.Fatalf("store hydration did not finish: %v", err)
	}
	t.Cleanup(func() { CloseMirror(t, m) })
	return m
}

// CloseMirror flushes pending writes. Safe to call more than once.
func CloseMirror(t *testing.T, m *store.Mirror) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := m.Close(ctx); err != nil {
		t.Errorf("failed to close store: %v", err)
	}
}
