package store

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/pageza/mixmaster/backend/internal/logger"
)

// Store maps a string key to a JSON-serializable value.
//
// Set never fails from the caller's point of view: the in-memory value is
// visible to the next Get as soon as Set returns, and persistence happens in
// the background. A failed write is logged and dropped.
type Store interface {
	// Get decodes the value under key into dst and reports whether a value
	// was present.
	Get(key string, dst any) bool
	Set(key string, value any)
}

// Backend is the durable side of a Mirror.
type Backend interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Put(ctx context.Context, key string, value []byte) error
}

const defaultWriteTimeout = 5 * time.Second

// Mirror is the in-memory, authoritative copy of the store. Writes are
// coalesced per key and drained by a single writer goroutine.
type Mirror struct {
	backend      Backend
	log          *logger.Logger
	writeTimeout time.Duration

	mu      sync.RWMutex
	values  map[string]json.RawMessage
	touched map[string]bool
	pending map[string]json.RawMessage
	closed  bool

	wake      chan struct{}
	done      chan struct{}
	ready     chan struct{}
	readyOnce sync.Once
}

// NewMirror starts the writer goroutine. Call Close to flush and stop it.
func NewMirror(backend Backend, log *logger.Logger) *Mirror {
	if log == nil {
		log = logger.Nop()
	}
	m := &Mirror{
		backend:      backend,
		log:          log.With("component", "store"),
		writeTimeout: defaultWriteTimeout,
		values:       make(map[string]json.RawMessage),
		touched:      make(map[string]bool),
		pending:      make(map[string]json.RawMessage),
		wake:         make(chan struct{}, 1),
		done:         make(chan struct{}),
		ready:        make(chan struct{}),
	}
	go m.writeLoop()
	return m
}

// Get implements Store.
func (m *Mirror) Get(key string, dst any) bool {
	m.mu.RLock()
	raw, ok := m.values[key]
	m.mu.RUnlock()
	if !ok {
		return false
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		m.log.Warn("discarding undecodable value", "key", key, "error", err)
		return false
	}
	return true
}

// Set implements Store.
func (m *Mirror) Set(key string, value any) {
	raw, err := json.Marshal(value)
	if err != nil {
		m.log.Error("encode value", "key", key, "error", err)
		return
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = raw
	m.touched[key] = true
	if m.closed {
		m.log.Warn("store closed, value kept in memory only", "key", key)
		return
	}
	m.pending[key] = raw
	select {
	case m.wake <- struct{}{}:
	default:
	}
}

// Hydrate loads keys from the backend in the background. Keys written during
// the session before their load completes keep the session value. Ready is
// closed once every key has been attempted.
func (m *Mirror) Hydrate(ctx context.Context, keys ...string) {
	go func() {
		defer m.readyOnce.Do(func() { close(m.ready) })
		for _, key := range keys {
			raw, ok, err := m.backend.Get(ctx, key)
			if err != nil {
				m.log.Warn("hydrate key failed, using default", "key", key, "error", err)
				continue
			}
			if !ok {
				continue
			}
			if !json.Valid(raw) {
				m.log.Warn("hydrate key holds invalid JSON, using default", "key", key)
				continue
			}
			m.mu.Lock()
			if !m.touched[key] {
				m.values[key] = json.RawMessage(raw)
			}
			m.mu.Unlock()
		}
		m.log.Debug("hydration finished", "keys", len(keys))
	}()
}

// Ready is closed when Hydrate has finished.
func (m *Mirror) Ready() <-chan struct{} {
	return m.ready
}

// WaitReady blocks until hydration finishes or ctx is done.
func (m *Mirror) WaitReady(ctx context.Context) error {
	select {
	case <-m.ready:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Close flushes pending writes and stops the writer. Values set after Close
// stay in memory only.
func (m *Mirror) Close(ctx context.Context) error {
	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		return nil
	}
	m.closed = true
	close(m.wake)
	m.mu.Unlock()

	select {
	case <-m.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (m *Mirror) writeLoop() {
	defer close(m.done)
	for range m.wake {
		m.flush()
	}
	m.flush()
}

func (m *Mirror) flush() {
	m.mu.Lock()
	batch := m.pending
	m.pending = make(map[string]json.RawMessage)
	m.mu.Unlock()

	for key, raw := range batch {
		ctx, cancel := context.WithTimeout(context.Background(), m.writeTimeout)
		err := m.backend.Put(ctx, key, raw)
		cancel()
		if err != nil {
			m.log.Warn("persist failed, in-memory value stays authoritative", "key", key, "error", err)
		}
	}
}
