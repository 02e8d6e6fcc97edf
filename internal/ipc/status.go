package ipc

import (
	"sync"
	"time"

	"github.com/tidewl/tidewl/internal/comp"
)

// StatusStore holds the latest window-registry snapshot published by the
// event loop. Readers on IPC goroutines and the publishing handler never
// share a slice: both sides copy under the lock.
type StatusStore struct {
	mu         sync.RWMutex
	windows    []comp.WindowInfo
	socketName string
	startTime  time.Time
}

// NewStatusStore creates an empty store with the uptime clock started.
func NewStatusStore() *StatusStore {
	return &StatusStore{startTime: time.Now()}
}

// PublishWindows replaces the snapshot. Called from the event loop.
func (s *StatusStore) PublishWindows(windows []comp.WindowInfo) {
	snapshot := make([]comp.WindowInfo, len(windows))
	copy(snapshot, windows)

	s.mu.Lock()
	s.windows = snapshot
	s.mu.Unlock()
}

// SetSocketName records the wayland socket the compositor listens on.
// Called once at startup, before the control socket starts serving.
func (s *StatusStore) SetSocketName(name string) {
	s.mu.Lock()
	s.socketName = name
	s.mu.Unlock()
}

// SocketName returns the compositor's wayland socket name.
func (s *StatusStore) SocketName() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.socketName
}

// Windows returns a copy of the current snapshot, focus order preserved.
func (s *StatusStore) Windows() []comp.WindowInfo {
	s.mu.RLock()
	defer s.mu.RUnlock()

	windows := make([]comp.WindowInfo, len(s.windows))
	copy(windows, s.windows)
	return windows
}

// Uptime reports how long the store (and so the compositor) has been up.
func (s *StatusStore) Uptime() time.Duration {
	return time.Since(s.startTime)
}
