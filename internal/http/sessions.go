package http

import (
	"log/slog"
	"sync"
	"time"

	"github.com/fjod/go_storefront/internal/cart"
	"github.com/fjod/go_storefront/internal/session"
	"github.com/google/uuid"
)

const cleanupInterval = 1 * time.Minute

// Scope bundles the per-session stores. One Scope exists per active browser
// session; stores are constructed here and handed to consumers explicitly,
// never looked up through ambient globals.
type Scope struct {
	Cart    *cart.Store
	Session *session.Store

	lastSeen time.Time // guarded by the manager's mutex
}

// ScopeFactory builds a fresh Scope for a new session.
type ScopeFactory func() *Scope

// Manager maps session ids to Scopes and evicts idle ones in the background.
type Manager struct {
	mu     sync.RWMutex
	scopes map[string]*Scope

	newScope ScopeFactory
	ttl      time.Duration
	logger   *slog.Logger

	stopCleanup chan struct{}
	wg          sync.WaitGroup
}

func NewManager(newScope ScopeFactory, ttl time.Duration, logger *slog.Logger) *Manager {
	m := &Manager{
		scopes:      make(map[string]*Scope),
		newScope:    newScope,
		ttl:         ttl,
		logger:      logger,
		stopCleanup: make(chan struct{}),
	}

	m.wg.Add(1)
	go m.cleanupLoop()

	return m
}

func (m *Manager) cleanupLoop() {
	defer m.wg.Done()

	ticker := time.NewTicker(cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			m.evictIdle()
		case <-m.stopCleanup:
			return
		}
	}
}

func (m *Manager) evictIdle() {
	m.mu.Lock()
	defer m.mu.Unlock()

	cutoff := time.Now().Add(-m.ttl)
	for sid, scope := range m.scopes {
		if scope.lastSeen.Before(cutoff) {
			delete(m.scopes, sid)
			m.logger.Debug("evicted idle session", "session_id", sid)
		}
	}
}

// Acquire returns the Scope for sid, refreshing its idle timer. The second
// return is false when sid is unknown or already evicted.
func (m *Manager) Acquire(sid string) (*Scope, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	scope, ok := m.scopes[sid]
	if !ok {
		return nil, false
	}
	scope.lastSeen = time.Now()
	return scope, true
}

// Create registers a fresh Scope under a new session id.
func (m *Manager) Create() (string, *Scope) {
	sid := uuid.NewString()
	scope := m.newScope()

	m.mu.Lock()
	defer m.mu.Unlock()
	scope.lastSeen = time.Now()
	m.scopes[sid] = scope
	return sid, scope
}

// Len reports the number of live sessions.
func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.scopes)
}

// Stop halts the cleanup goroutine and waits for it to exit.
func (m *Manager) Stop() {
	close(m.stopCleanup)
	m.wg.Wait()
}
