package session

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"sync"

	"github.com/fjod/go_storefront/internal/storage"
)

// RememberedKey is the single well-known KV key holding the remembered
// login identity.
const RememberedKey = "storefront:remembered_identity"

// RememberedIdentity is the durably persisted record behind "remember me".
// It only prefills the login form on the next visit; it never authenticates.
type RememberedIdentity struct {
	Email string `json:"email"`
}

// Store is the two-state session machine: Anonymous until a successful
// login, Authenticated until logout. One Store instance belongs to one
// session; the mutex serializes concurrent requests on that session.
type Store struct {
	mu            sync.Mutex
	authenticated bool
	email         string

	verifier CredentialVerifier
	kv       storage.KeyValue
	logger   *slog.Logger
}

func NewStore(verifier CredentialVerifier, kv storage.KeyValue, logger *slog.Logger) *Store {
	return &Store{
		verifier: verifier,
		kv:       kv,
		logger:   logger,
	}
}

// Login validates the credential pair and transitions to Authenticated on
// success. Failure leaves the state untouched and reports only a boolean;
// empty or malformed input simply fails to match (fails closed). Callers
// surface a generic message, never which field was wrong.
func (s *Store) Login(email, password string) bool {
	if !s.verifier.Verify(email, password) {
		return false
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.authenticated = true
	s.email = email
	return true
}

// Logout unconditionally returns to Anonymous. Calling it while already
// Anonymous is a no-op.
func (s *Store) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.authenticated = false
	s.email = ""
}

// IsAuthenticated reports the current state.
func (s *Store) IsAuthenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.authenticated
}

// Email returns the authenticated identity, or false when Anonymous.
func (s *Store) Email() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.authenticated {
		return "", false
	}
	return s.email, true
}

// Remember persists the identity for login prefill. Callers invoke this only
// after a successful login when the user opted in. Persistence failures are
// logged and swallowed; remember-me is cosmetic and must not affect the live
// session.
func (s *Store) Remember(ctx context.Context, email string) {
	data, err := json.Marshal(RememberedIdentity{Email: email})
	if err != nil {
		s.logger.Warn("marshal remembered identity failed", "error", err)
		return
	}
	if err := s.kv.Set(ctx, RememberedKey, string(data)); err != nil {
		s.logger.Warn("persist remembered identity failed", "error", err)
	}
}

// Forget clears the persisted identity. Best-effort, same as Remember.
func (s *Store) Forget(ctx context.Context) {
	if err := s.kv.Delete(ctx, RememberedKey); err != nil {
		s.logger.Warn("clear remembered identity failed", "error", err)
	}
}

// Remembered reads the persisted identity, if any. Bootstrap calls this once
// to prefill the login form.
func (s *Store) Remembered(ctx context.Context) (string, bool) {
	value, err := s.kv.Get(ctx, RememberedKey)
	if errors.Is(err, storage.ErrKeyNotFound) {
		return "", false
	}
	if err != nil {
		s.logger.Warn("read remembered identity failed", "error", err)
		return "", false
	}

	var identity RememberedIdentity
	if err := json.Unmarshal([]byte(value), &identity); err != nil {
		s.logger.Warn("decode remembered identity failed", "error", err)
		return "", false
	}
	if identity.Email == "" {
		return "", false
	}
	return identity.Email, true
}
