// Package store holds the client-side state for the current user: the
// authenticated session and the task collection. The stores reconcile
// local state with the remote service's responses; the presentation
// layer reads from them and never calls the service directly. Failures
// never escape as errors — callers observe each operation's boolean
// result and the store's Err message.
package store

import (
	"context"
	"sync"

	"taskpad/internal/credstore"
	"taskpad/internal/service"
)

// Session is the authenticated identity and its bearer credential.
// Both fields are set and cleared together, never one without the
// other; absence of a session means logged out.
type Session struct {
	Identity   string
	Credential string
}

// SessionStore owns the session and its durable copy. Overlapping
// Login/Register calls are not serialized: if both resolve, the last
// writer wins (see the concurrency note on Login).
type SessionStore struct {
	auth  service.Authenticator
	creds credstore.Store

	mu      sync.Mutex
	session Session
	active  bool
	loading bool
	err     string
}

// NewSessionStore creates a session store over the given authenticator
// and credential persistence port.
func NewSessionStore(auth service.Authenticator, creds credstore.Store) *SessionStore {
	return &SessionStore{auth: auth, creds: creds}
}

// Restore establishes a session from the persisted credential without
// contacting the service (trust-on-restore). A missing token or email
// leaves the store unauthenticated. Synchronous; no side effects beyond
// the read.
func (s *SessionStore) Restore() {
	token, haveToken := s.creds.Get(credstore.KeyToken)
	email, haveEmail := s.creds.Get(credstore.KeyEmail)

	s.mu.Lock()
	defer s.mu.Unlock()
	if !haveToken || !haveEmail {
		s.session = Session{}
		s.active = false
		return
	}
	s.session = Session{Identity: email, Credential: token}
	s.active = true
}

// Login authenticates identity against the service. On success the
// credential is persisted durably and the session becomes active; on
// failure the store stays unauthenticated and Err carries the message.
// Loading is cleared on every path.
//
// Only one Login/Register is expected in flight at a time (Loading
// signals this to callers); overlapping calls are an accepted
// last-write-wins race, not a guaranteed ordering.
func (s *SessionStore) Login(ctx context.Context, identity, secret string) bool {
	s.begin()
	defer s.finish()

	credential, err := s.auth.Authenticate(ctx, identity, secret)
	if err != nil {
		s.fail(err)
		return false
	}

	// Persist before exposing the session so a restart immediately
	// after login restores the same state.
	if err := s.creds.Set(credstore.KeyToken, credential); err != nil {
		s.fail(err)
		return false
	}
	if err := s.creds.Set(credstore.KeyEmail, identity); err != nil {
		s.fail(err)
		return false
	}

	s.mu.Lock()
	s.session = Session{Identity: identity, Credential: credential}
	s.active = true
	s.mu.Unlock()
	return true
}

// Register creates an account with the same lifecycle as Login but
// never establishes a session: registration and authentication are
// decoupled, and an explicit Login must follow.
func (s *SessionStore) Register(ctx context.Context, identity, secret string) bool {
	s.begin()
	defer s.finish()

	if err := s.auth.CreateAccount(ctx, identity, secret); err != nil {
		s.fail(err)
		return false
	}
	return true
}

// Logout clears the persisted credential and the session. Synchronous;
// no remote call. Removal failures are ignored: the in-memory session
// is gone either way, and a stale file only yields a failed restore's
// worth of harm on the next run.
func (s *SessionStore) Logout() {
	_ = s.creds.Delete(credstore.KeyToken)
	_ = s.creds.Delete(credstore.KeyEmail)

	s.mu.Lock()
	s.session = Session{}
	s.active = false
	s.mu.Unlock()
}

// Session returns the active session, if any.
func (s *SessionStore) Session() (Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.session, s.active
}

// Authenticated reports whether a session is active.
func (s *SessionStore) Authenticated() bool {
	_, ok := s.Session()
	return ok
}

// Identity returns the active session's email, or empty.
func (s *SessionStore) Identity() string {
	sess, _ := s.Session()
	return sess.Identity
}

// Credential implements service.CredentialSource.
func (s *SessionStore) Credential() string {
	sess, _ := s.Session()
	return sess.Credential
}

// Loading reports whether a login or register is in flight.
func (s *SessionStore) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

// Err returns the last operation's failure message, or empty.
func (s *SessionStore) Err() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

func (s *SessionStore) begin() {
	s.mu.Lock()
	s.loading = true
	s.err = ""
	s.mu.Unlock()
}

func (s *SessionStore) finish() {
	s.mu.Lock()
	s.loading = false
	s.mu.Unlock()
}

func (s *SessionStore) fail(err error) {
	s.mu.Lock()
	s.err = err.Error()
	s.mu.Unlock()
}
