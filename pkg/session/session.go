// Package session holds the authentication state shared by every part of a
// SkillSwap client process: the stored token pair and the identity of the
// logged-in user.
package session

import (
	"context"
	"sync"
)

// Storage keys for the persisted token pair.
const (
	AccessTokenKey  = "access_token"
	RefreshTokenKey = "refresh_token"
)

// AdminEmail is the fixed administrative address. Admin status is derived by
// exact comparison against it; the server asserts no role claim the client
// could use instead.
const AdminEmail = "admin@skillswap.com"

// User is the identity attached to a session after the profile has been
// fetched. It can be absent even while tokens exist (e.g. right after a
// process restart); role checks then default to non-admin.
type User struct {
	ID    string
	Email string
	Name  string
}

// Credentials is the token pair returned by a successful login.
type Credentials struct {
	AccessToken  string
	RefreshToken string
}

// Authenticator exchanges user credentials for a token pair. The API client
// implements this against POST /api/user/login/.
type Authenticator interface {
	Login(ctx context.Context, email, password string) (Credentials, error)
}

// Store is the single authority for "is there a logged-in user, and are they
// an admin". Exactly one Store is built at process start and injected into
// everything that needs auth state.
type Store struct {
	storage TokenStorage
	authn   Authenticator

	mu   sync.Mutex
	user *User
}

// NewStore builds a Store over the given durable token storage.
func NewStore(storage TokenStorage, authn Authenticator) *Store {
	return &Store{storage: storage, authn: authn}
}

// Login exchanges credentials via the authenticator and persists the returned
// token pair. Authenticator errors are surfaced unchanged; nothing is retried
// and nothing is stored on failure.
func (s *Store) Login(ctx context.Context, email, password string) error {
	creds, err := s.authn.Login(ctx, email, password)
	if err != nil {
		return err
	}
	return s.storage.SetTokens(creds.AccessToken, creds.RefreshToken)
}

// Logout clears both stored tokens and the in-memory user. Calling it with no
// active session is a no-op.
func (s *Store) Logout() {
	s.storage.Clear()

	s.mu.Lock()
	s.user = nil
	s.mu.Unlock()
}

// IsAuthenticated reports whether a non-empty access token exists in storage
// right now. The answer is never cached: storage is mutated out-of-band by the
// API client's 401 handler.
func (s *Store) IsAuthenticated() bool {
	return s.storage.Get(AccessTokenKey) != ""
}

// IsAdmin reports whether the current user is the administrative account.
// False whenever no user is attached.
func (s *Store) IsAdmin() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user != nil && s.user.Email == AdminEmail
}

// SetUser attaches the fetched profile identity to the session.
func (s *Store) SetUser(u *User) {
	s.mu.Lock()
	s.user = u
	s.mu.Unlock()
}

// User returns the attached identity, or nil when none has been fetched.
func (s *Store) User() *User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user
}
