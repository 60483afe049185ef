// Package session tracks the authenticated user for the whole process.
//
// The manager is a small state machine: it starts unknown (loading), resolves
// to authenticated or anonymous during startup rehydration, and moves between
// those two states through login, signup and logout. Authenticated is only
// ever reported when both a user and a stored credential are present; any
// mismatch self-heals to anonymous on the next rehydration.
package session

import (
	"context"
	"sync"
	"time"

	"github.com/umakantv/go-utils/logger"
	"go.uber.org/zap"

	"taskboard/models"
)

// logoutTimeout bounds the best-effort remote invalidation during logout.
const logoutTimeout = 3 * time.Second

// TokenStore is the credential persistence the manager drives.
type TokenStore interface {
	Get() (string, bool)
	Set(token string) error
	Remove() error
}

// AuthAPI is the slice of the auth service the manager needs.
type AuthAPI interface {
	Login(ctx context.Context, req models.LoginRequest) (models.AuthResult, error)
	Signup(ctx context.Context, req models.SignupRequest) (models.AuthResult, error)
	CurrentUser(ctx context.Context) (models.User, error)
	Logout(ctx context.Context) error
}

// Navigator moves the UI between screens after auth transitions.
type Navigator interface {
	Goto(path string)
}

// Manager holds the process-wide session state. All state is mutated from UI
// event handlers; the mutex covers the occasional read from the render path.
type Manager struct {
	mu      sync.Mutex
	user    *models.User
	loading bool

	tokens TokenStore
	auth   AuthAPI
	nav    Navigator
}

// NewManager creates a manager in the initial loading state. Call Rehydrate
// once at startup to resolve it.
func NewManager(tokens TokenStore, auth AuthAPI, nav Navigator) *Manager {
	return &Manager{
		loading: true,
		tokens:  tokens,
		auth:    auth,
		nav:     nav,
	}
}

// Rehydrate resolves the session from the stored credential: no credential
// means anonymous; a credential is verified against /auth/me and wiped when
// the server rejects it. Also called after profile edits to resynchronize.
func (m *Manager) Rehydrate(ctx context.Context) {
	if _, ok := m.tokens.Get(); !ok {
		m.setUser(nil)
		return
	}

	user, err := m.auth.CurrentUser(ctx)
	if err != nil {
		logger.Info("session rehydration failed", zap.Error(err))
		if err := m.tokens.Remove(); err != nil {
			logger.Error("remove credential", zap.Error(err))
		}
		m.setUser(nil)
		return
	}
	m.setUser(&user)
}

// RefreshUser re-runs rehydration.
func (m *Manager) RefreshUser(ctx context.Context) {
	m.Rehydrate(ctx)
}

// Login authenticates, stores the credential, and navigates to the dashboard.
// On failure the state is unchanged and the error goes back to the form.
func (m *Manager) Login(ctx context.Context, email, password string) error {
	result, err := m.auth.Login(ctx, models.LoginRequest{Email: email, Password: password})
	if err != nil {
		return err
	}
	return m.establish(result)
}

// Signup registers a new account; otherwise symmetric to Login.
func (m *Manager) Signup(ctx context.Context, name, email, password string) error {
	result, err := m.auth.Signup(ctx, models.SignupRequest{Name: name, Email: email, Password: password})
	if err != nil {
		return err
	}
	return m.establish(result)
}

func (m *Manager) establish(result models.AuthResult) error {
	if err := m.tokens.Set(result.Token); err != nil {
		return err
	}
	m.setUser(&result.User)
	logger.Info("session established", zap.String("email", result.User.Email))
	m.nav.Goto("/dashboard")
	return nil
}

// Logout tears the session down. The remote invalidation is best effort; the
// credential wipe and state transition never depend on it.
func (m *Manager) Logout(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, logoutTimeout)
	defer cancel()
	if err := m.auth.Logout(ctx); err != nil {
		logger.Info("remote logout failed", zap.Error(err))
	}
	if err := m.tokens.Remove(); err != nil {
		logger.Error("remove credential", zap.Error(err))
	}
	m.setUser(nil)
	m.nav.Goto("/login")
}

// CurrentUser returns a copy of the signed-in user, or nil.
func (m *Manager) CurrentUser() *models.User {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.user == nil {
		return nil
	}
	u := *m.user
	return &u
}

// Loading reports whether the initial rehydration is still pending.
func (m *Manager) Loading() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.loading
}

// IsAuthenticated is true only when a user is held AND a credential is
// present. A stale user without a credential does not count.
func (m *Manager) IsAuthenticated() bool {
	m.mu.Lock()
	user := m.user
	m.mu.Unlock()
	if user == nil {
		return false
	}
	_, ok := m.tokens.Get()
	return ok
}

func (m *Manager) setUser(u *models.User) {
	m.mu.Lock()
	m.user = u
	m.loading = false
	m.mu.Unlock()
}
