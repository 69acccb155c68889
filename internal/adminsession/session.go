// Package adminsession authenticates the admin against the remote backend
// and keeps a locally signed session so the flag survives restarts without
// trusting anything stored on disk.
package adminsession

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/ahmadsvu/stationery-hub-frontend/config"
	"github.com/ahmadsvu/stationery-hub-frontend/internal/backend"
	"github.com/ahmadsvu/stationery-hub-frontend/pkg/logger"
	"github.com/ahmadsvu/stationery-hub-frontend/pkg/statefile"
)

const recordName = "admin-session"

// ErrNotLoggedIn means no valid session exists locally.
var ErrNotLoggedIn = errors.New("adminsession: not logged in")

// ErrPasswordMismatch means the new password and its confirmation differ.
var ErrPasswordMismatch = errors.New("adminsession: new passwords do not match")

// Claims holds the typed JWT payload.
type Claims struct {
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// Session is the persisted login record. The token is the only thing
// trusted on load; the rest is display data.
type Session struct {
	Username   string    `json:"username"`
	Role       string    `json:"role"`
	LoggedInAt time.Time `json:"loggedInAt"`
	Token      string    `json:"token"`
}

// Manager owns login state. One per process.
type Manager struct {
	backend *backend.Client
	files   *statefile.Store
	secret  []byte
	ttl     time.Duration
}

// NewManager wires a manager with the configured signing secret and TTL.
func NewManager(b *backend.Client, files *statefile.Store) *Manager {
	return &Manager{
		backend: b,
		files:   files,
		secret:  []byte(config.SessionSecret()),
		ttl:     config.SessionTTL(),
	}
}

// Login verifies credentials against the backend, then issues and persists
// a locally signed session token.
func (m *Manager) Login(ctx context.Context, username, password string) (*Session, error) {
	identity, err := m.backend.Login(ctx, username, password)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	token, err := m.issueToken(identity.Username, identity.Role, now)
	if err != nil {
		return nil, fmt.Errorf("adminsession: sign token: %w", err)
	}

	session := &Session{
		Username:   identity.Username,
		Role:       identity.Role,
		LoggedInAt: now,
		Token:      token,
	}
	if err := m.files.Put(recordName, session); err != nil {
		return nil, fmt.Errorf("adminsession: persist session: %w", err)
	}

	logger.Info("adminsession: login", "username", identity.Username, "role", identity.Role)
	return session, nil
}

// Current loads and verifies the persisted session. An expired or tampered
// record is deleted on sight.
func (m *Manager) Current() (*Session, error) {
	var session Session
	found, err := m.files.Get(recordName, &session)
	if err != nil {
		return nil, fmt.Errorf("adminsession: load session: %w", err)
	}
	if !found {
		return nil, ErrNotLoggedIn
	}

	if _, err := m.Verify(session.Token); err != nil {
		if delErr := m.files.Delete(recordName); delErr != nil {
			logger.Warn("adminsession: drop stale session", "err", delErr)
		}
		return nil, ErrNotLoggedIn
	}

	return &session, nil
}

// LoggedIn reports whether a valid session exists.
func (m *Manager) LoggedIn() bool {
	_, err := m.Current()
	return err == nil
}

// Verify parses and validates a session token.
func (m *Manager) Verify(token string) (*Claims, error) {
	parsed, err := jwt.ParseWithClaims(token, &Claims{}, func(tok *jwt.Token) (interface{}, error) {
		return m.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, err
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid {
		return nil, jwt.ErrTokenInvalidClaims
	}

	return claims, nil
}

// Logout discards the local session. Nothing is sent to the backend.
func (m *Manager) Logout() error {
	return m.files.Delete(recordName)
}

// ChangePassword updates the admin credential on the backend. Requires a
// live session; the confirmation must repeat the new password exactly.
func (m *Manager) ChangePassword(ctx context.Context, oldPassword, newPassword, confirmation string) error {
	if _, err := m.Current(); err != nil {
		return err
	}
	if newPassword != confirmation {
		return ErrPasswordMismatch
	}
	return m.backend.UpdatePassword(ctx, oldPassword, newPassword)
}

func (m *Manager) issueToken(username, role string, now time.Time) (string, error) {
	claims := Claims{
		Username: username,
		Role:     role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
}
