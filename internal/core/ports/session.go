package ports

import (
	"context"

	"github.com/adminhub/console-api/internal/core/domain"
)

// StateStore is the durable key/value storage behind session and theme
// persistence. Whole-value reads and writes only.
type StateStore interface {
	SaveSession(ctx context.Context, state domain.SessionState) error
	// LoadSession returns the persisted state and whether one was present.
	// A malformed value is treated as absent.
	LoadSession(ctx context.Context) (domain.SessionState, bool, error)
	ClearSession(ctx context.Context) error

	SaveTheme(ctx context.Context, mode string) error
	LoadTheme(ctx context.Context) (string, bool, error)
}

// SessionService runs the two-state authentication machine and issues API
// tokens for authenticated sessions.
type SessionService interface {
	// Authenticate checks credentials against the fixed table and, on
	// success, logs the matching role in and returns a signed token.
	Authenticate(ctx context.Context, email, password string) (string, domain.SessionState, error)
	// Login transitions to Authenticated with a synthesized username. It
	// always succeeds for a valid role; credential checks are Authenticate's
	// concern.
	Login(ctx context.Context, role domain.Role) domain.SessionState
	Logout(ctx context.Context) domain.SessionState
	Current() domain.SessionState
}
