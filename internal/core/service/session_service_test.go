package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/adminhub/console-api/internal/core/domain"
)

// ---------------------------------------------------------------------------
// In-memory state store stub
// ---------------------------------------------------------------------------

type stubStateStore struct {
	session    *domain.SessionState
	theme      string
	themeSet   bool
	saveErr    error
	saveCalls  int
	clearCalls int
}

func (s *stubStateStore) SaveSession(_ context.Context, state domain.SessionState) error {
	s.saveCalls++
	if s.saveErr != nil {
		return s.saveErr
	}
	clone := state
	s.session = &clone
	return nil
}

func (s *stubStateStore) LoadSession(_ context.Context) (domain.SessionState, bool, error) {
	if s.session == nil {
		return domain.SessionState{}, false, nil
	}
	return *s.session, true, nil
}

func (s *stubStateStore) ClearSession(_ context.Context) error {
	s.clearCalls++
	s.session = nil
	return nil
}

func (s *stubStateStore) SaveTheme(_ context.Context, mode string) error {
	s.theme = mode
	s.themeSet = true
	return nil
}

func (s *stubStateStore) LoadTheme(_ context.Context) (string, bool, error) {
	return s.theme, s.themeSet, nil
}

func newTestSessions(store *stubStateStore) *SessionService {
	return NewSessionService(context.Background(), store, "secret", time.Hour, discardLogger)
}

// ---------------------------------------------------------------------------
// State machine
// ---------------------------------------------------------------------------

func TestSessionService_StartsUnauthenticated(t *testing.T) {
	svc := newTestSessions(&stubStateStore{})

	state := svc.Current()
	if state.Authenticated || state.Role != "" || state.Username != "" {
		t.Errorf("expected empty initial state, got %+v", state)
	}
}

func TestSessionService_LoginPersistsState(t *testing.T) {
	store := &stubStateStore{}
	svc := newTestSessions(store)

	state := svc.Login(context.Background(), domain.RoleManager)

	if !state.Authenticated || state.Role != domain.RoleManager {
		t.Fatalf("unexpected state: %+v", state)
	}
	if state.Username != "Manager User" {
		t.Errorf("expected synthesized username, got %q", state.Username)
	}
	if store.session == nil || store.session.Role != domain.RoleManager {
		t.Error("login must persist the state under the session key")
	}
}

func TestSessionService_LogoutClearsStateAndKey(t *testing.T) {
	store := &stubStateStore{}
	svc := newTestSessions(store)
	svc.Login(context.Background(), domain.RoleAdmin)

	state := svc.Logout(context.Background())

	if state.Authenticated || state.Role != "" || state.Username != "" {
		t.Errorf("logout must fully reset the state, got %+v", state)
	}
	if store.session != nil {
		t.Error("logout must remove the persisted session")
	}
	if store.clearCalls != 1 {
		t.Errorf("expected 1 clear call, got %d", store.clearCalls)
	}
}

func TestSessionService_LoginLogoutCycles(t *testing.T) {
	svc := newTestSessions(&stubStateStore{})

	svc.Login(context.Background(), domain.RoleViewer)
	svc.Logout(context.Background())
	state := svc.Login(context.Background(), domain.RoleAdmin)

	if state.Role != domain.RoleAdmin {
		t.Errorf("machine must cycle freely, got %+v", state)
	}
}

// ---------------------------------------------------------------------------
// Restore
// ---------------------------------------------------------------------------

func TestSessionService_RestoresPersistedSession(t *testing.T) {
	store := &stubStateStore{session: &domain.SessionState{
		Authenticated: true,
		Role:          domain.RoleManager,
		Username:      "Manager User",
	}}

	svc := newTestSessions(store)

	state := svc.Current()
	if !state.Authenticated || state.Role != domain.RoleManager {
		t.Errorf("expected restored session, got %+v", state)
	}
}

func TestSessionService_IgnoresMalformedPersistedSession(t *testing.T) {
	// Authenticated with an unknown role is malformed; fall back to empty.
	store := &stubStateStore{session: &domain.SessionState{
		Authenticated: true,
		Role:          "Superuser",
	}}

	svc := newTestSessions(store)
	if svc.Current().Authenticated {
		t.Error("malformed persisted state must fall back to unauthenticated")
	}
}

// ---------------------------------------------------------------------------
// Authenticate
// ---------------------------------------------------------------------------

func TestSessionService_Authenticate_Success(t *testing.T) {
	svc := newTestSessions(&stubStateStore{})

	token, state, err := svc.Authenticate(context.Background(), "manager@example.com", "manager123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if state.Role != domain.RoleManager {
		t.Errorf("expected Manager role, got %s", state.Role)
	}
	if token == "" {
		t.Fatal("expected a signed token")
	}

	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (interface{}, error) {
		return []byte("secret"), nil
	})
	if err != nil || !parsed.Valid {
		t.Fatalf("token does not verify: %v", err)
	}
	if claims["role"] != "Manager" || claims["username"] != "Manager User" {
		t.Errorf("unexpected claims: %v", claims)
	}
}

func TestSessionService_Authenticate_NormalizesEmail(t *testing.T) {
	svc := newTestSessions(&stubStateStore{})

	if _, _, err := svc.Authenticate(context.Background(), "  Admin@Example.COM ", "admin123"); err != nil {
		t.Fatalf("expected trimmed, case-folded email to match, got %v", err)
	}
}

func TestSessionService_Authenticate_Rejections(t *testing.T) {
	svc := newTestSessions(&stubStateStore{})

	cases := []struct{ email, password string }{
		{"admin@example.com", "wrong"},
		{"nobody@example.com", "admin123"},
		{"", ""},
	}
	for _, tc := range cases {
		_, _, err := svc.Authenticate(context.Background(), tc.email, tc.password)
		if !errors.Is(err, domain.ErrInvalidCredentials) {
			t.Errorf("(%q, %q): expected ErrInvalidCredentials, got %v", tc.email, tc.password, err)
		}
	}

	if svc.Current().Authenticated {
		t.Error("failed authentication must not transition the machine")
	}
}
