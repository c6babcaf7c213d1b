package service

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/adminhub/console-api/internal/core/domain"
	"github.com/adminhub/console-api/internal/core/ports"
)

// credential is one entry of the fixed login table. This is a mock: the
// console has no user registration, just one account per role.
type credential struct {
	passwordHash []byte
	role         domain.Role
}

// SessionService runs the two-state authentication machine, persisting every
// transition to the durable state store and issuing HS256 tokens for the API
// layer.
type SessionService struct {
	store     ports.StateStore
	jwtSecret string
	tokenTTL  time.Duration
	log       zerolog.Logger

	mu          sync.Mutex
	state       domain.SessionState
	credentials map[string]credential
}

// NewSessionService builds the service with the fixed credential table and
// attempts to restore a previously persisted session. A malformed or absent
// persisted value falls back to Unauthenticated.
func NewSessionService(ctx context.Context, store ports.StateStore, jwtSecret string, tokenTTL time.Duration, log zerolog.Logger) *SessionService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	s := &SessionService{
		store:       store,
		jwtSecret:   jwtSecret,
		tokenTTL:    tokenTTL,
		log:         log,
		credentials: mockCredentials(),
	}

	if state, ok, err := store.LoadSession(ctx); err != nil {
		log.Warn().Err(err).Msg("session restore failed, starting unauthenticated")
	} else if ok && state.Authenticated && state.Role.Valid() {
		s.state = state
		log.Info().Str("role", string(state.Role)).Msg("session restored")
	}

	return s
}

func mockCredentials() map[string]credential {
	table := map[string]credential{}
	for email, entry := range map[string]struct {
		password string
		role     domain.Role
	}{
		"admin@example.com":   {"admin123", domain.RoleAdmin},
		"manager@example.com": {"manager123", domain.RoleManager},
		"viewer@example.com":  {"viewer123", domain.RoleViewer},
	} {
		hash, err := bcrypt.GenerateFromPassword([]byte(entry.password), bcrypt.DefaultCost)
		if err != nil {
			panic("session: hashing mock credential: " + err.Error())
		}
		table[email] = credential{passwordHash: hash, role: entry.role}
	}
	return table
}

// Authenticate checks the credential table and, on a match, performs Login
// and returns a signed token for the API layer.
func (s *SessionService) Authenticate(ctx context.Context, email, password string) (string, domain.SessionState, error) {
	cred, ok := s.credentials[strings.ToLower(strings.TrimSpace(email))]
	if !ok || bcrypt.CompareHashAndPassword(cred.passwordHash, []byte(password)) != nil {
		return "", domain.SessionState{}, domain.ErrInvalidCredentials
	}

	state := s.Login(ctx, cred.role)

	token, err := s.generateToken(state)
	if err != nil {
		return "", domain.SessionState{}, err
	}

	return token, state, nil
}

// Login transitions to Authenticated with a username synthesized from the
// role, and persists the new state under the session key. It always succeeds.
func (s *SessionService) Login(ctx context.Context, role domain.Role) domain.SessionState {
	state := domain.SessionState{
		Authenticated: true,
		Role:          role,
		Username:      string(role) + " User",
	}

	s.mu.Lock()
	s.state = state
	s.mu.Unlock()

	if err := s.store.SaveSession(ctx, state); err != nil {
		s.log.Warn().Err(err).Msg("session persist failed")
	}
	s.log.Info().Str("role", string(role)).Msg("session authenticated")
	return state
}

// Logout transitions back to Unauthenticated unconditionally and removes the
// persisted session key.
func (s *SessionService) Logout(ctx context.Context) domain.SessionState {
	s.mu.Lock()
	s.state = domain.SessionState{}
	s.mu.Unlock()

	if err := s.store.ClearSession(ctx); err != nil {
		s.log.Warn().Err(err).Msg("session clear failed")
	}
	s.log.Info().Msg("session cleared")
	return domain.SessionState{}
}

// Current returns the present state of the machine.
func (s *SessionService) Current() domain.SessionState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *SessionService) generateToken(state domain.SessionState) (string, error) {
	claims := jwt.MapClaims{
		"username": state.Username,
		"role":     string(state.Role),
		"exp":      time.Now().Add(s.tokenTTL).Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}
