package redis

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/adminhub/console-api/internal/core/domain"
)

// Storage keys. Whole-value reads and writes only; the session key exists
// only while a session is authenticated, the theme key persists once set.
const (
	sessionKey = "rbac_auth"
	themeKey   = "rbac_theme"
)

// StateStore persists session state and theme preference in Redis.
type StateStore struct {
	client *redis.Client
}

// NewStateStore wraps the given Redis client.
func NewStateStore(client *redis.Client) *StateStore {
	return &StateStore{client: client}
}

// SaveSession serializes the state under the session key.
func (s *StateStore) SaveSession(ctx context.Context, state domain.SessionState) error {
	raw, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}
	if err := s.client.Set(ctx, sessionKey, raw, 0).Err(); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

// LoadSession reads the persisted state. A missing or malformed value is
// reported as absent, not as an error.
func (s *StateStore) LoadSession(ctx context.Context) (domain.SessionState, bool, error) {
	raw, err := s.client.Get(ctx, sessionKey).Bytes()
	if err == redis.Nil {
		return domain.SessionState{}, false, nil
	}
	if err != nil {
		return domain.SessionState{}, false, fmt.Errorf("load session: %w", err)
	}

	var state domain.SessionState
	if err := json.Unmarshal(raw, &state); err != nil {
		return domain.SessionState{}, false, nil
	}
	return state, true, nil
}

// ClearSession removes the session key. Clearing an absent key is fine.
func (s *StateStore) ClearSession(ctx context.Context) error {
	if err := s.client.Del(ctx, sessionKey).Err(); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}

// SaveTheme stores the theme preference ("light" or "dark").
func (s *StateStore) SaveTheme(ctx context.Context, mode string) error {
	if err := s.client.Set(ctx, themeKey, mode, 0).Err(); err != nil {
		return fmt.Errorf("save theme: %w", err)
	}
	return nil
}

// LoadTheme reads the theme preference; absent is not an error.
func (s *StateStore) LoadTheme(ctx context.Context) (string, bool, error) {
	mode, err := s.client.Get(ctx, themeKey).Result()
	if err == redis.Nil {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("load theme: %w", err)
	}
	return mode, true, nil
}
