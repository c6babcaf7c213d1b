package service

import (
	"context"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/adminhub/console-api/internal/core/domain"
	"github.com/adminhub/console-api/internal/core/ports"
)

// UserStore holds the canonical in-memory user collection. Mutations run
// atomically under the mutex; Fetch releases it across the network call, so
// overlapping fetches race and the last writer wins. Callers are expected not
// to trigger concurrent fetches.
type UserStore struct {
	directory ports.DirectoryClient
	log       zerolog.Logger

	mu      sync.Mutex
	users   []domain.User
	loading bool
	lastErr string
	filters domain.Filters
	sort    domain.SortConfig

	searchDebounce *Debouncer

	// now and pickRole are swappable for tests.
	now      func() time.Time
	pickRole func() domain.Role
}

// NewUserStore creates an empty store. searchDelay is the quiescence window
// applied to search-filter changes; zero disables debouncing.
func NewUserStore(directory ports.DirectoryClient, searchDelay time.Duration, log zerolog.Logger) *UserStore {
	s := &UserStore{
		directory: directory,
		log:       log,
		sort:      domain.DefaultSort,
		now:       func() time.Time { return time.Now().UTC() },
		pickRole:  randomRole,
	}
	s.searchDebounce = NewDebouncer(searchDelay)
	return s
}

// randomRole draws uniformly from the three roles. The directory has no role
// concept, so every import reassigns roles arbitrarily.
func randomRole() domain.Role {
	return domain.Roles[rand.N(len(domain.Roles))]
}

// Fetch imports the directory, replacing the whole collection on success. On
// failure the previous collection is untouched and the error message is
// retained until the next call.
func (s *UserStore) Fetch(ctx context.Context) error {
	s.mu.Lock()
	s.loading = true
	s.lastErr = ""
	s.mu.Unlock()

	records, err := s.directory.FetchUsers(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false

	if err != nil {
		s.lastErr = err.Error()
		s.log.Error().Err(err).Msg("directory fetch failed")
		return err
	}

	now := s.now()
	imported := make([]domain.User, 0, len(records))
	for _, r := range records {
		imported = append(imported, domain.User{
			ID:        r.ID,
			Name:      r.Name,
			Email:     r.Email,
			Role:      s.pickRole(),
			Company:   r.Company,
			City:      r.City,
			Website:   r.Website,
			Phone:     r.Phone,
			Active:    true,
			CreatedAt: now,
			UpdatedAt: now,
		})
	}
	s.users = imported

	s.log.Info().Int("count", len(imported)).Msg("directory synced")
	return nil
}

// Add assigns the next identifier (max+1, or 1 when empty), stamps both
// timestamps, and prepends the record. Duplicate checks are the caller's
// contract; Add never fails.
func (s *UserStore) Add(input ports.UserInput) domain.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	maxID := 0
	for _, u := range s.users {
		if u.ID > maxID {
			maxID = u.ID
		}
	}

	now := s.now()
	user := domain.User{
		ID:        maxID + 1,
		Name:      input.Name,
		Email:     input.Email,
		Role:      input.Role,
		Company:   input.Company,
		City:      input.City,
		Website:   input.Website,
		Phone:     input.Phone,
		Active:    input.Active,
		CreatedAt: now,
		UpdatedAt: now,
	}
	s.users = append([]domain.User{user}, s.users...)

	return user
}

// Update merges the patch over the matching record and refreshes its update
// timestamp. A missing id is a no-op, not an error.
func (s *UserStore) Update(id int, patch ports.UserPatch) (domain.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.users {
		if s.users[i].ID != id {
			continue
		}
		applyPatch(&s.users[i], patch)
		s.users[i].UpdatedAt = s.now()
		return s.users[i], true
	}
	return domain.User{}, false
}

func applyPatch(u *domain.User, p ports.UserPatch) {
	if p.Name != nil {
		u.Name = *p.Name
	}
	if p.Email != nil {
		u.Email = *p.Email
	}
	if p.Role != nil {
		u.Role = *p.Role
	}
	if p.Company != nil {
		u.Company = *p.Company
	}
	if p.City != nil {
		u.City = *p.City
	}
	if p.Website != nil {
		u.Website = *p.Website
	}
	if p.Phone != nil {
		u.Phone = *p.Phone
	}
	if p.Active != nil {
		u.Active = *p.Active
	}
}

// Remove deletes the matching record if present; missing ids are a no-op.
func (s *UserStore) Remove(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.users {
		if s.users[i].ID == id {
			s.users = append(s.users[:i], s.users[i+1:]...)
			return true
		}
	}
	return false
}

// SetFilters merges the patch into the current criteria. Search changes go
// through the debouncer so bursts of keystrokes collapse into one update;
// city and role changes apply immediately.
func (s *UserStore) SetFilters(patch ports.FilterPatch) {
	s.mu.Lock()
	if patch.Cities != nil {
		s.filters.Cities = append([]string(nil), (*patch.Cities)...)
	}
	if patch.Role != nil {
		s.filters.Role = *patch.Role
	}
	s.mu.Unlock()

	if patch.Search != nil {
		search := *patch.Search
		s.searchDebounce.Trigger(func() {
			s.mu.Lock()
			s.filters.Search = search
			s.mu.Unlock()
		})
	}
}

// SetSort replaces the sort configuration.
func (s *UserStore) SetSort(cfg domain.SortConfig) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if cfg.Field == "" {
		cfg.Field = domain.SortByName
	}
	if cfg.Order == "" {
		cfg.Order = domain.SortAsc
	}
	s.sort = cfg
}

// View snapshots the derived view together with the state that produced it.
func (s *UserStore) View() ports.StoreView {
	s.mu.Lock()
	users := append([]domain.User(nil), s.users...)
	filters := s.filters
	filters.Cities = append([]string(nil), s.filters.Cities...)
	cfg := s.sort
	loading := s.loading
	lastErr := s.lastErr
	s.mu.Unlock()

	return ports.StoreView{
		Users:   ApplyView(users, filters, cfg),
		Total:   len(users),
		Loading: loading,
		Error:   lastErr,
		Filters: filters,
		Sort:    cfg,
	}
}

// All returns a copy of the full collection, ignoring filters.
func (s *UserStore) All() []domain.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.User(nil), s.users...)
}
