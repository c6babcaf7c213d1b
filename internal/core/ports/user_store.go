package ports

import (
	"context"

	"github.com/adminhub/console-api/internal/core/domain"
)

// UserInput carries the caller-supplied fields for a new user record.
// Identifier and timestamps are assigned by the store.
type UserInput struct {
	Name    string
	Email   string
	Role    domain.Role
	Company string
	City    string
	Website string
	Phone   string
	Active  bool
}

// UserPatch is a partial update. Nil fields are left untouched.
type UserPatch struct {
	Name    *string
	Email   *string
	Role    *domain.Role
	Company *string
	City    *string
	Website *string
	Phone   *string
	Active  *bool
}

// FilterPatch merges into the store's current filter criteria. Nil fields are
// left untouched; a non-nil empty value clears that criterion.
type FilterPatch struct {
	Search *string
	Cities *[]string
	Role   *domain.Role
}

// StoreView is a snapshot of the store for presentation: the derived
// (filtered, sorted) subset plus the state that produced it.
type StoreView struct {
	Users   []domain.User
	Total   int
	Loading bool
	Error   string
	Filters domain.Filters
	Sort    domain.SortConfig
}

// UserStore owns the canonical in-memory user collection. It performs no
// authorization: callers consult the permission matrix first.
type UserStore interface {
	// Fetch replaces the collection with records imported from the remote
	// directory. On failure the previous collection is kept and the error is
	// retained on the store; a later call clears it.
	Fetch(ctx context.Context) error
	Add(input UserInput) domain.User
	Update(id int, patch UserPatch) (domain.User, bool)
	Remove(id int) bool
	SetFilters(patch FilterPatch)
	SetSort(cfg domain.SortConfig)
	// View returns the current derived view snapshot.
	View() StoreView
	// All returns a copy of the full collection regardless of filters.
	All() []domain.User
}
