package domain

import (
	"errors"
	"time"
)

// Role determines which actions a user may perform. There is no ordering
// between roles; authorization is an explicit per-action matrix (see
// permission.go), not a hierarchy.
type Role string

const (
	RoleAdmin   Role = "Admin"
	RoleManager Role = "Manager"
	RoleViewer  Role = "Viewer"
)

// Roles lists every valid role, in display order.
var Roles = []Role{RoleAdmin, RoleManager, RoleViewer}

// Valid reports whether r is one of the three known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleManager, RoleViewer:
		return true
	}
	return false
}

var ErrUserNotFound = errors.New("user not found")
var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrForbidden = errors.New("access forbidden")
var ErrNotAuthenticated = errors.New("not authenticated")

// User is a directory record managed by the console.
type User struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      Role      `json:"role"`
	Company   string    `json:"company,omitempty"`
	City      string    `json:"city,omitempty"`
	Website   string    `json:"website,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
