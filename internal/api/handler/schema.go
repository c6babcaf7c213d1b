package handler

import "time"

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// fieldErrorsResponse carries per-field validation messages for blocked
// mutations. The store is never touched when this is returned.
type fieldErrorsResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields"`
}

// --- Auth ---

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type sessionResponse struct {
	Authenticated bool   `json:"authenticated"`
	Role          string `json:"role,omitempty"`
	Username      string `json:"username,omitempty"`
}

type loginResponse struct {
	Token   string          `json:"token"`
	Session sessionResponse `json:"session"`
}

// --- Users ---

type createUserRequest struct {
	Name    string `json:"name"    validate:"required"`
	Email   string `json:"email"   validate:"required"`
	Role    string `json:"role"    validate:"required,oneof=Admin Manager Viewer"`
	Company string `json:"company"`
	City    string `json:"city"`
	Website string `json:"website"`
	Phone   string `json:"phone"`
	Active  *bool  `json:"active"`
}

// updateUserRequest is a partial update; absent fields stay untouched.
type updateUserRequest struct {
	Name    *string `json:"name"`
	Email   *string `json:"email"`
	Role    *string `json:"role" validate:"omitempty,oneof=Admin Manager Viewer"`
	Company *string `json:"company"`
	City    *string `json:"city"`
	Website *string `json:"website"`
	Phone   *string `json:"phone"`
	Active  *bool   `json:"active"`
}

type userResponse struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	Company   string    `json:"company,omitempty"`
	City      string    `json:"city,omitempty"`
	Website   string    `json:"website,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type filtersResponse struct {
	Search string   `json:"search"`
	Cities []string `json:"cities"`
	Role   string   `json:"role"`
}

type sortResponse struct {
	Field string `json:"field"`
	Order string `json:"order"`
}

// listUsersResponse is the derived view plus the store state that produced it.
type listUsersResponse struct {
	Data    []userResponse  `json:"data"`
	Total   int             `json:"total"`
	Visible int             `json:"visible"`
	Loading bool            `json:"loading"`
	Error   string          `json:"error,omitempty"`
	Filters filtersResponse `json:"filters"`
	Sort    sortResponse    `json:"sort"`
}

// setFiltersRequest merges into the current criteria; absent fields stay
// untouched, present-but-empty fields clear that criterion.
type setFiltersRequest struct {
	Search *string   `json:"search"`
	Cities *[]string `json:"cities"`
	Role   *string   `json:"role" validate:"omitempty,oneof=Admin Manager Viewer"`
}

type setSortRequest struct {
	Field string `json:"field" validate:"required,oneof=name company"`
	Order string `json:"order" validate:"required,oneof=asc desc"`
}

type syncResponse struct {
	Imported int `json:"imported"`
}

// --- Settings ---

type themeRequest struct {
	Mode string `json:"mode" validate:"required,oneof=light dark"`
}

type themeResponse struct {
	Mode string `json:"mode"`
}
