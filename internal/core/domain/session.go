package domain

// SessionState is the authentication state machine: either unauthenticated
// (zero value) or authenticated with a role and username. The two always move
// together: Authenticated=false implies Role and Username are empty.
type SessionState struct {
	Authenticated bool   `json:"authenticated"`
	Role          Role   `json:"role,omitempty"`
	Username      string `json:"username,omitempty"`
}
