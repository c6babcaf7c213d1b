package domain

// Action is an operation on user records subject to authorization.
type Action string

const (
	ActionViewUsers  Action = "view_users"
	ActionAddUser    Action = "add_user"
	ActionEditUser   Action = "edit_user"
	ActionDeleteUser Action = "delete_user"
)

// permissions maps each action to the set of roles allowed to perform it.
// A plain lookup table: adding a role to an action grants it, nothing is
// inherited.
var permissions = map[Action]map[Role]struct{}{
	ActionViewUsers:  roleSet(RoleAdmin, RoleManager, RoleViewer),
	ActionAddUser:    roleSet(RoleAdmin, RoleManager),
	ActionEditUser:   roleSet(RoleAdmin, RoleManager),
	ActionDeleteUser: roleSet(RoleAdmin),
}

func roleSet(roles ...Role) map[Role]struct{} {
	set := make(map[Role]struct{}, len(roles))
	for _, r := range roles {
		set[r] = struct{}{}
	}
	return set
}

// IsAllowed reports whether role may perform action. An empty or unknown role
// is denied everything rather than treated as an error.
func IsAllowed(role Role, action Action) bool {
	allowed, ok := permissions[action]
	if !ok {
		return false
	}
	_, ok = allowed[role]
	return ok
}
