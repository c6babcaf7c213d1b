package service

import (
	"regexp"
	"sort"
	"strings"

	"github.com/adminhub/console-api/internal/core/domain"
	"github.com/adminhub/console-api/internal/core/ports"
)

// emailPattern matches the local@domain.tld shape. Intentionally permissive:
// no whitespace, exactly one @, a dot in the domain.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// FieldErrors maps field names to a single human-readable message each. It is
// returned by the mutation validators; a non-nil value blocks the store call
// entirely.
type FieldErrors map[string]string

func (fe FieldErrors) Error() string {
	fields := make([]string, 0, len(fe))
	for f := range fe {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	msgs := make([]string, 0, len(fe))
	for _, f := range fields {
		msgs = append(msgs, f+": "+fe[f])
	}
	return strings.Join(msgs, "; ")
}

// ValidateNewUser enforces the caller-side contract before Add: required
// name/email/role, well-formed email, and email/phone uniqueness against the
// existing collection. Returns nil when the input is acceptable.
func ValidateNewUser(input ports.UserInput, existing []domain.User) FieldErrors {
	errs := FieldErrors{}

	if strings.TrimSpace(input.Name) == "" {
		errs["name"] = "name is required"
	}

	checkEmail(errs, input.Email, existing, 0)

	if !input.Role.Valid() {
		errs["role"] = "role must be one of Admin, Manager, Viewer"
	}

	checkPhone(errs, input.Phone, existing, 0)

	if len(errs) == 0 {
		return nil
	}
	return errs
}

// ValidateUserPatch enforces the same contract before Update. Only fields
// present in the patch are checked; uniqueness ignores the record being
// edited.
func ValidateUserPatch(id int, patch ports.UserPatch, existing []domain.User) FieldErrors {
	errs := FieldErrors{}

	if patch.Name != nil && strings.TrimSpace(*patch.Name) == "" {
		errs["name"] = "name is required"
	}
	if patch.Email != nil {
		checkEmail(errs, *patch.Email, existing, id)
	}
	if patch.Role != nil && !patch.Role.Valid() {
		errs["role"] = "role must be one of Admin, Manager, Viewer"
	}
	if patch.Phone != nil {
		checkPhone(errs, *patch.Phone, existing, id)
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

// checkEmail validates shape and case-insensitive uniqueness. selfID excludes
// the record being edited (0 for creation).
func checkEmail(errs FieldErrors, email string, existing []domain.User, selfID int) {
	if strings.TrimSpace(email) == "" {
		errs["email"] = "email is required"
		return
	}
	if !emailPattern.MatchString(email) {
		errs["email"] = "please enter a valid email address"
		return
	}
	for _, u := range existing {
		if u.ID != selfID && strings.EqualFold(u.Email, email) {
			errs["email"] = "a user with this email already exists"
			return
		}
	}
}

// checkPhone validates exact-match uniqueness for non-blank phones.
func checkPhone(errs FieldErrors, phone string, existing []domain.User, selfID int) {
	if strings.TrimSpace(phone) == "" {
		return
	}
	for _, u := range existing {
		if u.ID != selfID && u.Phone == phone {
			errs["phone"] = "a user with this phone already exists"
			return
		}
	}
}
