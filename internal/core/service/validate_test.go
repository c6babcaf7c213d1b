package service

import (
	"testing"

	"github.com/adminhub/console-api/internal/core/domain"
	"github.com/adminhub/console-api/internal/core/ports"
)

func existingUsers() []domain.User {
	return []domain.User{
		{ID: 1, Name: "Ana", Email: "ana@example.com", Phone: "555-0001", Role: domain.RoleAdmin},
		{ID: 2, Name: "Beto", Email: "beto@example.com", Phone: "555-0002", Role: domain.RoleViewer},
	}
}

func validInput() ports.UserInput {
	return ports.UserInput{Name: "Carla", Email: "carla@example.com", Role: domain.RoleManager, Active: true}
}

func TestValidateNewUser_Accepts(t *testing.T) {
	if errs := ValidateNewUser(validInput(), existingUsers()); errs != nil {
		t.Fatalf("expected no errors, got %v", errs)
	}
}

func TestValidateNewUser_RequiredName(t *testing.T) {
	in := validInput()
	in.Name = "   "
	errs := ValidateNewUser(in, nil)
	if errs == nil || errs["name"] == "" {
		t.Fatalf("expected name error, got %v", errs)
	}
}

func TestValidateNewUser_EmailShape(t *testing.T) {
	for _, bad := range []string{"", "plain", "no@tld", "two@@at.com", "sp ace@x.com"} {
		in := validInput()
		in.Email = bad
		errs := ValidateNewUser(in, nil)
		if errs == nil || errs["email"] == "" {
			t.Errorf("email %q: expected error, got %v", bad, errs)
		}
	}
}

func TestValidateNewUser_DuplicateEmailCaseInsensitive(t *testing.T) {
	in := validInput()
	in.Email = "ANA@Example.COM"
	errs := ValidateNewUser(in, existingUsers())
	if errs == nil || errs["email"] == "" {
		t.Fatalf("expected duplicate email error, got %v", errs)
	}
}

func TestValidateNewUser_DuplicatePhoneExactMatch(t *testing.T) {
	in := validInput()
	in.Phone = "555-0001"
	errs := ValidateNewUser(in, existingUsers())
	if errs == nil || errs["phone"] == "" {
		t.Fatalf("expected duplicate phone error, got %v", errs)
	}

	// Blank phone is fine even if another record has a blank phone.
	in.Phone = ""
	if errs := ValidateNewUser(in, existingUsers()); errs != nil {
		t.Fatalf("blank phone must be accepted, got %v", errs)
	}
}

func TestValidateNewUser_InvalidRole(t *testing.T) {
	in := validInput()
	in.Role = "Root"
	errs := ValidateNewUser(in, nil)
	if errs == nil || errs["role"] == "" {
		t.Fatalf("expected role error, got %v", errs)
	}
}

func TestValidateUserPatch_IgnoresOwnRecord(t *testing.T) {
	email := "ana@example.com"
	// Editing user 1 back to its own email must pass.
	if errs := ValidateUserPatch(1, ports.UserPatch{Email: &email}, existingUsers()); errs != nil {
		t.Fatalf("own email must be allowed on edit, got %v", errs)
	}
	// But assigning it to user 2 must fail.
	errs := ValidateUserPatch(2, ports.UserPatch{Email: &email}, existingUsers())
	if errs == nil || errs["email"] == "" {
		t.Fatalf("expected duplicate email error for other record, got %v", errs)
	}
}

func TestValidateUserPatch_OnlyChecksPresentFields(t *testing.T) {
	// A patch touching nothing validates nothing.
	if errs := ValidateUserPatch(1, ports.UserPatch{}, existingUsers()); errs != nil {
		t.Fatalf("empty patch must pass, got %v", errs)
	}

	empty := ""
	errs := ValidateUserPatch(1, ports.UserPatch{Name: &empty}, existingUsers())
	if errs == nil || errs["name"] == "" {
		t.Fatalf("blank name in patch must fail, got %v", errs)
	}
}

func TestFieldErrors_ErrorString(t *testing.T) {
	fe := FieldErrors{"email": "email is required", "name": "name is required"}
	want := "email: email is required; name: name is required"
	if fe.Error() != want {
		t.Errorf("expected %q, got %q", want, fe.Error())
	}
}
