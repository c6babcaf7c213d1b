package service

import (
	"reflect"
	"testing"

	"github.com/adminhub/console-api/internal/core/domain"
)

func namedUser(id int, name, email, city, company string) domain.User {
	return domain.User{ID: id, Name: name, Email: email, City: city, Company: company, Role: domain.RoleViewer}
}

func names(users []domain.User) []string {
	out := make([]string, len(users))
	for i, u := range users {
		out[i] = u.Name
	}
	return out
}

func TestApplyView_NoCriteriaSortsByName(t *testing.T) {
	users := []domain.User{
		namedUser(1, "Bob", "bob@example.com", "NY", ""),
		namedUser(2, "alice", "alice@example.com", "LA", ""),
		namedUser(3, "Carol", "carol@example.com", "NY", ""),
	}

	got := ApplyView(users, domain.Filters{}, domain.DefaultSort)

	// Locale-aware compare orders case-insensitively: alice < Bob < Carol.
	want := []string{"alice", "Bob", "Carol"}
	if !reflect.DeepEqual(names(got), want) {
		t.Errorf("expected %v, got %v", want, names(got))
	}
}

func TestApplyView_SearchMatchesNameOrEmail(t *testing.T) {
	users := []domain.User{
		namedUser(1, "Bob", "bob@example.com", "NY", ""),
		namedUser(2, "alice", "alice@example.com", "LA", ""),
		namedUser(3, "Carol", "carol@example.com", "NY", ""),
	}

	got := ApplyView(users, domain.Filters{Search: "a"}, domain.DefaultSort)
	want := []string{"alice", "Carol"}
	if !reflect.DeepEqual(names(got), want) {
		t.Errorf("search 'a': expected %v, got %v", want, names(got))
	}

	// Email-only match.
	got = ApplyView(users, domain.Filters{Search: "bob@"}, domain.DefaultSort)
	if len(got) != 1 || got[0].Name != "Bob" {
		t.Errorf("search 'bob@': expected [Bob], got %v", names(got))
	}

	// Case-insensitive.
	got = ApplyView(users, domain.Filters{Search: "CAROL"}, domain.DefaultSort)
	if len(got) != 1 || got[0].Name != "Carol" {
		t.Errorf("search 'CAROL': expected [Carol], got %v", names(got))
	}
}

func TestApplyView_CityFilter(t *testing.T) {
	users := []domain.User{
		namedUser(1, "Bob", "bob@example.com", "NY", ""),
		namedUser(2, "alice", "alice@example.com", "LA", ""),
		namedUser(3, "Carol", "carol@example.com", "NY", ""),
	}

	got := ApplyView(users, domain.Filters{Cities: []string{"NY"}}, domain.DefaultSort)
	want := []string{"Bob", "Carol"}
	if !reflect.DeepEqual(names(got), want) {
		t.Errorf("city NY: expected %v, got %v", want, names(got))
	}

	got = ApplyView(users, domain.Filters{Cities: []string{"NY", "LA"}}, domain.DefaultSort)
	if len(got) != 3 {
		t.Errorf("city NY+LA: expected all 3, got %d", len(got))
	}
}

func TestApplyView_RoleFilter(t *testing.T) {
	users := []domain.User{
		{ID: 1, Name: "Bob", Role: domain.RoleAdmin},
		{ID: 2, Name: "alice", Role: domain.RoleViewer},
	}

	got := ApplyView(users, domain.Filters{Role: domain.RoleAdmin}, domain.DefaultSort)
	if len(got) != 1 || got[0].Name != "Bob" {
		t.Errorf("role filter: expected [Bob], got %v", names(got))
	}
}

func TestApplyView_CombinedCriteria(t *testing.T) {
	users := []domain.User{
		namedUser(1, "Bob", "bob@example.com", "NY", ""),
		namedUser(2, "alice", "alice@example.com", "LA", ""),
		namedUser(3, "Carol", "carol@example.com", "NY", ""),
	}

	got := ApplyView(users, domain.Filters{Search: "a", Cities: []string{"NY"}}, domain.DefaultSort)
	if len(got) != 1 || got[0].Name != "Carol" {
		t.Errorf("search+city: expected [Carol], got %v", names(got))
	}
}

func TestApplyView_SortByCompanyDescending(t *testing.T) {
	users := []domain.User{
		namedUser(1, "Bob", "b@e.com", "", "Acme"),
		namedUser(2, "alice", "a@e.com", "", "Zenith"),
		namedUser(3, "Carol", "c@e.com", "", ""), // absent company sorts as empty string
	}

	got := ApplyView(users, domain.Filters{}, domain.SortConfig{Field: domain.SortByCompany, Order: domain.SortDesc})
	want := []string{"alice", "Bob", "Carol"}
	if !reflect.DeepEqual(names(got), want) {
		t.Errorf("company desc: expected %v, got %v", want, names(got))
	}
}

func TestApplyView_PureFunction(t *testing.T) {
	users := []domain.User{
		namedUser(1, "Bob", "bob@example.com", "NY", ""),
		namedUser(2, "alice", "alice@example.com", "LA", ""),
	}
	filters := domain.Filters{Search: "o"}
	cfg := domain.DefaultSort

	first := ApplyView(users, filters, cfg)
	second := ApplyView(users, filters, cfg)

	if !reflect.DeepEqual(first, second) {
		t.Error("ApplyView must return identical output for identical input")
	}

	// Source slice must not be reordered.
	if users[0].Name != "Bob" || users[1].Name != "alice" {
		t.Error("ApplyView must not mutate its input")
	}
}
