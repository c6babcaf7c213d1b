package service

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/adminhub/console-api/internal/core/domain"
)

// ApplyView computes the visible subset: filter by search text, selected
// cities and role, then order by the configured field using locale-aware
// comparison. Pure function over its inputs; the source slice is never
// mutated.
func ApplyView(users []domain.User, filters domain.Filters, cfg domain.SortConfig) []domain.User {
	visible := make([]domain.User, 0, len(users))

	search := strings.ToLower(strings.TrimSpace(filters.Search))
	citySet := make(map[string]struct{}, len(filters.Cities))
	for _, c := range filters.Cities {
		citySet[c] = struct{}{}
	}

	for _, u := range users {
		if search != "" &&
			!strings.Contains(strings.ToLower(u.Name), search) &&
			!strings.Contains(strings.ToLower(u.Email), search) {
			continue
		}
		if len(citySet) > 0 {
			if _, ok := citySet[u.City]; !ok {
				continue
			}
		}
		if filters.Role != "" && u.Role != filters.Role {
			continue
		}
		visible = append(visible, u)
	}

	// Collators carry an internal buffer, so build one per call rather than
	// sharing across goroutines.
	coll := collate.New(language.Und)
	key := sortKey(cfg.Field)

	sort.SliceStable(visible, func(i, j int) bool {
		cmp := coll.CompareString(key(visible[i]), key(visible[j]))
		if cfg.Order == domain.SortDesc {
			return cmp > 0
		}
		return cmp < 0
	})

	return visible
}

func sortKey(field domain.SortField) func(domain.User) string {
	if field == domain.SortByCompany {
		return func(u domain.User) string { return u.Company }
	}
	return func(u domain.User) string { return u.Name }
}
