package domain

// SortField selects the column the derived view is ordered by.
type SortField string

const (
	SortByName    SortField = "name"
	SortByCompany SortField = "company"
)

// SortOrder is the direction of the ordering.
type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// Filters narrows the visible subset of the user collection. Zero values mean
// "no filtering" for each criterion.
type Filters struct {
	Search string   `json:"search"`
	Cities []string `json:"cities"`
	Role   Role     `json:"role"`
}

// SortConfig orders the visible subset.
type SortConfig struct {
	Field SortField `json:"field"`
	Order SortOrder `json:"order"`
}

// DefaultSort is the ordering applied before any client preference is set.
var DefaultSort = SortConfig{Field: SortByName, Order: SortAsc}
