package search

// SortBy selects the sort key for search results.
type SortBy string

const (
	SortByTitle      SortBy = "title"
	SortByCreatedAt  SortBy = "createdAt"
	SortByUpdatedAt  SortBy = "updatedAt"
	SortByUsageCount SortBy = "usageCount"
)

// SortDirection selects ascending or descending order.
type SortDirection string

const (
	SortAsc  SortDirection = "ASC"
	SortDesc SortDirection = "DESC"
)

// Options controls which fields a query is matched against, post-match
// filtering, and result ordering.
type Options struct {
	// CategoryID restricts results to a single category when set.
	CategoryID string
	// Tags keeps prompts sharing at least one tag with the list when
	// non-empty. Tag comparison is exact.
	Tags []string

	IncludeContent     bool
	IncludeDescription bool
	IncludeTags        bool

	SortBy        SortBy
	SortDirection SortDirection
}

// DefaultOptions matches against every field and sorts by title ascending.
func DefaultOptions() Options {
	return Options{
		IncludeContent:     true,
		IncludeDescription: true,
		IncludeTags:        true,
		SortBy:             SortByTitle,
		SortDirection:      SortAsc,
	}
}
