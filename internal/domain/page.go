package domain

const (
	defaultPageLimit = 20
	maxPageLimit     = 100
)

// PaginationParams carries page/limit values from the HTTP layer to the repo
// layer. Page is 1-indexed.
type PaginationParams struct {
	Page  int
	Limit int
}

// NewPaginationParams builds PaginationParams from optional query values.
// Missing or non-positive values fall back to page 1 and 20 items; the limit
// is capped at 100.
func NewPaginationParams(page, limit *int) PaginationParams {
	p := PaginationParams{Page: 1, Limit: defaultPageLimit}
	if page != nil && *page >= 1 {
		p.Page = *page
	}
	if limit != nil && *limit >= 1 {
		p.Limit = min(*limit, maxPageLimit)
	}
	return p
}

// Offset returns the zero-based row offset for a SQL OFFSET clause.
func (p PaginationParams) Offset() int {
	return (p.Page - 1) * p.Limit
}

// Page is one slice of a paginated listing plus the size of the whole listing.
type Page[T any] struct {
	Items []T
	Total int64
}
