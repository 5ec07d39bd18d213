package utils

import "strconv"

const (
	DefaultPageSize = 50
	MaxPageSize     = 100
)

// Pagination holds sanitized list parameters.
type Pagination struct {
	Page  int
	Limit int
}

// ParsePagination clamps raw query values to page >= 1 and 1 <= limit <= 100.
func ParsePagination(pageStr, limitStr string) Pagination {
	page, err := strconv.Atoi(pageStr)
	if err != nil || page < 1 {
		page = 1
	}

	limit, err := strconv.Atoi(limitStr)
	if err != nil || limit < 1 {
		limit = DefaultPageSize
	}
	if limit > MaxPageSize {
		limit = MaxPageSize
	}

	return Pagination{Page: page, Limit: limit}
}

// Offset returns the row offset for the current page.
func (p Pagination) Offset() int {
	return (p.Page - 1) * p.Limit
}
