package services

import "math"

const (
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// NormalizePage clamps 1-based page numbers and page sizes.
func NormalizePage(page int, limit int) (int, int) {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 {
		limit = DefaultPageSize
	}
	if limit > MaxPageSize {
		limit = MaxPageSize
	}
	// (page-1)*limit must fit in an int.
	if page > math.MaxInt/limit {
		page = math.MaxInt / limit
	}
	return page, limit
}

func TotalPages(total int, limit int) int {
	if total <= 0 || limit <= 0 {
		return 0
	}
	return (total + limit - 1) / limit
}
