package pagination

const (
	// DefaultPageSize is used when a caller asks for a page without a size.
	DefaultPageSize = 20
	// MaxPageSize caps the number of rows returned by one page.
	MaxPageSize = 200
)

// Normalize clamps a 1-based page number and page size to sane values.
func Normalize(page, pageSize int) (int, int) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	if pageSize > MaxPageSize {
		pageSize = MaxPageSize
	}
	return page, pageSize
}

// LimitOffset converts a 1-based page into SQL LIMIT/OFFSET values.
func LimitOffset(page, pageSize int) (limit, offset int) {
	page, pageSize = Normalize(page, pageSize)
	return pageSize, (page - 1) * pageSize
}

// TotalPages returns how many pages of pageSize are needed to hold total rows.
func TotalPages(total, pageSize int) int {
	if total <= 0 {
		return 0
	}
	_, pageSize = Normalize(1, pageSize)
	return (total + pageSize - 1) / pageSize
}
