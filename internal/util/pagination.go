package util

const DefaultPageSize = 10

const maxPageSize = 100

// Calculate turns a 1-based page and requested size into an
// offset/limit window, clamping out-of-range values.
func Calculate(page, size int) (offset, limit int) {
	if page < 1 {
		page = 1
	}
	if size <= 0 || size > maxPageSize {
		size = DefaultPageSize
	}
	return (page - 1) * size, size
}
