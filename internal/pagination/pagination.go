// Package pagination slices an ordered, already-formatted result set
// into fixed-size pages.
package pagination

// Paginate returns the half-open window [(page-1)*size, page*size) of
// items. A page past the end of the sequence yields an empty slice; the
// caller decides whether that is a not-found condition.
func Paginate[T any](items []T, page, size int) []T {
	if page < 1 || size < 1 {
		return []T{}
	}
	start := (page - 1) * size
	if start >= len(items) {
		return []T{}
	}
	end := start + size
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}
