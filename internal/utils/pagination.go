// internal/utils/pagination.go
package utils

import "strconv"

const (
	DefaultPage  = 1
	DefaultLimit = 20
)

// ParsePageLimit normalizes raw page/limit query values. An absent value
// takes its default, so limit alone still narrows the window. Non-numeric
// input resets both to the defaults; values below 1 are normalized too.
func ParsePageLimit(pageStr, limitStr string) (page, limit int) {
	page, limit = DefaultPage, DefaultLimit

	if pageStr != "" {
		p, err := strconv.Atoi(pageStr)
		if err != nil {
			return DefaultPage, DefaultLimit
		}
		page = p
	}
	if limitStr != "" {
		l, err := strconv.Atoi(limitStr)
		if err != nil {
			return DefaultPage, DefaultLimit
		}
		limit = l
	}

	if page < 1 {
		page = DefaultPage
	}
	if limit < 1 {
		limit = DefaultLimit
	}
	return page, limit
}

// Paginate slices an already-sorted sequence to the window
// [(page-1)*limit, page*limit). Out-of-range pages yield an empty slice, so
// walking page=1,2,... with a fixed limit partitions the sequence with no
// overlap and no gaps.
func Paginate[T any](items []T, page, limit int) []T {
	start := (page - 1) * limit
	if start >= len(items) {
		return []T{}
	}
	end := start + limit
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}
