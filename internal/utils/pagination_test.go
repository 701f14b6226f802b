// internal/utils/pagination_test.go
package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParsePageLimit(t *testing.T) {
	cases := []struct {
		page, limit         string
		wantPage, wantLimit int
	}{
		{"1", "10", 1, 10},
		{"3", "5", 3, 5},
		{"abc", "10", 1, DefaultLimit},
		{"2", "xyz", 1, DefaultLimit},
		{"", "", 1, DefaultLimit},
		{"", "5", 1, 5},
		{"2", "", 2, DefaultLimit},
		{"0", "10", 1, 10},
		{"-4", "10", 1, 10},
		{"2", "0", 2, DefaultLimit},
		{"2", "-1", 2, DefaultLimit},
	}

	for _, tc := range cases {
		page, limit := ParsePageLimit(tc.page, tc.limit)
		assert.Equal(t, tc.wantPage, page, "page=%q limit=%q", tc.page, tc.limit)
		assert.Equal(t, tc.wantLimit, limit, "page=%q limit=%q", tc.page, tc.limit)
	}
}

func TestPaginate(t *testing.T) {
	items := []string{"a", "b", "c", "d", "e"}

	assert.Equal(t, []string{"a", "b"}, Paginate(items, 1, 2))
	assert.Equal(t, []string{"c", "d"}, Paginate(items, 2, 2))
	assert.Equal(t, []string{"e"}, Paginate(items, 3, 2))
	assert.Empty(t, Paginate(items, 4, 2), "out-of-range pages are empty, not an error")
	assert.Empty(t, Paginate([]string{}, 1, 2))
	assert.Equal(t, items, Paginate(items, 1, 100))
}

func TestPaginatePartition(t *testing.T) {
	items := make([]int, 23)
	for i := range items {
		items[i] = i
	}

	const limit = 4
	seen := make(map[int]bool)
	for page := 1; ; page++ {
		chunk := Paginate(items, page, limit)
		if len(chunk) == 0 {
			break
		}
		for _, v := range chunk {
			assert.False(t, seen[v], "no overlap between pages")
			seen[v] = true
		}
	}

	assert.Len(t, seen, len(items), "no gaps: every item appears exactly once")
}
