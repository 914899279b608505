package articles

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLastPage(t *testing.T) {
	cases := []struct {
		total int64
		want  int
	}{
		{0, -1},  // empty set: no redirect target, page 0 renders empty
		{1, 0},
		{3, 0},
		{4, 0},   // exactly one full page
		{5, 1},
		{8, 1},   // two full pages
		{9, 2},   // two full pages + one spillover
		{12, 2},
		{13, 3},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, LastPage(tc.total, PageSize), "total=%d", tc.total)
	}
}

func TestLastPageDefaultsSize(t *testing.T) {
	assert.Equal(t, LastPage(9, PageSize), LastPage(9, 0))
	assert.Equal(t, LastPage(9, PageSize), LastPage(9, -3))
}

// Every page up to the last must hold at least one row, and every row must
// land on exactly one page: the listing never renders an empty page while
// valid pages exist.
func TestLastPageCoversAllRows(t *testing.T) {
	for total := int64(1); total <= 100; total++ {
		last := LastPage(total, PageSize)

		for page := 0; page <= last; page++ {
			offset := int64(page * PageSize)
			onPage := total - offset
			if onPage > PageSize {
				onPage = PageSize
			}
			assert.Positivef(t, onPage, "total=%d page=%d", total, page)
		}

		// page past the end is really past the end
		assert.GreaterOrEqual(t, int64((last+1)*PageSize), total, "total=%d", total)
	}
}
