package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaginate(t *testing.T) {
	tests := []struct {
		name       string
		total      int64
		page       int
		perPage    int
		wantPage   int
		wantPages  int
		wantPrev   bool
		wantNext   bool
		wantOffset int
	}{
		{"first of many", 25, 1, 10, 1, 3, false, true, 0},
		{"middle page", 25, 2, 10, 2, 3, true, true, 10},
		{"last page", 25, 3, 10, 3, 3, true, false, 20},
		{"exact fit", 20, 2, 10, 2, 2, true, false, 10},
		{"empty set still one page", 0, 1, 10, 1, 1, false, false, 0},
		{"zero page clamps to one", 25, 0, 10, 1, 3, false, true, 0},
		{"negative page clamps to one", 25, -5, 10, 1, 3, false, true, 0},
		{"beyond range keeps requested page", 25, 99, 10, 99, 3, true, false, 980},
		{"bad per page clamps to one", 3, 1, 0, 1, 3, false, true, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Paginate(tt.total, tt.page, tt.perPage)

			assert.Equal(t, tt.wantPage, p.CurrentPage)
			assert.Equal(t, tt.wantPages, p.TotalPages)
			assert.Equal(t, tt.wantPrev, p.HasPrev)
			assert.Equal(t, tt.wantNext, p.HasNext)
			assert.Equal(t, tt.wantOffset, p.Offset())
			assert.Equal(t, tt.total, p.Total)
		})
	}
}

func TestPaginationNeighbours(t *testing.T) {
	p := Paginate(30, 1, 10)
	assert.Equal(t, 1, p.PrevPage(), "prev clamps at the first page")
	assert.Equal(t, 2, p.NextPage())

	p = Paginate(30, 3, 10)
	assert.Equal(t, 2, p.PrevPage())
	assert.Equal(t, 3, p.NextPage(), "next clamps at the last page")
}
