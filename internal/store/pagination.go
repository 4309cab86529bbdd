package store

// Pagination describes one page of a result set. Pages are 1-indexed;
// a requested page past the end is not an error, it is an empty page.
type Pagination struct {
	Total       int64 `json:"total"`
	PerPage     int   `json:"per_page"`
	CurrentPage int   `json:"current_page"`
	TotalPages  int   `json:"total_pages"`
	HasPrev     bool  `json:"has_prev"`
	HasNext     bool  `json:"has_next"`
}

// Paginate computes page metadata from a total row count. The page is
// clamped to >= 1; total pages is a ceiling division with a minimum of 1
// so an empty result set still renders as one (empty) page.
func Paginate(total int64, page, perPage int) Pagination {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = 1
	}

	totalPages := int((total + int64(perPage) - 1) / int64(perPage))
	if totalPages < 1 {
		totalPages = 1
	}

	return Pagination{
		Total:       total,
		PerPage:     perPage,
		CurrentPage: page,
		TotalPages:  totalPages,
		HasPrev:     page > 1,
		HasNext:     page < totalPages,
	}
}

// Offset is the row offset to request from storage for this page.
func (p Pagination) Offset() int {
	return (p.CurrentPage - 1) * p.PerPage
}

// PrevPage and NextPage are clamped neighbours for link rendering.
func (p Pagination) PrevPage() int {
	if p.CurrentPage <= 1 {
		return 1
	}
	return p.CurrentPage - 1
}

func (p Pagination) NextPage() int {
	if p.CurrentPage >= p.TotalPages {
		return p.TotalPages
	}
	return p.CurrentPage + 1
}
