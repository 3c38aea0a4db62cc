package search

// buildSort derives the page ordering from a validated spec. Relevance without
// a keyword degrades to newest.
func buildSort(spec *FilterSpec) SortSpec {
	key := spec.SortBy
	if key == SortRelevance && spec.Term == "" {
		key = SortNewest
	}
	return SortSpec{
		Key:     key,
		Desc:    spec.SortOrder == OrderDesc,
		Keyword: spec.Term,
	}
}

// Pagination describes the full match set, not just the returned page.
type Pagination struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int   `json:"total_pages"`
}

// paginate computes the page window. A page past the end yields an empty
// window with correct totals, never an error.
func paginate(total int64, page, limit int) (Pagination, int) {
	totalPages := int((total + int64(limit) - 1) / int64(limit))
	return Pagination{
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages,
	}, (page - 1) * limit
}
