package handler

// PageMeta describes the pagination state handed to templates.
type PageMeta struct {
	TotalItems  int
	TotalPages  int
	CurrentPage int
	PageSize    int
	HasPrev     bool
	HasNext     bool
	PrevPage    int
	NextPage    int
}

// Paginate slices items into the requested page. Out-of-range page
// numbers are clamped to the nearest valid page, so a too-large page
// yields the last page and anything below one yields the first.
func Paginate[T any](items []T, page, pageSize int) ([]T, PageMeta) {
	if pageSize <= 0 {
		pageSize = 1
	}
	totalItems := len(items)
	totalPages := (totalItems + pageSize - 1) / pageSize
	if totalPages < 1 {
		totalPages = 1
	}
	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}

	start := (page - 1) * pageSize
	end := start + pageSize
	if start > totalItems {
		start = totalItems
	}
	if end > totalItems {
		end = totalItems
	}

	meta := PageMeta{
		TotalItems:  totalItems,
		TotalPages:  totalPages,
		CurrentPage: page,
		PageSize:    pageSize,
		HasPrev:     page > 1,
		HasNext:     page < totalPages,
		PrevPage:    page - 1,
		NextPage:    page + 1,
	}
	return items[start:end], meta
}
