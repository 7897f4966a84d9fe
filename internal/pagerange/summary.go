package pagerange

// Summary describes the slice of results shown on one page.
type Summary struct {
	Page        int  `json:"page"`
	PageSize    int  `json:"page_size"`
	TotalPages  int  `json:"total_pages"`
	TotalItems  int  `json:"total_items"`
	First       int  `json:"first"` // 1-based index of the first item on the page, 0 when empty
	Last        int  `json:"last"`
	HasPrevious bool `json:"has_previous"`
	HasNext     bool `json:"has_next"`
}

// TotalPages returns the number of pages needed for totalItems. An empty
// result set still has one page so a pagination control always has something
// to render.
func TotalPages(totalItems, pageSize int) int {
	if pageSize < 1 || totalItems < 1 {
		return 1
	}
	return (totalItems + pageSize - 1) / pageSize
}

// Summarize builds the summary for page, clamping page into the valid range.
func Summarize(page, pageSize, totalItems int) Summary {
	if pageSize < 1 {
		pageSize = 1
	}
	if totalItems < 0 {
		totalItems = 0
	}

	pages := TotalPages(totalItems, pageSize)
	page = clamp(page, 1, pages)

	s := Summary{
		Page:        page,
		PageSize:    pageSize,
		TotalPages:  pages,
		TotalItems:  totalItems,
		HasPrevious: page > 1,
		HasNext:     page < pages,
	}

	if totalItems > 0 {
		s.First = (page-1)*pageSize + 1
		s.Last = min(page*pageSize, totalItems)
	}

	return s
}

// Slice returns the items that belong on page.
func Slice[T any](items []T, page, pageSize int) []T {
	s := Summarize(page, pageSize, len(items))
	if s.First == 0 {
		return nil
	}
	return items[s.First-1 : s.Last]
}
