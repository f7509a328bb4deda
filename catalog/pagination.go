package catalog

// PageSize is the number of entries on one grid page.
const PageSize = 12

// Offset returns the listing offset of a 1-based page.
func Offset(page int) int {
	return (page - 1) * PageSize
}

// TotalPages returns how many pages count entries span.
func TotalPages(count int) int {
	if count <= 0 {
		return 0
	}
	return (count + PageSize - 1) / PageSize
}

// PageItem is one element of a pagination control: a page number or an ellipsis.
type PageItem struct {
	Number   int
	Ellipsis bool
}

// PageWindow returns at most seven items: the first and last page, the neighbours of
// current, and an ellipsis for each skipped run.
func PageWindow(current, total int) []PageItem {
	if total <= 5 {
		items := make([]PageItem, 0, total)
		for p := 1; p <= total; p++ {
			items = append(items, PageItem{Number: p})
		}
		return items
	}

	items := []PageItem{{Number: 1}}
	if current > 3 {
		items = append(items, PageItem{Ellipsis: true})
	}

	for p := max(2, current-1); p <= min(total-1, current+1); p++ {
		items = append(items, PageItem{Number: p})
	}

	if current < total-2 {
		items = append(items, PageItem{Ellipsis: true})
	}
	return append(items, PageItem{Number: total})
}
