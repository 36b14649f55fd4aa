package controllers

// Ellipsis marks a non-clickable gap in the page-number window.
const Ellipsis = -1

// PageNumbers computes the displayed page-number window: page 1 and the last
// page are always present, plus up to two pages on either side of the current
// page, with Ellipsis markers for the gaps. Returns nil when there is a
// single page or less, in which case no control is rendered.
func PageNumbers(currentPage, totalPages int) []int {
	if totalPages <= 1 {
		return nil
	}

	const delta = 2
	pages := make([]int, 0, 2*delta+5)

	if currentPage-delta > 2 {
		pages = append(pages, 1, Ellipsis)
	} else {
		pages = append(pages, 1)
	}

	for i := max(2, currentPage-delta); i <= min(totalPages-1, currentPage+delta); i++ {
		pages = append(pages, i)
	}

	if currentPage+delta < totalPages-1 {
		pages = append(pages, Ellipsis, totalPages)
	} else {
		pages = append(pages, totalPages)
	}

	return pages
}
