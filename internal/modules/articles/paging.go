package articles

// PageSize is the fixed number of articles per admin listing page.
const PageSize = 4

// Page carries the zero-based page cursor for the listing UI.
type Page struct {
	Current int
	Last    int
}

// LastPage computes the zero-based index of the last listing page.
// A total that divides evenly means the last page is exactly full, so the
// index is total/size - 1; otherwise the remainder spills onto page
// floor(total/size). An empty set yields -1.
func LastPage(total int64, size int) int {
	if size <= 0 {
		size = PageSize
	}
	n := int64(size)
	if total%n == 0 {
		return int(total/n) - 1
	}
	return int(total / n)
}
