// Package paging converts between 1-based page numbers and the backend's
// skip/limit query parameters, and estimates totals for list responses that
// do not report one.
package paging

// DefaultPageSize is the page size used by the dashboard views.
const DefaultPageSize = 10

// Pager describes one page of a listing. Page is 1-based.
type Pager struct {
	Page     int
	PageSize int
}

// New returns a Pager clamped to sane values.
func New(page, pageSize int) Pager {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	return Pager{Page: page, PageSize: pageSize}
}

// Skip returns the number of records before this page.
func (p Pager) Skip() int {
	return (p.Page - 1) * p.PageSize
}

// Limit returns the page size.
func (p Pager) Limit() int {
	return p.PageSize
}

// EstimateTotal derives a usable total record count from one page of results.
//
// When the server reported a total, that wins. Otherwise a short page means
// the listing ends here, so skip+returned is exact. A full page only proves
// at least one more record may exist, so the estimate is skip+returned+1.
// The full-page estimate deliberately under-reports larger collections; the
// view corrects itself as later pages load.
func EstimateTotal(skip, returned, limit, reportedTotal int, totalKnown bool) int {
	if totalKnown {
		return reportedTotal
	}
	if returned < limit {
		return skip + returned
	}
	return skip + returned + 1
}

// TotalPages returns the page count for total records, never less than 1.
func TotalPages(total, pageSize int) int {
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	if total <= 0 {
		return 1
	}
	pages := total / pageSize
	if total%pageSize != 0 {
		pages++
	}
	return pages
}
