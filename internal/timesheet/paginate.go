package timesheet

import "time"

// Default page size for listing queries.
const DefaultPageSize = 10

// ListOptions carries the recognized listing filters with their
// defaults: 1-based page number, optional case-insensitive substring
// search, optional equality filters and an optional inclusive date
// range. Filters apply before counting and before paging; the count and
// the page are independent queries, so totals can be one page stale
// under concurrent writes.
type ListOptions struct {
	Page        int
	PageSize    int
	Search      string
	Status      string
	Team        string
	ProjectType string
	MemberID    uint
	From        time.Time
	To          time.Time
}

// Limit returns the effective page size.
func (o ListOptions) Limit() int {
	if o.PageSize > 0 {
		return o.PageSize
	}
	return DefaultPageSize
}

// Offset returns the row offset for the requested page.
func (o ListOptions) Offset() int {
	page := o.Page
	if page < 1 {
		page = 1
	}
	return (page - 1) * o.Limit()
}

// Page slices one page out of an in-memory collection. Pages past the
// end yield an empty, non-nil slice.
func Page[T any](items []T, pageNo, pageSize int) []T {
	if pageNo < 1 {
		pageNo = 1
	}
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}

	start := (pageNo - 1) * pageSize
	if start >= len(items) {
		return []T{}
	}

	end := start + pageSize
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}
