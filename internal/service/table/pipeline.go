package table

import (
	"slices"
	"strings"
	"time"

	"github.com/easi-app/easi-server/internal/domain"
)

// Page sizes offered by the table pager.
var PageSizes = []int{10, 25, 50, 100}

// DefaultPageSize is used when no page size is requested.
const DefaultPageSize = 10

// MaxQueryLength bounds the free-text filter.
const MaxQueryLength = 200

// Sort orders rows in place by the column with the given ID.
// The sort is stable: rows that compare equal keep their relative order.
func Sort[R any](rows []R, cols []Column[R], columnID string, desc bool) error {
	col, ok := Find(cols, columnID)
	if !ok || !col.Sortable() {
		return domain.NewValidationError("sort", "unknown or unsortable column "+columnID)
	}

	slices.SortStableFunc(rows, func(a, b R) int {
		c := col.compare(a, b)
		if desc {
			return -c
		}
		return c
	})
	return nil
}

// Filter returns the rows whose rendered cells contain query
// (case-insensitive, whitespace-normalized). An empty query keeps every row.
func Filter[R any](rows []R, cols []Column[R], query string) []R {
	q := domain.NormalizeSearchText(query)
	if q == "" {
		return rows
	}

	out := make([]R, 0, len(rows))
	for _, r := range rows {
		for _, c := range cols {
			if strings.Contains(domain.NormalizeSearchText(c.Render(r).Text), q) {
				out = append(out, r)
				break
			}
		}
	}
	return out
}

// DateRange is an inclusive date window; nil bounds are open.
type DateRange struct {
	From *time.Time
	To   *time.Time
}

// IsZero reports whether the range has no bounds.
func (d DateRange) IsZero() bool {
	return d.From == nil && d.To == nil
}

// Contains reports whether t falls within the range. A nil t is only
// contained by an unbounded range.
func (d DateRange) Contains(t *time.Time) bool {
	if d.IsZero() {
		return true
	}
	if t == nil {
		return false
	}
	if d.From != nil && t.Before(*d.From) {
		return false
	}
	if d.To != nil && t.After(*d.To) {
		return false
	}
	return true
}

// FilterDates keeps the rows whose date (as returned by dateOf) is within r.
func FilterDates[R any](rows []R, r DateRange, dateOf func(R) *time.Time) []R {
	if r.IsZero() {
		return rows
	}
	out := make([]R, 0, len(rows))
	for _, row := range rows {
		if r.Contains(dateOf(row)) {
			out = append(out, row)
		}
	}
	return out
}

// PageOf is one page of rows.
type PageOf[R any] struct {
	Rows      []R
	Page      int
	PageSize  int
	Total     int
	PageCount int
}

// Paginate slices rows into the requested 1-based page.
// Pages past the end are empty; page size must be one of PageSizes.
func Paginate[R any](rows []R, page, pageSize int) (PageOf[R], error) {
	if pageSize == 0 {
		pageSize = DefaultPageSize
	}
	if !slices.Contains(PageSizes, pageSize) {
		return PageOf[R]{}, domain.NewValidationError("page_size", "must be one of 10, 25, 50, 100")
	}
	if page <= 0 {
		page = 1
	}

	total := len(rows)
	pageCount := (total + pageSize - 1) / pageSize

	start := total
	if page-1 < pageCount {
		start = (page - 1) * pageSize
	}
	end := min(start+pageSize, total)

	return PageOf[R]{
		Rows:      rows[start:end],
		Page:      page,
		PageSize:  pageSize,
		Total:     total,
		PageCount: pageCount,
	}, nil
}
