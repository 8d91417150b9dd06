package requesttable

import (
	"time"

	"github.com/easi-app/easi-server/internal/domain"
	"github.com/easi-app/easi-server/internal/service/table"
)

// Filter narrows rows by a free-text query and a FilterDate range.
type Filter struct {
	Query string
	Dates table.DateRange
}

// SortRows orders rows in place by the given column.
func SortRows(rows []Row, cols []Column, columnID string, desc bool) error {
	return table.Sort(rows, cols, columnID, desc)
}

// FilterRows returns the rows matching f. The query is matched against the
// rendered text of every column.
func FilterRows(rows []Row, cols []Column, f Filter) []Row {
	rows = table.FilterDates(rows, f.Dates, func(r Row) *time.Time { return r.FilterDate })
	return table.Filter(rows, cols, f.Query)
}

// Paginate returns one page of rows.
func Paginate(rows []Row, page, pageSize int) (table.PageOf[Row], error) {
	return table.Paginate(rows, page, pageSize)
}

// FilterState keeps the rows in the given effective state.
func FilterState(rows []Row, state domain.RequestState) []Row {
	out := make([]Row, 0, len(rows))
	for _, r := range rows {
		if r.State == state {
			out = append(out, r)
		}
	}
	return out
}
