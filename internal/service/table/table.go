// Package table holds the column model shared by the request tables:
// declarative column descriptors with accessors, cell renderers and
// comparators, plus the sort/filter/paginate pipeline applied to derived rows.
package table

import (
	"cmp"
	"fmt"
	"time"
)

// DateLayout is the display format for dates in table cells.
const DateLayout = "01/02/2006"

// CellKind tells the front end how to present a cell.
type CellKind string

const (
	CellText     CellKind = "text"
	CellDate     CellKind = "date"
	CellLink     CellKind = "link"
	CellAction   CellKind = "action"
	CellRichText CellKind = "rich_text"
)

// Icon names rendered next to cell text.
const (
	IconWarning = "warning"
)

// Cell is the rendered content of one column for one row.
type Cell struct {
	Kind CellKind   `json:"kind"`
	Text string     `json:"text"`
	Href string     `json:"href,omitempty"`
	Date *time.Time `json:"date,omitempty"`
	Icon string     `json:"icon,omitempty"`
	// Truncate is the number of characters shown before a "read more" toggle.
	Truncate int `json:"truncate,omitempty"`
}

// TextCell renders plain text.
func TextCell(text string) Cell {
	return Cell{Kind: CellText, Text: text}
}

// DateCell renders a date, or fallback text when t is nil.
func DateCell(t *time.Time, fallback string) Cell {
	if t == nil {
		return TextCell(fallback)
	}
	return Cell{Kind: CellDate, Text: FormatDate(*t), Date: t}
}

// LinkCell renders text linking to href.
func LinkCell(text, href string) Cell {
	return Cell{Kind: CellLink, Text: text, Href: href}
}

// ActionCell renders a call-to-action link.
func ActionCell(text, href string) Cell {
	return Cell{Kind: CellAction, Text: text, Href: href}
}

// FormatDate formats t with DateLayout in UTC.
func FormatDate(t time.Time) string {
	return t.UTC().Format(DateLayout)
}

// Column describes one table column over rows of type R.
type Column[R any] struct {
	ID     string
	Header string
	// Accessor returns the raw value used for default sorting.
	Accessor func(R) any
	// Cell renders the column; nil renders the accessor value as text.
	Cell func(R) Cell
	// Compare orders two rows; nil falls back to CompareValues on Accessor.
	Compare func(a, b R) int
	// DisableSort removes the column from sortable columns.
	DisableSort bool
}

// Render returns the cell for row r.
func (c Column[R]) Render(r R) Cell {
	if c.Cell != nil {
		return c.Cell(r)
	}
	if c.Accessor == nil {
		return TextCell("")
	}
	switch v := c.Accessor(r).(type) {
	case *time.Time:
		return DateCell(v, "")
	case time.Time:
		return DateCell(&v, "")
	case nil:
		return TextCell("")
	case string:
		return TextCell(v)
	case *string:
		if v == nil {
			return TextCell("")
		}
		return TextCell(*v)
	default:
		return TextCell(fmt.Sprint(v))
	}
}

// Sortable reports whether rows can be ordered by this column.
func (c Column[R]) Sortable() bool {
	return !c.DisableSort && (c.Compare != nil || c.Accessor != nil)
}

func (c Column[R]) compare(a, b R) int {
	if c.Compare != nil {
		return c.Compare(a, b)
	}
	return CompareValues(c.Accessor(a), c.Accessor(b))
}

// CompareValues orders accessor values of the same kind.
// Nil values sort after non-nil values; mismatched kinds compare by their text form.
func CompareValues(a, b any) int {
	a, b = deref(a), deref(b)
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return 1
	case b == nil:
		return -1
	}

	switch av := a.(type) {
	case string:
		if bv, ok := b.(string); ok {
			return cmp.Compare(av, bv)
		}
	case int:
		if bv, ok := b.(int); ok {
			return cmp.Compare(av, bv)
		}
	case time.Time:
		if bv, ok := b.(time.Time); ok {
			return av.Compare(bv)
		}
	}
	return cmp.Compare(fmt.Sprint(a), fmt.Sprint(b))
}

func deref(v any) any {
	switch p := v.(type) {
	case *time.Time:
		if p == nil {
			return nil
		}
		return *p
	case *string:
		if p == nil {
			return nil
		}
		return *p
	}
	return v
}

// Find returns the column with the given ID.
func Find[R any](cols []Column[R], id string) (Column[R], bool) {
	for _, c := range cols {
		if c.ID == id {
			return c, true
		}
	}
	return Column[R]{}, false
}
