package table

// ColumnMeta is the JSON description of a column.
type ColumnMeta struct {
	ID       string `json:"id"`
	Header   string `json:"header"`
	Sortable bool   `json:"sortable"`
}

// RenderedRow is one row with a cell per column ID.
type RenderedRow struct {
	ID    string          `json:"id"`
	Cells map[string]Cell `json:"cells"`
}

// Rendered is a page of rows rendered for the front end.
type Rendered struct {
	Columns   []ColumnMeta  `json:"columns"`
	Rows      []RenderedRow `json:"rows"`
	Page      int           `json:"page"`
	PageSize  int           `json:"pageSize"`
	Total     int           `json:"total"`
	PageCount int           `json:"pageCount"`
}

// Render renders every row of p through cols. idOf supplies each row's ID.
func Render[R any](cols []Column[R], p PageOf[R], idOf func(R) string) Rendered {
	meta := make([]ColumnMeta, len(cols))
	for i, c := range cols {
		meta[i] = ColumnMeta{ID: c.ID, Header: c.Header, Sortable: c.Sortable()}
	}

	rows := make([]RenderedRow, len(p.Rows))
	for i, r := range p.Rows {
		cells := make(map[string]Cell, len(cols))
		for _, c := range cols {
			cells[c.ID] = c.Render(r)
		}
		rows[i] = RenderedRow{ID: idOf(r), Cells: cells}
	}

	return Rendered{
		Columns:   meta,
		Rows:      rows,
		Page:      p.Page,
		PageSize:  p.PageSize,
		Total:     p.Total,
		PageCount: p.PageCount,
	}
}
