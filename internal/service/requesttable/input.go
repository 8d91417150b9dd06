package requesttable

import (
	"slices"
	"time"

	"github.com/easi-app/easi-server/internal/domain"
	"github.com/easi-app/easi-server/internal/service/table"
)

// TableInput selects, filters, orders and pages one request table view.
type TableInput struct {
	Table    ActiveTable
	SortBy   string
	Desc     bool
	Query    string
	From     *time.Time
	To       *time.Time
	Page     int
	PageSize int
}

// Validate checks all fields and collects all errors.
func (i *TableInput) Validate() error {
	var errs domain.FieldErrors

	if !i.Table.IsValid() {
		errs.Add("table", "must be open or closed")
	}
	if len(i.Query) > table.MaxQueryLength {
		errs.Add("q", "too long (max 200)")
	}
	if i.From != nil && i.To != nil && i.From.After(*i.To) {
		errs.Add("from", "must not be after to")
	}
	if i.Page < 0 {
		errs.Add("page", "must be positive")
	}
	if i.PageSize != 0 && !slices.Contains(table.PageSizes, i.PageSize) {
		errs.Add("page_size", "must be one of 10, 25, 50, 100")
	}

	return errs.Err()
}
