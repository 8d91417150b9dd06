// Package trbtable serves the technical review board request tables.
package trbtable

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"github.com/easi-app/easi-server/internal/domain"
	"github.com/easi-app/easi-server/internal/i18n"
	"github.com/easi-app/easi-server/internal/service/table"
)

type trbRequestRepo interface {
	List(ctx context.Context, state domain.RequestState) ([]domain.TRBRequest, error)
}

type translations interface {
	For(lang string) i18n.Translator
}

// Service builds TRB request table pages.
type Service struct {
	requests trbRequestRepo
	i18n     translations
	log      *slog.Logger
}

// NewService creates a new TRB table service.
func NewService(log *slog.Logger, requests trbRequestRepo, tr translations) *Service {
	return &Service{
		requests: requests,
		i18n:     tr,
		log:      log.With("service", "trbtable"),
	}
}

// TableInput selects, filters, orders and pages the TRB table.
type TableInput struct {
	State    domain.RequestState
	SortBy   string
	Desc     bool
	Query    string
	Page     int
	PageSize int
}

// Validate checks all fields and collects all errors.
func (i *TableInput) Validate() error {
	var errs domain.FieldErrors

	if !i.State.IsValid() {
		errs.Add("state", "must be open or closed")
	}
	if len(i.Query) > table.MaxQueryLength {
		errs.Add("q", "too long (max 200)")
	}
	if i.Page < 0 {
		errs.Add("page", "must be positive")
	}
	if i.PageSize != 0 && !slices.Contains(table.PageSizes, i.PageSize) {
		errs.Add("page_size", "must be one of 10, 25, 50, 100")
	}

	return errs.Err()
}

// Result is one page of the TRB table.
type Result struct {
	Columns []Column
	Page    table.PageOf[domain.TRBRequest]
}

// Render renders the page's cells.
func (r *Result) Render() table.Rendered {
	return table.Render(r.Columns, r.Page, func(req domain.TRBRequest) string { return req.ID.String() })
}

// Table returns a page of TRB requests in the given state. Without an
// explicit sort, requests are ordered by consult date.
func (s *Service) Table(ctx context.Context, input TableInput) (*Result, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	requests, err := s.requests.List(ctx, input.State)
	if err != nil {
		return nil, fmt.Errorf("list trb requests: %w", err)
	}

	cols := BuildColumns(s.i18n.For(i18n.LangFromContext(ctx)))
	requests = table.Filter(requests, cols, input.Query)

	sortBy := input.SortBy
	if sortBy == "" {
		sortBy = ColConsultDate
	}
	if err := table.Sort(requests, cols, sortBy, input.Desc); err != nil {
		return nil, err
	}

	page, err := table.Paginate(requests, input.Page, input.PageSize)
	if err != nil {
		return nil, err
	}

	s.log.DebugContext(ctx, "trb table built",
		slog.String("state", input.State.String()),
		slog.Int("total", page.Total),
	)

	return &Result{Columns: cols, Page: page}, nil
}
