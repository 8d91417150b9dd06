// Package requesttable derives the admin request tables: display rows from
// system intakes, the open/closed column sets with their comparators, and
// the filter/sort/page pipeline over them.
package requesttable

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/easi-app/easi-server/internal/domain"
	"github.com/easi-app/easi-server/internal/i18n"
	"github.com/easi-app/easi-server/internal/service/table"
)

type intakeRepo interface {
	ListSubmitted(ctx context.Context) ([]domain.SystemIntake, error)
}

// IntakeLoaders batch-load intake children by intake ID.
type IntakeLoaders interface {
	LoadNotes(ctx context.Context, intakeID uuid.UUID) ([]domain.AdminNote, error)
	LoadActions(ctx context.Context, intakeID uuid.UUID) ([]domain.Action, error)
	LoadFundingSources(ctx context.Context, intakeID uuid.UUID) ([]domain.FundingSource, error)
}

type translations interface {
	For(lang string) i18n.Translator
}

// Service builds request table pages.
type Service struct {
	intakes intakeRepo
	loaders func(ctx context.Context) IntakeLoaders
	i18n    translations
	columns *ColumnCache
	log     *slog.Logger
}

// NewService creates a new request table service. loaders returns the
// request-scoped loaders for ctx.
func NewService(
	log *slog.Logger,
	intakes intakeRepo,
	loaders func(ctx context.Context) IntakeLoaders,
	tr translations,
	columns *ColumnCache,
) *Service {
	return &Service{
		intakes: intakes,
		loaders: loaders,
		i18n:    tr,
		columns: columns,
		log:     log.With("service", "requesttable"),
	}
}

// Result is one page of a request table.
type Result struct {
	Columns []Column
	Page    table.PageOf[Row]
}

// Render renders the page's cells.
func (r *Result) Render() table.Rendered {
	return table.Render(r.Columns, r.Page, func(row Row) string { return row.ID.String() })
}

// Table returns a page of the open or closed request table in the
// context's language.
func (s *Service) Table(ctx context.Context, input TableInput) (*Result, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	intakes, err := s.intakes.ListSubmitted(ctx)
	if err != nil {
		return nil, fmt.Errorf("list intakes: %w", err)
	}

	if err := s.hydrate(ctx, intakes); err != nil {
		return nil, err
	}

	t := s.i18n.For(i18n.LangFromContext(ctx))

	rows, err := NormalizeRows(intakes, t)
	if err != nil {
		return nil, err
	}
	rows = FilterState(rows, input.Table.State())

	cols, err := s.columns.Columns(input.Table, t)
	if err != nil {
		return nil, err
	}

	rows = FilterRows(rows, cols, Filter{
		Query: input.Query,
		Dates: table.DateRange{From: input.From, To: input.To},
	})

	sortBy, desc := input.SortBy, input.Desc
	if sortBy == "" {
		sortBy, desc = ColSubmittedAt, true
	}
	if err := SortRows(rows, cols, sortBy, desc); err != nil {
		return nil, err
	}

	page, err := Paginate(rows, input.Page, input.PageSize)
	if err != nil {
		return nil, err
	}

	s.log.DebugContext(ctx, "request table built",
		slog.String("table", input.Table.String()),
		slog.Int("total", page.Total),
	)

	return &Result{Columns: cols, Page: page}, nil
}

// hydrate fills notes, actions and funding sources of every intake through
// the batching loaders.
func (s *Service) hydrate(ctx context.Context, intakes []domain.SystemIntake) error {
	if len(intakes) == 0 {
		return nil
	}
	l := s.loaders(ctx)

	g, gctx := errgroup.WithContext(ctx)
	for i := range intakes {
		in := &intakes[i]
		g.Go(func() error {
			notes, err := l.LoadNotes(gctx, in.ID)
			if err != nil {
				return fmt.Errorf("load notes for intake %s: %w", in.ID, err)
			}
			in.Notes = notes
			return nil
		})
		g.Go(func() error {
			actions, err := l.LoadActions(gctx, in.ID)
			if err != nil {
				return fmt.Errorf("load actions for intake %s: %w", in.ID, err)
			}
			in.Actions = actions
			return nil
		})
		g.Go(func() error {
			sources, err := l.LoadFundingSources(gctx, in.ID)
			if err != nil {
				return fmt.Errorf("load funding sources for intake %s: %w", in.ID, err)
			}
			in.FundingSources = sources
			return nil
		})
	}
	return g.Wait()
}
