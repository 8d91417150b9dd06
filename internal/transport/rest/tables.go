package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/easi-app/easi-server/internal/domain"
	"github.com/easi-app/easi-server/internal/service/requesttable"
	"github.com/easi-app/easi-server/internal/service/trbtable"
	"github.com/easi-app/easi-server/internal/transport/middleware"
)

type intakeTableService interface {
	Table(ctx context.Context, input requesttable.TableInput) (*requesttable.Result, error)
}

type trbTableService interface {
	Table(ctx context.Context, input trbtable.TableInput) (*trbtable.Result, error)
}

// TableHandler serves the admin request tables.
type TableHandler struct {
	intakes         intakeTableService
	trb             trbTableService
	defaultPageSize int
	log             *slog.Logger
}

// NewTableHandler creates a TableHandler. defaultPageSize applies when the
// client sends no pageSize.
func NewTableHandler(intakes intakeTableService, trb trbTableService, defaultPageSize int, logger *slog.Logger) *TableHandler {
	return &TableHandler{
		intakes:         intakes,
		trb:             trb,
		defaultPageSize: defaultPageSize,
		log:             logger.With("handler", "tables"),
	}
}

// SystemIntakes returns a page of the open or closed governance request table.
// GET /api/v1/system-intakes?table=open&sort=submittedAt&order=desc&q=&from=&to=&page=1&pageSize=10
func (h *TableHandler) SystemIntakes(w http.ResponseWriter, r *http.Request) {
	if err := middleware.RequireAdmin(r.Context()); err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	var p paramParser
	tq := p.tableQuery(r, h.defaultPageSize)
	if err := p.err(); err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	table := requesttable.ActiveTable(r.URL.Query().Get("table"))
	if table == "" {
		table = requesttable.TableOpen
	}

	result, err := h.intakes.Table(r.Context(), requesttable.TableInput{
		Table:    table,
		SortBy:   tq.SortBy,
		Desc:     tq.Desc,
		Query:    tq.Query,
		From:     tq.From,
		To:       tq.To,
		Page:     tq.Page,
		PageSize: tq.PageSize,
	})
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, result.Render())
}

// TRBRequests returns a page of technical review board requests.
// GET /api/v1/trb-requests?state=open&sort=consultDate&page=1
func (h *TableHandler) TRBRequests(w http.ResponseWriter, r *http.Request) {
	if err := middleware.RequireTRBAdmin(r.Context()); err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	var p paramParser
	tq := p.tableQuery(r, h.defaultPageSize)
	if err := p.err(); err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	state := domain.RequestState(strings.ToUpper(r.URL.Query().Get("state")))
	if state == "" {
		state = domain.RequestStateOpen
	}

	result, err := h.trb.Table(r.Context(), trbtable.TableInput{
		State:    state,
		SortBy:   tq.SortBy,
		Desc:     tq.Desc,
		Query:    tq.Query,
		Page:     tq.Page,
		PageSize: tq.PageSize,
	})
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, result.Render())
}
