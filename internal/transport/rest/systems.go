package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/easi-app/easi-server/internal/service/systemlink"
	"github.com/easi-app/easi-server/internal/transport/middleware"
)

type systemLinkService interface {
	Table(ctx context.Context, intakeID uuid.UUID) (*systemlink.Table, error)
	RemoveLink(ctx context.Context, intakeID, linkID uuid.UUID) error
}

// SystemLinkHandler serves the linked systems of an intake.
type SystemLinkHandler struct {
	links systemLinkService
	log   *slog.Logger
}

// NewSystemLinkHandler creates a SystemLinkHandler.
func NewSystemLinkHandler(links systemLinkService, logger *slog.Logger) *SystemLinkHandler {
	return &SystemLinkHandler{
		links: links,
		log:   logger.With("handler", "system_links"),
	}
}

// List returns the linked-system table of an intake. Governance admins only.
// GET /api/v1/system-intakes/{id}/systems
func (h *SystemLinkHandler) List(w http.ResponseWriter, r *http.Request) {
	if err := middleware.RequireAdmin(r.Context()); err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	var p paramParser
	intakeID := p.uuidParam(r, "id")
	if err := p.err(); err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	table, err := h.links.Table(r.Context(), intakeID)
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, table)
}

// Remove deletes one link between an intake and a system. Governance admins only.
// DELETE /api/v1/system-intakes/{id}/systems/{linkID}
func (h *SystemLinkHandler) Remove(w http.ResponseWriter, r *http.Request) {
	if err := middleware.RequireAdmin(r.Context()); err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	var p paramParser
	intakeID := p.uuidParam(r, "id")
	linkID := p.uuidParam(r, "linkID")
	if err := p.err(); err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	if err := h.links.RemoveLink(r.Context(), intakeID, linkID); err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
