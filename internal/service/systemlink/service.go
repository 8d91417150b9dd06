// Package systemlink cross-references an intake's linked systems with the
// CEDAR system directory.
package systemlink

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/easi-app/easi-server/internal/domain"
	"github.com/easi-app/easi-server/internal/i18n"
)

type linkRepo interface {
	ListByIntakeID(ctx context.Context, intakeID uuid.UUID) ([]domain.SystemLink, error)
	Delete(ctx context.Context, intakeID, linkID uuid.UUID) error
}

type intakeRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.SystemIntake, error)
}

type systemDirectory interface {
	ListSystems(ctx context.Context) ([]domain.CedarSystem, error)
}

type translations interface {
	For(lang string) i18n.Translator
}

// Service serves linked-system tables.
type Service struct {
	links       linkRepo
	intakes     intakeRepo
	directory   systemDirectory
	i18n        translations
	helpMailbox string
	log         *slog.Logger
}

// NewService creates a new linked-system service.
func NewService(
	log *slog.Logger,
	links linkRepo,
	intakes intakeRepo,
	directory systemDirectory,
	tr translations,
	helpMailbox string,
) *Service {
	return &Service{
		links:       links,
		intakes:     intakes,
		directory:   directory,
		i18n:        tr,
		helpMailbox: helpMailbox,
		log:         log.With("service", "systemlink"),
	}
}

// Table returns the linked systems of an intake. A directory failure is
// reported as a warning on the table, not as an error.
func (s *Service) Table(ctx context.Context, intakeID uuid.UUID) (*Table, error) {
	if _, err := s.intakes.GetByID(ctx, intakeID); err != nil {
		return nil, fmt.Errorf("get intake: %w", err)
	}

	links, err := s.links.ListByIntakeID(ctx, intakeID)
	if err != nil {
		return nil, fmt.Errorf("list system links: %w", err)
	}

	var systems []domain.CedarSystem
	var dirErr error
	if len(links) > 0 {
		systems, dirErr = s.directory.ListSystems(ctx)
		if dirErr != nil {
			s.log.WarnContext(ctx, "cedar directory unavailable",
				slog.String("intake_id", intakeID.String()),
				slog.String("error", dirErr.Error()),
			)
		}
	}

	t := s.i18n.For(i18n.LangFromContext(ctx))
	tbl := BuildTable(intakeID, links, systems, dirErr, t, s.helpMailbox)
	return &tbl, nil
}

// RemoveLink deletes one link from an intake.
func (s *Service) RemoveLink(ctx context.Context, intakeID, linkID uuid.UUID) error {
	if err := s.links.Delete(ctx, intakeID, linkID); err != nil {
		return fmt.Errorf("remove system link: %w", err)
	}

	s.log.InfoContext(ctx, "system link removed",
		slog.String("intake_id", intakeID.String()),
		slog.String("link_id", linkID.String()),
	)
	return nil
}
