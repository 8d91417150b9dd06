// Package systemlink implements the intake/CEDAR system link repository using PostgreSQL.
package systemlink

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	postgres "github.com/easi-app/easi-server/internal/adapter/postgres"
	"github.com/easi-app/easi-server/internal/domain"
)

const table = "system_intake_systems"

// Repo provides system link persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new system link repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ListByIntakeID returns the links of one intake in creation order.
func (r *Repo) ListByIntakeID(ctx context.Context, intakeID uuid.UUID) ([]domain.SystemLink, error) {
	query, args, err := postgres.Builder().
		Select("id", "system_intake_id", "system_id", "relationship_types",
			"other_system_relationship_description", "created_at").
		From(table).
		Where(squirrel.Eq{"system_intake_id": intakeID}).
		OrderBy("created_at", "id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	links, err := postgres.Collect(ctx, r.db, query, args, scanLink)
	if err != nil {
		return nil, postgres.MapError(err, "system_intake", intakeID)
	}
	return links, nil
}

// Delete removes a link from an intake.
// Returns domain.ErrNotFound if the link does not exist on that intake.
func (r *Repo) Delete(ctx context.Context, intakeID, linkID uuid.UUID) error {
	query, args, err := postgres.Builder().
		Delete(table).
		Where(squirrel.Eq{"id": linkID, "system_intake_id": intakeID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, "system_link", linkID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("system_link %s: %w", linkID, domain.ErrNotFound)
	}
	return nil
}

func scanLink(row pgx.CollectableRow) (domain.SystemLink, error) {
	var (
		l     domain.SystemLink
		types []string
	)
	if err := row.Scan(&l.ID, &l.SystemIntakeID, &l.SystemID, &types,
		&l.OtherSystemRelationshipDescription, &l.CreatedAt); err != nil {
		return domain.SystemLink{}, err
	}

	l.RelationshipTypes = make([]domain.SystemRelationshipType, len(types))
	for i, t := range types {
		l.RelationshipTypes[i] = domain.SystemRelationshipType(t)
	}
	return l, nil
}
