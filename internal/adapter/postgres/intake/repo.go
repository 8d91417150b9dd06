// Package intake implements the system intake repository using PostgreSQL.
// Besides intakes themselves it reads the child rows (admin notes, actions,
// funding sources) in batches keyed by intake ID.
package intake

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	postgres "github.com/easi-app/easi-server/internal/adapter/postgres"
	"github.com/easi-app/easi-server/internal/domain"
)

const (
	tableIntakes        = "system_intakes"
	tableNotes          = "admin_notes"
	tableActions        = "actions"
	tableFundingSources = "funding_sources"
)

var intakeColumns = []string{
	"id", "request_name", "status", "state", "requester_name", "requester_component",
	"admin_lead", "lcid", "submitted_at", "grt_date", "grb_date", "lcid_expires_at",
	"created_at", "updated_at",
}

// Repo provides system intake persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new intake repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// Intakes
// ---------------------------------------------------------------------------

// GetByID returns an intake without its child rows.
// Returns domain.ErrNotFound if the intake does not exist.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.SystemIntake, error) {
	query, args, err := postgres.Builder().
		Select(intakeColumns...).
		From(tableIntakes).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	in, err := scanIntake(postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, "system_intake", id)
	}
	return &in, nil
}

// ListSubmitted returns every submitted intake, newest submission first.
// Child rows are not loaded.
func (r *Repo) ListSubmitted(ctx context.Context) ([]domain.SystemIntake, error) {
	query, args, err := postgres.Builder().
		Select(intakeColumns...).
		From(tableIntakes).
		Where(squirrel.NotEq{"submitted_at": nil}).
		OrderBy("submitted_at DESC", "id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	intakes, err := postgres.Collect(ctx, r.db, query, args, func(row pgx.CollectableRow) (domain.SystemIntake, error) {
		return scanIntake(row)
	})
	if err != nil {
		return nil, fmt.Errorf("list system_intakes: %w", err)
	}
	return intakes, nil
}

// ExpireLCIDs moves every LCID_ISSUED intake whose LCID expired before now
// to LCID_EXPIRED and returns the affected intake IDs.
func (r *Repo) ExpireLCIDs(ctx context.Context, now time.Time) ([]uuid.UUID, error) {
	query, args, err := postgres.Builder().
		Update(tableIntakes).
		Set("status", domain.SystemIntakeStatusLCIDExpired.String()).
		Set("updated_at", now).
		Where(squirrel.Eq{"status": domain.SystemIntakeStatusLCIDIssued.String()}).
		Where(squirrel.Lt{"lcid_expires_at": now}).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	ids, err := postgres.Collect(ctx, r.db, query, args, pgx.RowTo[uuid.UUID])
	if err != nil {
		return nil, fmt.Errorf("expire lcids: %w", err)
	}
	return ids, nil
}

// ---------------------------------------------------------------------------
// Child rows
// ---------------------------------------------------------------------------

// NotesByIntakeIDs returns the admin notes of the given intakes in creation
// order. Notes sharing a timestamp keep their insertion order.
func (r *Repo) NotesByIntakeIDs(ctx context.Context, intakeIDs []uuid.UUID) ([]domain.AdminNote, error) {
	query, args, err := postgres.Builder().
		Select("id", "system_intake_id", "author_name", "content", "created_at").
		From(tableNotes).
		Where("system_intake_id = ANY(?)", intakeIDs).
		OrderBy("created_at", "seq").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	return collect(ctx, r.db, query, args, func(row pgx.CollectableRow) (domain.AdminNote, error) {
		var n domain.AdminNote
		err := row.Scan(&n.ID, &n.SystemIntakeID, &n.AuthorName, &n.Content, &n.CreatedAt)
		return n, err
	})
}

// ActionsByIntakeIDs returns the actions of the given intakes in creation order.
func (r *Repo) ActionsByIntakeIDs(ctx context.Context, intakeIDs []uuid.UUID) ([]domain.Action, error) {
	query, args, err := postgres.Builder().
		Select("id", "system_intake_id", "action_type", "actor_name", "created_at").
		From(tableActions).
		Where("system_intake_id = ANY(?)", intakeIDs).
		OrderBy("created_at", "seq").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	return collect(ctx, r.db, query, args, func(row pgx.CollectableRow) (domain.Action, error) {
		var (
			a          domain.Action
			actionType string
		)
		err := row.Scan(&a.ID, &a.SystemIntakeID, &actionType, &a.ActorName, &a.CreatedAt)
		a.Type = domain.ActionType(actionType)
		return a, err
	})
}

// FundingSourcesByIntakeIDs returns the funding sources of the given intakes in creation order.
func (r *Repo) FundingSourcesByIntakeIDs(ctx context.Context, intakeIDs []uuid.UUID) ([]domain.FundingSource, error) {
	query, args, err := postgres.Builder().
		Select("id", "system_intake_id", "project_number", "investment").
		From(tableFundingSources).
		Where("system_intake_id = ANY(?)", intakeIDs).
		OrderBy("created_at", "seq").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	return collect(ctx, r.db, query, args, func(row pgx.CollectableRow) (domain.FundingSource, error) {
		var fs domain.FundingSource
		err := row.Scan(&fs.ID, &fs.SystemIntakeID, &fs.ProjectNumber, &fs.Investment)
		return fs, err
	})
}

// CreateActions records actions in a single batch.
func (r *Repo) CreateActions(ctx context.Context, actions []domain.Action) error {
	if len(actions) == 0 {
		return nil
	}

	insert := postgres.Builder().
		Insert(tableActions).
		Columns("id", "system_intake_id", "action_type", "actor_name", "created_at")
	for _, a := range actions {
		insert = insert.Values(a.ID, a.SystemIntakeID, a.Type.String(), a.ActorName, a.CreatedAt)
	}

	query, args, err := insert.ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}

	if _, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...); err != nil {
		return postgres.MapError(err, "action", actions[0].SystemIntakeID)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Scanning
// ---------------------------------------------------------------------------

func scanIntake(row pgx.Row) (domain.SystemIntake, error) {
	var (
		in     domain.SystemIntake
		status string
		state  string
	)
	err := row.Scan(
		&in.ID, &in.RequestName, &status, &state, &in.Requester.Name, &in.Requester.Component,
		&in.AdminLead, &in.LCID, &in.SubmittedAt, &in.GRTDate, &in.GRBDate, &in.LCIDExpiresAt,
		&in.CreatedAt, &in.UpdatedAt,
	)
	in.Status = domain.SystemIntakeStatus(status)
	in.State = domain.RequestState(state)
	return in, err
}

func collect[T any](ctx context.Context, db postgres.Querier, query string, args []any, scan func(pgx.CollectableRow) (T, error)) ([]T, error) {
	out, err := postgres.Collect(ctx, db, query, args, scan)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	return out, nil
}
