// Package trbrequest implements the technical review board request repository using PostgreSQL.
package trbrequest

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	postgres "github.com/easi-app/easi-server/internal/adapter/postgres"
	"github.com/easi-app/easi-server/internal/domain"
)

// Repo provides TRB request persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new TRB request repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// List returns the requests in the given state, newest first.
func (r *Repo) List(ctx context.Context, state domain.RequestState) ([]domain.TRBRequest, error) {
	query, args, err := postgres.Builder().
		Select("id", "name", "status", "state", "requester_name", "lead_name",
			"submitted_at", "consult_meeting_time", "created_at").
		From("trb_requests").
		Where(squirrel.Eq{"state": state.String()}).
		OrderBy("created_at DESC", "id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	requests, err := postgres.Collect(ctx, r.db, query, args, scanRequest)
	if err != nil {
		return nil, fmt.Errorf("list trb_requests: %w", err)
	}
	return requests, nil
}

func scanRequest(row pgx.CollectableRow) (domain.TRBRequest, error) {
	var (
		req    domain.TRBRequest
		status string
		state  string
	)
	err := row.Scan(&req.ID, &req.Name, &status, &state, &req.RequesterName, &req.LeadName,
		&req.SubmittedAt, &req.ConsultMeetingTime, &req.CreatedAt)
	req.Status = domain.TRBRequestStatus(status)
	req.State = domain.RequestState(state)
	return req, err
}
