package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/easi-app/easi-server/internal/domain"
)

// Now returns the current time at database precision.
func Now() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}

// SeedIntake inserts a submitted OPEN intake. mutate may adjust it before insert.
func SeedIntake(t *testing.T, pool *pgxpool.Pool, mutate func(*domain.SystemIntake)) domain.SystemIntake {
	t.Helper()

	now := Now()
	in := domain.SystemIntake{
		ID:          uuid.New(),
		RequestName: "Request " + uuid.New().String()[:8],
		Status:      domain.SystemIntakeStatusIntakeSubmitted,
		State:       domain.RequestStateOpen,
		Requester:   domain.Requester{Name: "Test Requester", Component: "Office of Information Technology"},
		SubmittedAt: &now,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if mutate != nil {
		mutate(&in)
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO system_intakes (id, request_name, status, state, requester_name, requester_component,
		     admin_lead, lcid, submitted_at, grt_date, grb_date, lcid_expires_at, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`,
		in.ID, in.RequestName, in.Status.String(), in.State.String(), in.Requester.Name, in.Requester.Component,
		in.AdminLead, in.LCID, in.SubmittedAt, in.GRTDate, in.GRBDate, in.LCIDExpiresAt, in.CreatedAt, in.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedIntake: %v", err)
	}
	return in
}

// SeedNote inserts an admin note on an intake.
func SeedNote(t *testing.T, pool *pgxpool.Pool, intakeID uuid.UUID, content string, createdAt time.Time) domain.AdminNote {
	t.Helper()

	n := domain.AdminNote{ID: uuid.New(), SystemIntakeID: intakeID, AuthorName: "Admin", Content: content, CreatedAt: createdAt}
	_, err := pool.Exec(context.Background(),
		`INSERT INTO admin_notes (id, system_intake_id, author_name, content, created_at) VALUES ($1, $2, $3, $4, $5)`,
		n.ID, n.SystemIntakeID, n.AuthorName, n.Content, n.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedNote: %v", err)
	}
	return n
}

// SeedFundingSource inserts a funding source on an intake.
func SeedFundingSource(t *testing.T, pool *pgxpool.Pool, intakeID uuid.UUID, projectNumber, investment string) {
	t.Helper()

	_, err := pool.Exec(context.Background(),
		`INSERT INTO funding_sources (system_intake_id, project_number, investment) VALUES ($1, $2, $3)`,
		intakeID, projectNumber, investment,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedFundingSource: %v", err)
	}
}

// SeedSystemLink links an intake to a CEDAR system.
func SeedSystemLink(t *testing.T, pool *pgxpool.Pool, intakeID uuid.UUID, systemID string, types ...domain.SystemRelationshipType) uuid.UUID {
	t.Helper()

	raw := make([]string, len(types))
	for i, rt := range types {
		raw[i] = rt.String()
	}

	id := uuid.New()
	_, err := pool.Exec(context.Background(),
		`INSERT INTO system_intake_systems (id, system_intake_id, system_id, relationship_types) VALUES ($1, $2, $3, $4)`,
		id, intakeID, systemID, raw,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedSystemLink: %v", err)
	}
	return id
}
