package intake

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v2"

	"github.com/easi-app/easi-server/internal/domain"
)

func newMockRepo(t *testing.T) (*Repo, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("pgxmock.NewPool: %v", err)
	}
	t.Cleanup(func() {
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Errorf("unmet expectations: %v", err)
		}
		mock.Close()
	})
	return New(mock), mock
}

func intakeRows() *pgxmock.Rows {
	return pgxmock.NewRows(intakeColumns)
}

func TestRepo_GetByID(t *testing.T) {
	t.Parallel()

	id := uuid.New()
	now := time.Now().UTC()
	lead := "Ann Admin"
	lcid := "X123456"
	noTime := (*time.Time)(nil)

	tests := []struct {
		name    string
		setup   func(mock pgxmock.PgxPoolIface)
		wantErr error
		check   func(t *testing.T, got *domain.SystemIntake)
	}{
		{
			name: "found",
			setup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(`SELECT .+ FROM system_intakes WHERE id = \$1`).
					WithArgs(pgxmock.AnyArg()).
					WillReturnRows(intakeRows().AddRow(
						id, "Cloud", "LCID_ISSUED", "OPEN", "Jane Doe", "Office of Information Technology",
						&lead, &lcid, &now, noTime, noTime, &now, now, now,
					))
			},
			check: func(t *testing.T, got *domain.SystemIntake) {
				if got.ID != id {
					t.Errorf("ID = %v, want %v", got.ID, id)
				}
				if got.Status != domain.SystemIntakeStatusLCIDIssued {
					t.Errorf("Status = %q, want LCID_ISSUED", got.Status)
				}
				if got.Requester.Name != "Jane Doe" {
					t.Errorf("Requester.Name = %q", got.Requester.Name)
				}
				if got.LCID == nil || *got.LCID != lcid {
					t.Errorf("LCID = %v, want %q", got.LCID, lcid)
				}
				if got.GRTDate != nil {
					t.Errorf("GRTDate = %v, want nil", got.GRTDate)
				}
			},
		},
		{
			name: "not found",
			setup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(`SELECT`).
					WithArgs(pgxmock.AnyArg()).
					WillReturnError(pgx.ErrNoRows)
			},
			wantErr: domain.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			repo, mock := newMockRepo(t)
			tt.setup(mock)

			got, err := repo.GetByID(context.Background(), id)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("GetByID() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("GetByID() unexpected error: %v", err)
			}
			tt.check(t, got)
		})
	}
}

func TestRepo_ListSubmitted(t *testing.T) {
	t.Parallel()

	repo, mock := newMockRepo(t)
	now := time.Now().UTC()
	noStr := (*string)(nil)
	noTime := (*time.Time)(nil)

	mock.ExpectQuery(`SELECT .+ FROM system_intakes WHERE submitted_at IS NOT NULL ORDER BY submitted_at DESC, id`).
		WillReturnRows(intakeRows().
			AddRow(uuid.New(), "A", "INTAKE_SUBMITTED", "OPEN", "Jane", "", noStr, noStr, &now, noTime, noTime, noTime, now, now).
			AddRow(uuid.New(), "B", "WITHDRAWN", "CLOSED", "Raj", "Other", noStr, noStr, &now, noTime, noTime, noTime, now, now))

	got, err := repo.ListSubmitted(context.Background())
	if err != nil {
		t.Fatalf("ListSubmitted() error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("ListSubmitted() len = %d, want 2", len(got))
	}
	if got[1].State != domain.RequestStateClosed {
		t.Errorf("State = %q, want CLOSED", got[1].State)
	}
}

func TestRepo_ListSubmitted_QueryError(t *testing.T) {
	t.Parallel()

	repo, mock := newMockRepo(t)
	mock.ExpectQuery(`SELECT`).WillReturnError(errors.New("connection reset"))

	if _, err := repo.ListSubmitted(context.Background()); err == nil {
		t.Fatal("ListSubmitted() expected error")
	}
}

func TestRepo_NotesByIntakeIDs(t *testing.T) {
	t.Parallel()

	repo, mock := newMockRepo(t)
	a, b := uuid.New(), uuid.New()
	day1 := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`SELECT id, system_intake_id, author_name, content, created_at FROM admin_notes WHERE system_intake_id = ANY\(\$1\) ORDER BY created_at, seq`).
		WithArgs([]uuid.UUID{a, b}).
		WillReturnRows(pgxmock.NewRows([]string{"id", "system_intake_id", "author_name", "content", "created_at"}).
			AddRow(uuid.New(), a, "Ann", "first", day1).
			AddRow(uuid.New(), b, "Bo", "second", day1.Add(time.Hour)))

	notes, err := repo.NotesByIntakeIDs(context.Background(), []uuid.UUID{a, b})
	if err != nil {
		t.Fatalf("NotesByIntakeIDs() error: %v", err)
	}
	if len(notes) != 2 || notes[0].SystemIntakeID != a || notes[1].Content != "second" {
		t.Errorf("NotesByIntakeIDs() = %+v", notes)
	}
}

func TestRepo_ActionsByIntakeIDs(t *testing.T) {
	t.Parallel()

	repo, mock := newMockRepo(t)
	a := uuid.New()

	mock.ExpectQuery(`FROM actions WHERE system_intake_id = ANY`).
		WithArgs([]uuid.UUID{a}).
		WillReturnRows(pgxmock.NewRows([]string{"id", "system_intake_id", "action_type", "actor_name", "created_at"}).
			AddRow(uuid.New(), a, "SUBMIT_INTAKE", "Jane", time.Now()))

	actions, err := repo.ActionsByIntakeIDs(context.Background(), []uuid.UUID{a})
	if err != nil {
		t.Fatalf("ActionsByIntakeIDs() error: %v", err)
	}
	if len(actions) != 1 || actions[0].Type != domain.ActionTypeSubmitIntake {
		t.Errorf("ActionsByIntakeIDs() = %+v", actions)
	}
}

func TestRepo_FundingSourcesByIntakeIDs_Empty(t *testing.T) {
	t.Parallel()

	repo, mock := newMockRepo(t)
	mock.ExpectQuery(`FROM funding_sources`).
		WithArgs(pgxmock.AnyArg()).
		WillReturnRows(pgxmock.NewRows([]string{"id", "system_intake_id", "project_number", "investment"}))

	got, err := repo.FundingSourcesByIntakeIDs(context.Background(), []uuid.UUID{uuid.New()})
	if err != nil {
		t.Fatalf("FundingSourcesByIntakeIDs() error: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("FundingSourcesByIntakeIDs() len = %d, want 0", len(got))
	}
}

func TestRepo_ExpireLCIDs(t *testing.T) {
	t.Parallel()

	repo, mock := newMockRepo(t)
	now := time.Now().UTC()
	expired := uuid.New()

	mock.ExpectQuery(`UPDATE system_intakes SET status = \$1, updated_at = \$2 WHERE status = \$3 AND lcid_expires_at < \$4 RETURNING id`).
		WithArgs("LCID_EXPIRED", now, "LCID_ISSUED", now).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(expired))

	ids, err := repo.ExpireLCIDs(context.Background(), now)
	if err != nil {
		t.Fatalf("ExpireLCIDs() error: %v", err)
	}
	if len(ids) != 1 || ids[0] != expired {
		t.Errorf("ExpireLCIDs() = %v, want [%v]", ids, expired)
	}
}

func TestRepo_CreateActions(t *testing.T) {
	t.Parallel()

	repo, mock := newMockRepo(t)
	now := time.Now().UTC()
	actions := []domain.Action{
		{ID: uuid.New(), SystemIntakeID: uuid.New(), Type: domain.ActionTypeExpireLCID, ActorName: "system", CreatedAt: now},
		{ID: uuid.New(), SystemIntakeID: uuid.New(), Type: domain.ActionTypeExpireLCID, ActorName: "system", CreatedAt: now},
	}

	mock.ExpectExec(`INSERT INTO actions \(id,system_intake_id,action_type,actor_name,created_at\) VALUES \(\$1,\$2,\$3,\$4,\$5\),\(\$6,\$7,\$8,\$9,\$10\)`).
		WillReturnResult(pgxmock.NewResult("INSERT", 2))

	if err := repo.CreateActions(context.Background(), actions); err != nil {
		t.Fatalf("CreateActions() error: %v", err)
	}
}

func TestRepo_CreateActions_NoneIsNoop(t *testing.T) {
	t.Parallel()

	repo, _ := newMockRepo(t)
	if err := repo.CreateActions(context.Background(), nil); err != nil {
		t.Fatalf("CreateActions(nil) error: %v", err)
	}
}
