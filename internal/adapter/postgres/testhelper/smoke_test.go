package testhelper

import (
	"context"
	"testing"

	"github.com/easi-app/easi-server/internal/domain"
)

func TestSetupTestDB_Smoke(t *testing.T) {
	pool := SetupTestDB(t)

	in := SeedIntake(t, pool, func(in *domain.SystemIntake) {
		in.Status = domain.SystemIntakeStatusReadyForGRT
	})

	var status string
	err := pool.QueryRow(context.Background(),
		`SELECT status FROM system_intakes WHERE id = $1`, in.ID,
	).Scan(&status)
	if err != nil {
		t.Fatalf("expected intake in DB, got error: %v", err)
	}
	if status != string(domain.SystemIntakeStatusReadyForGRT) {
		t.Fatalf("expected status %q, got %q", domain.SystemIntakeStatusReadyForGRT, status)
	}
}
