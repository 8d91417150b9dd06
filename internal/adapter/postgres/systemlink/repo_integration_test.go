package systemlink_test

import (
	"context"
	"errors"
	"testing"

	"github.com/easi-app/easi-server/internal/adapter/postgres/systemlink"
	"github.com/easi-app/easi-server/internal/adapter/postgres/testhelper"
	"github.com/easi-app/easi-server/internal/domain"
)

func TestIntegration_ListAndDelete(t *testing.T) {
	pool := testhelper.SetupTestDB(t)
	repo := systemlink.New(pool)
	ctx := context.Background()

	in := testhelper.SeedIntake(t, pool, nil)
	first := testhelper.SeedSystemLink(t, pool, in.ID, "{SYS-1}", domain.SystemRelationshipPrimarySupport)
	testhelper.SeedSystemLink(t, pool, in.ID, "{SYS-2}", domain.SystemRelationshipPartialSupport, domain.SystemRelationshipOther)

	links, err := repo.ListByIntakeID(ctx, in.ID)
	if err != nil {
		t.Fatalf("ListByIntakeID: %v", err)
	}
	if len(links) != 2 || len(links[1].RelationshipTypes) != 2 {
		t.Fatalf("links = %+v", links)
	}

	if err := repo.Delete(ctx, in.ID, first); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if err := repo.Delete(ctx, in.ID, first); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("second Delete error = %v, want ErrNotFound", err)
	}
}
