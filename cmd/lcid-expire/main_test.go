package main

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/easi-app/easi-server/internal/domain"
)

type fakeTx struct {
	calls int
}

func (f *fakeTx) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	f.calls++
	return fn(ctx)
}

type fakeRepo struct {
	ExpireLCIDsFunc   func(ctx context.Context, now time.Time) ([]uuid.UUID, error)
	CreateActionsFunc func(ctx context.Context, actions []domain.Action) error

	created []domain.Action
}

func (f *fakeRepo) ExpireLCIDs(ctx context.Context, now time.Time) ([]uuid.UUID, error) {
	return f.ExpireLCIDsFunc(ctx, now)
}

func (f *fakeRepo) CreateActions(ctx context.Context, actions []domain.Action) error {
	f.created = append(f.created, actions...)
	if f.CreateActionsFunc != nil {
		return f.CreateActionsFunc(ctx, actions)
	}
	return nil
}

func TestExpire_RecordsActionPerIntake(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 5, 1, 6, 0, 0, 0, time.UTC)
	ids := []uuid.UUID{uuid.New(), uuid.New()}

	tx := &fakeTx{}
	repo := &fakeRepo{
		ExpireLCIDsFunc: func(_ context.Context, got time.Time) ([]uuid.UUID, error) {
			assert.Equal(t, now, got)
			return ids, nil
		},
	}

	n, err := expire(context.Background(), tx, repo, now)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, 1, tx.calls)

	require.Len(t, repo.created, 2)
	for i, a := range repo.created {
		assert.Equal(t, ids[i], a.SystemIntakeID)
		assert.Equal(t, domain.ActionTypeExpireLCID, a.Type)
		assert.Equal(t, actorName, a.ActorName)
		assert.Equal(t, now, a.CreatedAt)
		assert.NotEqual(t, uuid.Nil, a.ID)
	}
}

func TestExpire_NothingOverdue(t *testing.T) {
	t.Parallel()

	repo := &fakeRepo{
		ExpireLCIDsFunc: func(context.Context, time.Time) ([]uuid.UUID, error) { return nil, nil },
	}

	n, err := expire(context.Background(), &fakeTx{}, repo, time.Now())
	require.NoError(t, err)
	assert.Zero(t, n)
	assert.Empty(t, repo.created)
}

func TestExpire_Errors(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")

	t.Run("expire fails", func(t *testing.T) {
		t.Parallel()
		repo := &fakeRepo{
			ExpireLCIDsFunc: func(context.Context, time.Time) ([]uuid.UUID, error) { return nil, boom },
		}
		n, err := expire(context.Background(), &fakeTx{}, repo, time.Now())
		assert.ErrorIs(t, err, boom)
		assert.Zero(t, n)
	})

	t.Run("actions fail", func(t *testing.T) {
		t.Parallel()
		repo := &fakeRepo{
			ExpireLCIDsFunc: func(context.Context, time.Time) ([]uuid.UUID, error) {
				return []uuid.UUID{uuid.New()}, nil
			},
			CreateActionsFunc: func(context.Context, []domain.Action) error { return boom },
		}
		n, err := expire(context.Background(), &fakeTx{}, repo, time.Now())
		assert.ErrorIs(t, err, boom)
		assert.Zero(t, n)
	})
}
