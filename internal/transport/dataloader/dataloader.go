// Package dataloader provides per-request DataLoaders that batch the child
// records of system intakes (notes, actions, funding sources) into single
// SQL calls while a request table is being hydrated.
package dataloader

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/graph-gophers/dataloader/v7"

	"github.com/easi-app/easi-server/internal/domain"
)

const (
	maxBatch = 100
	wait     = 2 * time.Millisecond
)

type intakeChildRepo interface {
	NotesByIntakeIDs(ctx context.Context, intakeIDs []uuid.UUID) ([]domain.AdminNote, error)
	ActionsByIntakeIDs(ctx context.Context, intakeIDs []uuid.UUID) ([]domain.Action, error)
	FundingSourcesByIntakeIDs(ctx context.Context, intakeIDs []uuid.UUID) ([]domain.FundingSource, error)
}

// Loaders contains the per-request DataLoaders. Created per-request via NewLoaders.
type Loaders struct {
	NotesByIntakeID          *dataloader.Loader[uuid.UUID, []domain.AdminNote]
	ActionsByIntakeID        *dataloader.Loader[uuid.UUID, []domain.Action]
	FundingSourcesByIntakeID *dataloader.Loader[uuid.UUID, []domain.FundingSource]
}

// NewLoaders creates a new set of DataLoaders backed by repo.
// Must be called per-request (loaders cache results within a single request).
func NewLoaders(repo intakeChildRepo) *Loaders {
	return &Loaders{
		NotesByIntakeID:          newLoader(newNotesBatchFn(repo)),
		ActionsByIntakeID:        newLoader(newActionsBatchFn(repo)),
		FundingSourcesByIntakeID: newLoader(newFundingSourcesBatchFn(repo)),
	}
}

func newLoader[V any](batchFn dataloader.BatchFunc[uuid.UUID, V]) *dataloader.Loader[uuid.UUID, V] {
	return dataloader.NewBatchedLoader(
		batchFn,
		dataloader.WithWait[uuid.UUID, V](wait),
		dataloader.WithBatchCapacity[uuid.UUID, V](maxBatch),
	)
}

// LoadNotes returns the admin notes of one intake.
func (l *Loaders) LoadNotes(ctx context.Context, intakeID uuid.UUID) ([]domain.AdminNote, error) {
	return l.NotesByIntakeID.Load(ctx, intakeID)()
}

// LoadActions returns the actions of one intake.
func (l *Loaders) LoadActions(ctx context.Context, intakeID uuid.UUID) ([]domain.Action, error) {
	return l.ActionsByIntakeID.Load(ctx, intakeID)()
}

// LoadFundingSources returns the funding sources of one intake.
func (l *Loaders) LoadFundingSources(ctx context.Context, intakeID uuid.UUID) ([]domain.FundingSource, error) {
	return l.FundingSourcesByIntakeID.Load(ctx, intakeID)()
}

type contextKey string

const loadersKey contextKey = "dataloaders"

// WithLoaders stores Loaders in the context.
func WithLoaders(ctx context.Context, l *Loaders) context.Context {
	return context.WithValue(ctx, loadersKey, l)
}

// FromContext retrieves Loaders from the context.
// Panics if loaders are not present (indicates middleware misconfiguration).
func FromContext(ctx context.Context) *Loaders {
	l, ok := ctx.Value(loadersKey).(*Loaders)
	if !ok || l == nil {
		panic("dataloader: loaders not found in context; is the middleware configured?")
	}
	return l
}
