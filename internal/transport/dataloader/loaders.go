package dataloader

import (
	"context"

	"github.com/google/uuid"
	"github.com/graph-gophers/dataloader/v7"

	"github.com/easi-app/easi-server/internal/domain"
)

func newNotesBatchFn(repo intakeChildRepo) dataloader.BatchFunc[uuid.UUID, []domain.AdminNote] {
	return func(ctx context.Context, keys []uuid.UUID) []*dataloader.Result[[]domain.AdminNote] {
		notes, err := repo.NotesByIntakeIDs(ctx, keys)
		if err != nil {
			return errorResults[[]domain.AdminNote](len(keys), err)
		}
		return mapResults(keys, groupBy(notes, func(n domain.AdminNote) uuid.UUID { return n.SystemIntakeID }))
	}
}

func newActionsBatchFn(repo intakeChildRepo) dataloader.BatchFunc[uuid.UUID, []domain.Action] {
	return func(ctx context.Context, keys []uuid.UUID) []*dataloader.Result[[]domain.Action] {
		actions, err := repo.ActionsByIntakeIDs(ctx, keys)
		if err != nil {
			return errorResults[[]domain.Action](len(keys), err)
		}
		return mapResults(keys, groupBy(actions, func(a domain.Action) uuid.UUID { return a.SystemIntakeID }))
	}
}

func newFundingSourcesBatchFn(repo intakeChildRepo) dataloader.BatchFunc[uuid.UUID, []domain.FundingSource] {
	return func(ctx context.Context, keys []uuid.UUID) []*dataloader.Result[[]domain.FundingSource] {
		sources, err := repo.FundingSourcesByIntakeIDs(ctx, keys)
		if err != nil {
			return errorResults[[]domain.FundingSource](len(keys), err)
		}
		return mapResults(keys, groupBy(sources, func(f domain.FundingSource) uuid.UUID { return f.SystemIntakeID }))
	}
}

func groupBy[T any](items []T, key func(T) uuid.UUID) map[uuid.UUID][]T {
	grouped := make(map[uuid.UUID][]T)
	for _, item := range items {
		k := key(item)
		grouped[k] = append(grouped[k], item)
	}
	return grouped
}

// errorResults creates n error results.
func errorResults[V any](n int, err error) []*dataloader.Result[V] {
	results := make([]*dataloader.Result[V], n)
	for i := range results {
		results[i] = &dataloader.Result[V]{Error: err}
	}
	return results
}

// mapResults maps grouped results back to key order; missing keys get a non-nil empty slice.
func mapResults[T any](keys []uuid.UUID, grouped map[uuid.UUID][]T) []*dataloader.Result[[]T] {
	results := make([]*dataloader.Result[[]T], len(keys))
	for i, key := range keys {
		v, ok := grouped[key]
		if !ok {
			v = []T{}
		}
		results[i] = &dataloader.Result[[]T]{Data: v}
	}
	return results
}
