package rest

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/easi-app/easi-server/internal/service/requesttable"
	"github.com/easi-app/easi-server/internal/service/systemlink"
	"github.com/easi-app/easi-server/internal/service/trbtable"
)

type intakeTableServiceMock struct {
	TableFunc func(ctx context.Context, input requesttable.TableInput) (*requesttable.Result, error)

	mu    sync.RWMutex
	calls []requesttable.TableInput
}

func (m *intakeTableServiceMock) Table(ctx context.Context, input requesttable.TableInput) (*requesttable.Result, error) {
	m.mu.Lock()
	m.calls = append(m.calls, input)
	m.mu.Unlock()
	return m.TableFunc(ctx, input)
}

func (m *intakeTableServiceMock) TableCalls() []requesttable.TableInput {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.calls
}

type trbTableServiceMock struct {
	TableFunc func(ctx context.Context, input trbtable.TableInput) (*trbtable.Result, error)

	mu    sync.RWMutex
	calls []trbtable.TableInput
}

func (m *trbTableServiceMock) Table(ctx context.Context, input trbtable.TableInput) (*trbtable.Result, error) {
	m.mu.Lock()
	m.calls = append(m.calls, input)
	m.mu.Unlock()
	return m.TableFunc(ctx, input)
}

func (m *trbTableServiceMock) TableCalls() []trbtable.TableInput {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.calls
}

type systemLinkServiceMock struct {
	TableFunc      func(ctx context.Context, intakeID uuid.UUID) (*systemlink.Table, error)
	RemoveLinkFunc func(ctx context.Context, intakeID, linkID uuid.UUID) error

	mu          sync.RWMutex
	tableCalls  []uuid.UUID
	removeCalls [][2]uuid.UUID
}

func (m *systemLinkServiceMock) Table(ctx context.Context, intakeID uuid.UUID) (*systemlink.Table, error) {
	m.mu.Lock()
	m.tableCalls = append(m.tableCalls, intakeID)
	m.mu.Unlock()
	return m.TableFunc(ctx, intakeID)
}

func (m *systemLinkServiceMock) TableCalls() []uuid.UUID {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.tableCalls
}

func (m *systemLinkServiceMock) RemoveLink(ctx context.Context, intakeID, linkID uuid.UUID) error {
	m.mu.Lock()
	m.removeCalls = append(m.removeCalls, [2]uuid.UUID{intakeID, linkID})
	m.mu.Unlock()
	return m.RemoveLinkFunc(ctx, intakeID, linkID)
}

func (m *systemLinkServiceMock) RemoveLinkCalls() [][2]uuid.UUID {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.removeCalls
}
