package requesttable

import (
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/easi-app/easi-server/internal/domain"
	"github.com/easi-app/easi-server/internal/i18n"
)

func testBundle(t *testing.T) *i18n.Bundle {
	t.Helper()
	b, err := i18n.NewDefaultBundle(slog.Default())
	require.NoError(t, err)
	return b
}

func testTranslator(t *testing.T) i18n.Translator {
	t.Helper()
	return testBundle(t).For("en")
}

func day(d int) time.Time {
	return time.Date(2024, 1, d, 9, 30, 0, 0, time.UTC)
}

func dayPtr(d int) *time.Time {
	t := day(d)
	return &t
}

func domainID() uuid.UUID { return uuid.New() }

func ptr[T any](v T) *T { return &v }

func newIntake(name string, status domain.SystemIntakeStatus) domain.SystemIntake {
	return domain.SystemIntake{
		ID:          uuid.New(),
		RequestName: name,
		Status:      status,
		State:       domain.RequestStateOpen,
		Requester: domain.Requester{
			Name:      "Jane Doe",
			Component: "Office of Information Technology",
		},
		SubmittedAt: dayPtr(1),
		CreatedAt:   day(1),
		UpdatedAt:   day(1),
	}
}
