package requesttable

import (
	"time"

	"github.com/google/uuid"

	"github.com/easi-app/easi-server/internal/domain"
)

// Row is the display projection of a SystemIntake.
type Row struct {
	ID            uuid.UUID
	RequestName   string
	Status        domain.SystemIntakeStatus
	State         domain.RequestState
	Requester     domain.Requester
	AdminLead     *string
	LCID          *string
	SubmittedAt   *time.Time
	GRTDate       *time.Time
	GRBDate       *time.Time
	LCIDExpiresAt *time.Time

	// RequesterNameAndComponent is "Name, ACRONYM" for display.
	RequesterNameAndComponent string
	// LastAdminNote is the most recent note, nil when the intake has none.
	LastAdminNote *domain.AdminNote
	// FilterDate is the last note's date, else the latest action's date.
	FilterDate *time.Time
	// FundingSources is the grouped project/investment summary.
	FundingSources string
	// StatusLabel is the translated status.
	StatusLabel string
}

func (r Row) lcid() string {
	if r.LCID == nil {
		return ""
	}
	return *r.LCID
}

// ActiveTable selects the open or closed requests view.
type ActiveTable string

const (
	TableOpen   ActiveTable = "open"
	TableClosed ActiveTable = "closed"
)

func (t ActiveTable) String() string { return string(t) }

func (t ActiveTable) IsValid() bool {
	switch t {
	case TableOpen, TableClosed:
		return true
	}
	return false
}

// State is the effective request state whose rows the view lists.
func (t ActiveTable) State() domain.RequestState {
	if t == TableClosed {
		return domain.RequestStateClosed
	}
	return domain.RequestStateOpen
}
