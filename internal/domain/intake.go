package domain

import (
	"time"

	"github.com/google/uuid"
)

// SystemIntake is a governance request entering the review workflow.
type SystemIntake struct {
	ID            uuid.UUID
	RequestName   string
	Status        SystemIntakeStatus
	State         RequestState
	Requester     Requester
	AdminLead     *string
	LCID          *string
	SubmittedAt   *time.Time
	GRTDate       *time.Time
	GRBDate       *time.Time
	LCIDExpiresAt *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time

	Notes          []AdminNote
	Actions        []Action
	FundingSources []FundingSource
}

// Requester identifies who submitted the request and the CMS component they belong to.
type Requester struct {
	Name      string
	Component string
}

// AdminNote is an immutable note left on an intake by a governance admin.
type AdminNote struct {
	ID             uuid.UUID
	SystemIntakeID uuid.UUID
	AuthorName     string
	Content        string
	CreatedAt      time.Time
}

// Action is a workflow event recorded against an intake.
type Action struct {
	ID             uuid.UUID
	SystemIntakeID uuid.UUID
	Type           ActionType
	ActorName      string
	CreatedAt      time.Time
}

// FundingSource ties an intake to a project number and investment.
type FundingSource struct {
	ID             uuid.UUID
	SystemIntakeID uuid.UUID
	ProjectNumber  string
	Investment     string
}

// IsLCIDExpiredAt reports whether an issued LCID has passed its expiration date at t.
func (i *SystemIntake) IsLCIDExpiredAt(t time.Time) bool {
	return i.Status == SystemIntakeStatusLCIDIssued &&
		i.LCIDExpiresAt != nil &&
		i.LCIDExpiresAt.Before(t)
}
