package domain

import (
	"time"

	"github.com/google/uuid"
)

// TRBRequest is a technical review board request.
type TRBRequest struct {
	ID                 uuid.UUID
	Name               string
	Status             TRBRequestStatus
	State              RequestState
	RequesterName      string
	LeadName           *string
	SubmittedAt        *time.Time
	ConsultMeetingTime *time.Time
	CreatedAt          time.Time
}
