package domain

import (
	"time"

	"github.com/google/uuid"
)

// CedarSystem is a system-of-record entry from the CEDAR directory.
type CedarSystem struct {
	ID      string
	Name    string
	Acronym string
}

// SystemLink records that an intake relates to a CEDAR system.
type SystemLink struct {
	ID                                 uuid.UUID
	SystemIntakeID                     uuid.UUID
	SystemID                           string
	RelationshipTypes                  []SystemRelationshipType
	OtherSystemRelationshipDescription *string
	CreatedAt                          time.Time
}
