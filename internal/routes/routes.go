// Package routes builds front-end paths that table cells link to.
package routes

import (
	"fmt"

	"github.com/google/uuid"
)

// IntakeRequest is the admin view of an intake's request form.
func IntakeRequest(id uuid.UUID) string {
	return fmt.Sprintf("/governance-review-team/%s/intake-request", id)
}

// AddDates is where an admin schedules GRT/GRB meetings for an intake.
func AddDates(id uuid.UUID) string {
	return fmt.Sprintf("/governance-review-team/%s/dates", id)
}

// Notes lists the admin notes of an intake.
func Notes(id uuid.UUID) string {
	return fmt.Sprintf("/governance-review-team/%s/notes", id)
}

// EditLinkedSystem opens the form for an existing intake/system link.
func EditLinkedSystem(intakeID, linkID uuid.UUID) string {
	return fmt.Sprintf("/linked-systems-form/%s/edit/%s", intakeID, linkID)
}

// TRBRequest is the admin view of a technical review board request.
func TRBRequest(id uuid.UUID) string {
	return fmt.Sprintf("/trb/%s/request", id)
}
