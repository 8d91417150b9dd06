package requesttable

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/easi-app/easi-server/internal/domain"
	"github.com/easi-app/easi-server/internal/i18n"
)

// NormalizeRows derives table rows from intakes. It fails on the first
// intake without a requester name and never returns partial output.
// Inputs are not modified.
func NormalizeRows(intakes []domain.SystemIntake, t i18n.Translator) ([]Row, error) {
	rows := make([]Row, 0, len(intakes))
	for i := range intakes {
		row, err := normalizeRow(&intakes[i], t)
		if err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func normalizeRow(in *domain.SystemIntake, t i18n.Translator) (Row, error) {
	if strings.TrimSpace(in.Requester.Name) == "" {
		return Row{}, fmt.Errorf("intake %s: %w", in.ID, domain.NewValidationError("requester.name", "required"))
	}

	row := Row{
		ID:            in.ID,
		RequestName:   in.RequestName,
		Status:        in.Status,
		State:         in.State,
		Requester:     in.Requester,
		AdminLead:     in.AdminLead,
		LCID:          in.LCID,
		SubmittedAt:   in.SubmittedAt,
		GRTDate:       in.GRTDate,
		GRBDate:       in.GRBDate,
		LCIDExpiresAt: in.LCIDExpiresAt,

		RequesterNameAndComponent: RequesterNameAndComponent(in.Requester),
		LastAdminNote:             LastAdminNote(in.Notes),
		FundingSources:            FormatFundingSources(in.FundingSources),
	}

	if in.Status == domain.SystemIntakeStatusLCIDIssued {
		row.State = domain.RequestStateClosed
	}

	if row.LastAdminNote != nil {
		d := row.LastAdminNote.CreatedAt
		row.FilterDate = &d
	} else {
		row.FilterDate = latestActionDate(in.Actions)
	}

	row.StatusLabel = t.T("intake:statusMap."+in.Status.String(), map[string]string{"lcid": row.lcid()})
	return row, nil
}

// RequesterNameAndComponent formats "Name, ACRONYM". Components without an
// acronym show their full name; an empty component shows the name alone.
func RequesterNameAndComponent(r domain.Requester) string {
	if r.Component == "" {
		return r.Name
	}
	if acronym, ok := domain.ComponentAcronym(r.Component); ok && acronym != "" {
		return r.Name + ", " + acronym
	}
	return r.Name + ", " + r.Component
}

// LastAdminNote returns a copy of the most recent note, or nil.
// Among notes with equal timestamps the later one in input order wins.
func LastAdminNote(notes []domain.AdminNote) *domain.AdminNote {
	if len(notes) == 0 {
		return nil
	}
	sorted := slices.Clone(notes)
	slices.SortStableFunc(sorted, func(a, b domain.AdminNote) int {
		return a.CreatedAt.Compare(b.CreatedAt)
	})
	last := sorted[len(sorted)-1]
	return &last
}

func latestActionDate(actions []domain.Action) *time.Time {
	var latest *time.Time
	for i := range actions {
		if latest == nil || actions[i].CreatedAt.After(*latest) {
			d := actions[i].CreatedAt
			latest = &d
		}
	}
	return latest
}
