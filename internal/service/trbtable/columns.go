package trbtable

import (
	"time"

	"github.com/easi-app/easi-server/internal/domain"
	"github.com/easi-app/easi-server/internal/i18n"
	"github.com/easi-app/easi-server/internal/routes"
	"github.com/easi-app/easi-server/internal/service/table"
)

// Column is a TRB table column.
type Column = table.Column[domain.TRBRequest]

// Column IDs.
const (
	ColRequestName = "requestName"
	ColSubmittedAt = "submittedAt"
	ColRequester   = "requester"
	ColConsultDate = "consultDate"
	ColTRBLead     = "trbLead"
	ColStatus      = "status"
)

// CompareConsultDate orders requests by consult meeting time, falling back
// to the submission date when no consult is scheduled. Requests with
// neither sort last.
func CompareConsultDate(a, b domain.TRBRequest) int {
	ak, bk := consultKey(a), consultKey(b)
	switch {
	case ak == nil && bk == nil:
		return 0
	case ak == nil:
		return 1
	case bk == nil:
		return -1
	}
	return ak.Compare(*bk)
}

func consultKey(r domain.TRBRequest) *time.Time {
	if r.ConsultMeetingTime != nil {
		return r.ConsultMeetingTime
	}
	return r.SubmittedAt
}

// BuildColumns returns the TRB admin table columns.
func BuildColumns(t i18n.Translator) []Column {
	return []Column{
		{
			ID:       ColRequestName,
			Header:   t.T("technicalAssistance:table.header.requestName", nil),
			Accessor: func(r domain.TRBRequest) any { return r.Name },
			Cell: func(r domain.TRBRequest) table.Cell {
				return table.LinkCell(r.Name, routes.TRBRequest(r.ID))
			},
		},
		{
			ID:       ColSubmittedAt,
			Header:   t.T("technicalAssistance:table.header.submissionDate", nil),
			Accessor: func(r domain.TRBRequest) any { return r.SubmittedAt },
			Cell: func(r domain.TRBRequest) table.Cell {
				return table.DateCell(r.SubmittedAt, t.T("governanceReviewTeam:notSubmitted", nil))
			},
		},
		{
			ID:       ColRequester,
			Header:   t.T("technicalAssistance:table.header.requester", nil),
			Accessor: func(r domain.TRBRequest) any { return r.RequesterName },
		},
		{
			ID:       ColConsultDate,
			Header:   t.T("technicalAssistance:table.header.consultDate", nil),
			Accessor: func(r domain.TRBRequest) any { return r.ConsultMeetingTime },
			Cell: func(r domain.TRBRequest) table.Cell {
				return table.DateCell(r.ConsultMeetingTime, t.T("technicalAssistance:table.notScheduled", nil))
			},
			Compare: CompareConsultDate,
		},
		{
			ID:       ColTRBLead,
			Header:   t.T("technicalAssistance:table.header.trbLead", nil),
			Accessor: func(r domain.TRBRequest) any { return r.LeadName },
			Cell: func(r domain.TRBRequest) table.Cell {
				if r.LeadName == nil || *r.LeadName == "" {
					return table.Cell{
						Kind: table.CellText,
						Text: t.T("technicalAssistance:table.notAssigned", nil),
						Icon: table.IconWarning,
					}
				}
				return table.TextCell(*r.LeadName)
			},
		},
		{
			ID:     ColStatus,
			Header: t.T("technicalAssistance:table.header.status", nil),
			Accessor: func(r domain.TRBRequest) any {
				return t.T("technicalAssistance:statusMap."+r.Status.String(), nil)
			},
		},
	}
}
