package requesttable

import (
	"fmt"
	"time"

	"github.com/easi-app/easi-server/internal/domain"
	"github.com/easi-app/easi-server/internal/i18n"
	"github.com/easi-app/easi-server/internal/routes"
	"github.com/easi-app/easi-server/internal/service/table"
)

// Column is a request table column over Rows.
type Column = table.Column[Row]

// Column IDs.
const (
	ColSubmittedAt   = "submittedAt"
	ColRequestName   = "requestName"
	ColRequester     = "requester"
	ColAdminLead     = "adminLead"
	ColStatus        = "status"
	ColGRTDate       = "grtDate"
	ColGRBDate       = "grbDate"
	ColLCIDExpiresAt = "lcidExpiresAt"
	ColLastAdminNote = "lastAdminNote"
)

// noteTruncateLength is how much of a note the closed table shows before "read more".
const noteTruncateLength = 140

// BuildColumns returns the ordered columns of the open or closed view.
func BuildColumns(active ActiveTable, t i18n.Translator) ([]Column, error) {
	switch active {
	case TableOpen:
		return []Column{
			submittedAtColumn(t),
			requestNameColumn(t),
			requesterColumn(t),
			{
				ID:       ColAdminLead,
				Header:   t.T("intake:fields.adminLead", nil),
				Accessor: func(r Row) any { return r.AdminLead },
				Cell: func(r Row) table.Cell {
					if r.AdminLead == nil || *r.AdminLead == "" {
						return table.Cell{
							Kind: table.CellText,
							Text: t.T("governanceReviewTeam:adminLeads.notAssigned", nil),
							Icon: table.IconWarning,
						}
					}
					return table.TextCell(*r.AdminLead)
				},
			},
			statusColumn(t),
			meetingDateColumn(t, ColGRTDate, "intake:fields.grtDate", func(r Row) *time.Time { return r.GRTDate }),
			meetingDateColumn(t, ColGRBDate, "intake:fields.grbDate", func(r Row) *time.Time { return r.GRBDate }),
		}, nil
	case TableClosed:
		return []Column{
			submittedAtColumn(t),
			requestNameColumn(t),
			requesterColumn(t),
			{
				ID:       ColLCIDExpiresAt,
				Header:   t.T("intake:fields.lcidExpirationDate", nil),
				Accessor: func(r Row) any { return r.LCIDExpiresAt },
				Cell: func(r Row) table.Cell {
					return table.DateCell(r.LCIDExpiresAt, t.T("governanceReviewTeam:lcid.noLcid", nil))
				},
			},
			statusColumn(t),
			{
				ID:     ColLastAdminNote,
				Header: t.T("intake:fields.lastAdminNote", nil),
				Accessor: func(r Row) any {
					if r.LastAdminNote == nil {
						return nil
					}
					return r.LastAdminNote.CreatedAt
				},
				Cell: func(r Row) table.Cell {
					n := r.LastAdminNote
					if n == nil {
						return table.TextCell(t.T("governanceReviewTeam:notes.noNotes", nil))
					}
					d := n.CreatedAt
					return table.Cell{
						Kind:     table.CellRichText,
						Text:     n.Content,
						Date:     &d,
						Truncate: noteTruncateLength,
					}
				},
				Compare: CompareLastAdminNote,
			},
		}, nil
	}
	return nil, fmt.Errorf("build columns: %w", domain.NewValidationError("table", "must be open or closed"))
}

func submittedAtColumn(t i18n.Translator) Column {
	return Column{
		ID:       ColSubmittedAt,
		Header:   t.T("intake:fields.submissionDate", nil),
		Accessor: func(r Row) any { return r.SubmittedAt },
		Cell: func(r Row) table.Cell {
			return table.DateCell(r.SubmittedAt, t.T("governanceReviewTeam:notSubmitted", nil))
		},
	}
}

func requestNameColumn(t i18n.Translator) Column {
	return Column{
		ID:       ColRequestName,
		Header:   t.T("intake:fields.requestName", nil),
		Accessor: func(r Row) any { return r.RequestName },
		Cell: func(r Row) table.Cell {
			return table.LinkCell(r.RequestName, routes.IntakeRequest(r.ID))
		},
	}
}

func requesterColumn(t i18n.Translator) Column {
	return Column{
		ID:       ColRequester,
		Header:   t.T("intake:fields.requester", nil),
		Accessor: func(r Row) any { return r.RequesterNameAndComponent },
	}
}

func statusColumn(t i18n.Translator) Column {
	return Column{
		ID:       ColStatus,
		Header:   t.T("intake:fields.status", nil),
		Accessor: func(r Row) any { return r.StatusLabel },
		Compare:  CompareStatus,
	}
}

// meetingDateColumn renders a GRT/GRB date, or an "add date" link when unscheduled.
func meetingDateColumn(t i18n.Translator, id, headerKey string, date func(Row) *time.Time) Column {
	return Column{
		ID:       id,
		Header:   t.T(headerKey, nil),
		Accessor: func(r Row) any { return date(r) },
		Cell: func(r Row) table.Cell {
			if d := date(r); d != nil {
				return table.DateCell(d, "")
			}
			return table.ActionCell(t.T("governanceReviewTeam:actions.addDate", nil), routes.AddDates(r.ID))
		},
	}
}
