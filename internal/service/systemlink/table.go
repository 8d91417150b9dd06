package systemlink

import (
	"strings"

	"github.com/google/uuid"

	"github.com/easi-app/easi-server/internal/domain"
	"github.com/easi-app/easi-server/internal/i18n"
	"github.com/easi-app/easi-server/internal/routes"
)

// Row is one linked system as displayed.
type Row struct {
	LinkID       uuid.UUID `json:"linkId"`
	SystemID     string    `json:"systemId"`
	SystemName   string    `json:"systemName"`
	Relationship string    `json:"relationship"`
	EditPath     string    `json:"editPath"`
}

// Warning is a non-blocking banner shown above the table.
type Warning struct {
	Message     string `json:"message"`
	ContactHref string `json:"contactHref"`
}

// Table is the linked systems of one intake.
type Table struct {
	Headers Headers  `json:"headers"`
	Rows    []Row    `json:"rows"`
	Warning *Warning `json:"warning,omitempty"`
}

// Headers are the translated column and action labels.
type Headers struct {
	SystemName   string `json:"systemName"`
	Relationship string `json:"relationship"`
	Actions      string `json:"actions"`
	Edit         string `json:"edit"`
	Remove       string `json:"remove"`
}

// BuildTable resolves each link against the CEDAR directory, keeping input
// order. Links to systems missing from the directory get an empty name.
// A non-nil directoryErr adds a warning pointing to helpMailbox; rows are
// still built.
func BuildTable(
	intakeID uuid.UUID,
	links []domain.SystemLink,
	directory []domain.CedarSystem,
	directoryErr error,
	t i18n.Translator,
	helpMailbox string,
) Table {
	names := make(map[string]string, len(directory))
	for _, s := range directory {
		names[s.ID] = s.Name
	}

	rows := make([]Row, 0, len(links))
	for _, l := range links {
		rows = append(rows, Row{
			LinkID:       l.ID,
			SystemID:     l.SystemID,
			SystemName:   names[l.SystemID],
			Relationship: RelationshipLabel(l, t),
			EditPath:     routes.EditLinkedSystem(intakeID, l.ID),
		})
	}

	tbl := Table{
		Headers: Headers{
			SystemName:   t.T("linkedSystems:table.header.systemName", nil),
			Relationship: t.T("linkedSystems:table.header.relationship", nil),
			Actions:      t.T("linkedSystems:table.header.actions", nil),
			Edit:         t.T("linkedSystems:table.edit", nil),
			Remove:       t.T("linkedSystems:table.remove", nil),
		},
		Rows: rows,
	}
	if directoryErr != nil {
		tbl.Warning = &Warning{
			Message:     t.T("linkedSystems:directoryUnavailable", map[string]string{"email": helpMailbox}),
			ContactHref: "mailto:" + helpMailbox,
		}
	}
	return tbl
}

// RelationshipLabel joins the translated relationship types with ", ".
// OTHER carries its free-text description in parentheses when present.
func RelationshipLabel(l domain.SystemLink, t i18n.Translator) string {
	labels := make([]string, 0, len(l.RelationshipTypes))
	for _, rt := range l.RelationshipTypes {
		label := t.T("linkedSystems:relationshipTypes."+rt.String(), nil)
		if rt == domain.SystemRelationshipOther && l.OtherSystemRelationshipDescription != nil {
			if desc := strings.TrimSpace(*l.OtherSystemRelationshipDescription); desc != "" {
				label += " (" + desc + ")"
			}
		}
		labels = append(labels, label)
	}
	return strings.Join(labels, ", ")
}
