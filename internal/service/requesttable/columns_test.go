package requesttable

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/easi-app/easi-server/internal/domain"
	"github.com/easi-app/easi-server/internal/routes"
	"github.com/easi-app/easi-server/internal/service/table"
)

func columnIDs(cols []Column) []string {
	out := make([]string, len(cols))
	for i, c := range cols {
		out[i] = c.ID
	}
	return out
}

func TestBuildColumns_Open(t *testing.T) {
	t.Parallel()

	cols, err := BuildColumns(TableOpen, testTranslator(t))
	require.NoError(t, err)

	assert.Equal(t, []string{
		ColSubmittedAt, ColRequestName, ColRequester, ColAdminLead, ColStatus, ColGRTDate, ColGRBDate,
	}, columnIDs(cols))
	assert.Equal(t, "Submission date", cols[0].Header)
	assert.Equal(t, "GRB date", cols[6].Header)

	row := Row{ID: domainID(), RequestName: "Cloud", RequesterNameAndComponent: "Jane, OIT", SubmittedAt: dayPtr(2)}

	admin, _ := table.Find(cols, ColAdminLead)
	c := admin.Render(row)
	assert.Equal(t, "Not assigned", c.Text)
	assert.Equal(t, table.IconWarning, c.Icon)

	row.AdminLead = ptr("Ann Admin")
	assert.Equal(t, table.TextCell("Ann Admin"), admin.Render(row))

	name, _ := table.Find(cols, ColRequestName)
	assert.Equal(t, table.LinkCell("Cloud", routes.IntakeRequest(row.ID)), name.Render(row))

	grt, _ := table.Find(cols, ColGRTDate)
	c = grt.Render(row)
	assert.Equal(t, table.CellAction, c.Kind)
	assert.Equal(t, "Add date", c.Text)
	assert.Equal(t, routes.AddDates(row.ID), c.Href)

	row.GRTDate = dayPtr(15)
	c = grt.Render(row)
	assert.Equal(t, table.CellDate, c.Kind)
	assert.Equal(t, "01/15/2024", c.Text)

	req, _ := table.Find(cols, ColRequester)
	assert.Equal(t, "Jane, OIT", req.Render(row).Text)
}

func TestBuildColumns_Closed(t *testing.T) {
	t.Parallel()

	cols, err := BuildColumns(TableClosed, testTranslator(t))
	require.NoError(t, err)

	assert.Equal(t, []string{
		ColSubmittedAt, ColRequestName, ColRequester, ColLCIDExpiresAt, ColStatus, ColLastAdminNote,
	}, columnIDs(cols))

	row := Row{ID: domainID()}

	lcid, _ := table.Find(cols, ColLCIDExpiresAt)
	assert.Equal(t, "No LCID Issued", lcid.Render(row).Text)

	note, _ := table.Find(cols, ColLastAdminNote)
	assert.Equal(t, "No Admin Notes", note.Render(row).Text)

	row.LastAdminNote = &domain.AdminNote{Content: "Looks good", CreatedAt: day(4)}
	c := note.Render(row)
	assert.Equal(t, table.CellRichText, c.Kind)
	assert.Equal(t, "Looks good", c.Text)
	require.NotNil(t, c.Date)
	assert.True(t, c.Date.Equal(day(4)))
	assert.Positive(t, c.Truncate)

	sub, _ := table.Find(cols, ColSubmittedAt)
	assert.Equal(t, "Not submitted", sub.Render(Row{}).Text)
}

func TestBuildColumns_UnknownTable(t *testing.T) {
	t.Parallel()

	_, err := BuildColumns("archived", testTranslator(t))
	assert.True(t, errors.Is(err, domain.ErrValidation))
}

func TestSortRows_StatusColumn(t *testing.T) {
	t.Parallel()

	cols, err := BuildColumns(TableClosed, testTranslator(t))
	require.NoError(t, err)

	rows := []Row{
		{RequestName: "c", Status: domain.SystemIntakeStatusLCIDIssued, LCID: ptr("B")},
		{RequestName: "a", Status: domain.SystemIntakeStatusNotApproved},
		{RequestName: "b", Status: domain.SystemIntakeStatusLCIDIssued, LCID: ptr("A")},
		{RequestName: "d", Status: domain.SystemIntakeStatusIntakeSubmitted},
	}
	require.NoError(t, SortRows(rows, cols, ColStatus, false))

	names := make([]string, len(rows))
	for i, r := range rows {
		names[i] = r.RequestName
	}
	assert.Equal(t, []string{"d", "b", "c", "a"}, names)
}

func TestSortRows_LastAdminNoteDescending(t *testing.T) {
	t.Parallel()

	cols, err := BuildColumns(TableClosed, testTranslator(t))
	require.NoError(t, err)

	rows := []Row{
		{RequestName: "none"},
		{RequestName: "old", LastAdminNote: &domain.AdminNote{CreatedAt: day(1)}},
		{RequestName: "new", LastAdminNote: &domain.AdminNote{CreatedAt: day(9)}},
	}
	require.NoError(t, SortRows(rows, cols, ColLastAdminNote, true))
	assert.Equal(t, "new", rows[0].RequestName)
	assert.Equal(t, "none", rows[2].RequestName)
}

func TestFilterRows(t *testing.T) {
	t.Parallel()

	cols, err := BuildColumns(TableOpen, testTranslator(t))
	require.NoError(t, err)

	rows := []Row{
		{ID: domainID(), RequestName: "Cloud migration", RequesterNameAndComponent: "Jane, OIT", FilterDate: dayPtr(3)},
		{ID: domainID(), RequestName: "Data lake", RequesterNameAndComponent: "Raj, CM", FilterDate: dayPtr(20)},
		{ID: domainID(), RequestName: "No activity", RequesterNameAndComponent: "Raj, CM"},
	}

	assert.Len(t, FilterRows(rows, cols, Filter{Query: "raj"}), 2)
	assert.Len(t, FilterRows(rows, cols, Filter{Query: "CLOUD"}), 1)

	got := FilterRows(rows, cols, Filter{Query: "raj", Dates: table.DateRange{From: dayPtr(10)}})
	require.Len(t, got, 1)
	assert.Equal(t, "Data lake", got[0].RequestName)
}

func TestColumnCache(t *testing.T) {
	t.Parallel()

	cache, err := NewColumnCache(8)
	require.NoError(t, err)

	b := testBundle(t)
	en, es := b.For("en"), b.For("es")

	first, err := cache.Columns(TableOpen, en)
	require.NoError(t, err)
	again, err := cache.Columns(TableOpen, en)
	require.NoError(t, err)
	assert.Same(t, &first[0], &again[0])
	assert.Equal(t, 1, cache.Len())

	_, err = cache.Columns(TableOpen, es)
	require.NoError(t, err)
	_, err = cache.Columns(TableClosed, en)
	require.NoError(t, err)
	assert.Equal(t, 3, cache.Len())

	_, err = cache.Columns("bogus", en)
	assert.True(t, errors.Is(err, domain.ErrValidation))
	assert.Equal(t, 3, cache.Len())
}

func TestNewColumnCache_InvalidSize(t *testing.T) {
	t.Parallel()

	_, err := NewColumnCache(0)
	assert.Error(t, err)
}
