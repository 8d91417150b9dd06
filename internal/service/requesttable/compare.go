package requesttable

import (
	"cmp"

	"github.com/easi-app/easi-server/internal/domain"
)

// CompareStatus orders rows by status priority. Two LCID_ISSUED rows, or two
// LCID_EXPIRED rows, are ordered by their LCID instead; no other status pair
// looks at the LCID.
func CompareStatus(a, b Row) int {
	if a.Status == b.Status &&
		(a.Status == domain.SystemIntakeStatusLCIDIssued || a.Status == domain.SystemIntakeStatusLCIDExpired) {
		return cmp.Compare(a.lcid(), b.lcid())
	}
	return cmp.Compare(a.Status.Priority(), b.Status.Priority())
}

// CompareLastAdminNote orders rows by the timestamp of their last admin note.
// Rows without notes sort first.
func CompareLastAdminNote(a, b Row) int {
	return cmp.Compare(noteKey(a), noteKey(b))
}

// noteKeyLayout is fixed width so keys compare correctly as strings.
const noteKeyLayout = "2006-01-02T15:04:05.000000000Z"

func noteKey(r Row) string {
	if r.LastAdminNote == nil {
		return ""
	}
	return r.LastAdminNote.CreatedAt.UTC().Format(noteKeyLayout)
}
