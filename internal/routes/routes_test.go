package routes

import (
	"testing"

	"github.com/google/uuid"
)

func TestPaths(t *testing.T) {
	t.Parallel()

	id := uuid.MustParse("11111111-1111-1111-1111-111111111111")
	link := uuid.MustParse("22222222-2222-2222-2222-222222222222")

	tests := []struct {
		got  string
		want string
	}{
		{IntakeRequest(id), "/governance-review-team/11111111-1111-1111-1111-111111111111/intake-request"},
		{AddDates(id), "/governance-review-team/11111111-1111-1111-1111-111111111111/dates"},
		{Notes(id), "/governance-review-team/11111111-1111-1111-1111-111111111111/notes"},
		{EditLinkedSystem(id, link), "/linked-systems-form/11111111-1111-1111-1111-111111111111/edit/22222222-2222-2222-2222-222222222222"},
		{TRBRequest(id), "/trb/11111111-1111-1111-1111-111111111111/request"},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("got %q, want %q", tt.got, tt.want)
		}
	}
}
