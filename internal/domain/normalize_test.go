package domain

import "testing"

func TestNormalizeSearchText(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "trim spaces", input: "  oit  ", want: "oit"},
		{name: "lowercase", input: "Office Of IT", want: "office of it"},
		{name: "collapse spaces", input: "lcid   issued", want: "lcid issued"},
		{name: "tabs and newlines", input: "\tno\nadmin  notes ", want: "no admin notes"},
		{name: "empty string", input: "", want: ""},
		{name: "only spaces", input: "   ", want: ""},
		{name: "diacritics preserved", input: "Résumé", want: "résumé"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := NormalizeSearchText(tt.input); got != tt.want {
				t.Errorf("NormalizeSearchText(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
