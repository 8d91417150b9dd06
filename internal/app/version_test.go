package app

import "testing"

func TestFormatVersion(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		version string
		commit  string
		built   string
		vcs     map[string]string
		want    string
	}{
		{
			name:    "ldflags win over vcs",
			version: "1.4.0", commit: "abc123", built: "2026-01-02T03:04:05Z",
			vcs:  map[string]string{"vcs.revision": "ffffffffffffffff"},
			want: "1.4.0+abc123 2026-01-02T03:04:05Z",
		},
		{
			name:    "vcs fallback is shortened",
			version: "dev",
			vcs: map[string]string{
				"vcs.revision": "0123456789abcdef0123",
				"vcs.time":     "2026-03-01T00:00:00Z",
			},
			want: "dev+0123456789ab 2026-03-01T00:00:00Z",
		},
		{
			name:    "dirty tree",
			version: "dev",
			vcs:     map[string]string{"vcs.revision": "abc", "vcs.modified": "true"},
			want:    "dev+abc-dirty",
		},
		{
			name:    "nothing known",
			version: "dev",
			want:    "dev+unknown",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := formatVersion(tt.version, tt.commit, tt.built, tt.vcs); got != tt.want {
				t.Errorf("formatVersion() = %q, want %q", got, tt.want)
			}
		})
	}
}
