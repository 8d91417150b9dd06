package app

import (
	"runtime/debug"
)

// Version, Commit and BuildTime may be stamped with -ldflags -X.
// Unset values fall back to the VCS settings embedded by the go tool.
var (
	Version   = "dev"
	Commit    = ""
	BuildTime = ""
)

// BuildVersion is the version string reported at startup and by /health.
func BuildVersion() string {
	return formatVersion(Version, Commit, BuildTime, vcsSettings())
}

func vcsSettings() map[string]string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return nil
	}
	out := make(map[string]string, len(info.Settings))
	for _, s := range info.Settings {
		out[s.Key] = s.Value
	}
	return out
}

func formatVersion(version, commit, built string, vcs map[string]string) string {
	if commit == "" {
		commit = vcs["vcs.revision"]
	}
	if built == "" {
		built = vcs["vcs.time"]
	}
	if commit == "" {
		commit = "unknown"
	}
	if len(commit) > 12 {
		commit = commit[:12]
	}
	if vcs["vcs.modified"] == "true" {
		commit += "-dirty"
	}

	v := version + "+" + commit
	if built != "" {
		v += " " + built
	}
	return v
}
