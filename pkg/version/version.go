// Package version exposes the application version derived from build metadata.
//
// Priority: -ldflags override > VCS info from debug.BuildInfo > "dev" fallback.
//
//	version.GitCommit  // "a3f8c2d1" or "dev"
//	version.Full()     // "briefd/a3f8c2d1", "briefd/a3f8c2d1+dirty" or "briefd/dev"
package version

import "runtime/debug"

// AppName is the application name used in version strings and the CLI.
const AppName = "briefd"

// gitCommitOverride is set via -ldflags at build time for container builds
// where .git is unavailable. Empty string means no override.
var gitCommitOverride string

// GitCommit is the short git commit hash (8 chars) from build info.
// Set to "dev" when build info is unavailable (e.g., `go test`, non-git builds).
var GitCommit, Dirty = fromBuildInfo()

func fromBuildInfo() (commit string, dirty bool) {
	if gitCommitOverride != "" {
		return shorten(gitCommitOverride), false
	}
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "dev", false
	}
	return fromSettings(info.Settings)
}

func fromSettings(settings []debug.BuildSetting) (commit string, dirty bool) {
	commit = "dev"
	for _, s := range settings {
		switch s.Key {
		case "vcs.revision":
			if s.Value != "" {
				commit = shorten(s.Value)
			}
		case "vcs.modified":
			dirty = s.Value == "true"
		}
	}
	return commit, dirty
}

func shorten(rev string) string {
	if len(rev) > 8 {
		return rev[:8]
	}
	return rev
}

// Full returns "briefd/<commit>" for logging and the CLI version command.
func Full() string {
	v := AppName + "/" + GitCommit
	if Dirty {
		v += "+dirty"
	}
	return v
}
