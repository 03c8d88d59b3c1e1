// Package version contains build version information.
// Values other than Version are set at build time via ldflags:
//
//	-X github.com/bissquit/newsletter/internal/version.GitCommit=$(git rev-parse HEAD)
package version

var (
	// Version is the current application version.
	Version = "0.1.0"

	// GitCommit is the git commit hash.
	GitCommit = "unknown"

	// BuildDate is the build date.
	BuildDate = "unknown"
)
