// Package version holds build metadata stamped in by the linker.
package version

import "fmt"

// Set via -ldflags "-X github.com/dkoosis/lintrisk/internal/version.Version=...".
var (
	Version    = "dev"
	CommitHash = "unknown"
	BuildDate  = "unknown"
)

// String formats the build metadata for the version command.
func String() string {
	return fmt.Sprintf("lintrisk version %s\nCommit: %s\nBuilt: %s\n", Version, CommitHash, BuildDate)
}
