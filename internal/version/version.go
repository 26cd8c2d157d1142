package version

import "fmt"

// Build information set by ldflags
var (
	Version = "dev"     // Set by goreleaser: -X github.com/arthur-debert/gameshift/internal/version.Version={{.Version}}
	Commit  = "unknown" // Set by goreleaser: -X github.com/arthur-debert/gameshift/internal/version.Commit={{.Commit}}
	Date    = "unknown" // Set by goreleaser: -X github.com/arthur-debert/gameshift/internal/version.Date={{.Date}}
)

// String renders the build information on one line per field
func String() string {
	return fmt.Sprintf("gameshift version %s\n  commit: %s\n  built:  %s", Version, Commit, Date)
}
