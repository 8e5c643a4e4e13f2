// Package version holds build metadata injected at link time.
package version

import "fmt"

// Build information, overridden with
// -ldflags "-X github.com/arthur-debert/guess/internal/version.Version=..."
var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)

// String formats the build information on one line
func String() string {
	return fmt.Sprintf("%s (commit %s, built %s)", Version, Commit, Date)
}
