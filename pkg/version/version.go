// Package version carries build metadata injected with -ldflags -X.
package version

import "fmt"

// Set at build time, e.g. -X github.com/zoro11031/day-scaffold/pkg/version.Commit=abc123
var (
	Version = "0.1.0-dev"
	Commit  = "unknown"
	Date    = "unknown"
)

// Info returns the line printed by `dayscaffold version`
func Info() string {
	return fmt.Sprintf("dayscaffold %s (commit %s, built %s)", Version, Commit, Date)
}
