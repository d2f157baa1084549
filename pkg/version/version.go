// Package version carries build metadata injected with -ldflags -X.
package version

import (
	"fmt"
	"runtime/debug"
)

const develVersion = "(devel)"

//nolint:gochecknoglobals // set by the linker.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// Resolved returns Version, falling back to the main module version recorded
// by `go install` when no version was linked in.
func Resolved() string {
	if Version != "dev" {
		return Version
	}

	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" && info.Main.Version != develVersion {
		return info.Main.Version
	}

	return Version
}

// String formats the build metadata for `tscbridge version`.
func String() string {
	return fmt.Sprintf("tscbridge %s (commit: %s, built: %s)", Resolved(), Commit, Date)
}
