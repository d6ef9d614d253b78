// Package version holds build metadata injected at link time.
package version

// Set via -ldflags "-X github.com/safedep/bandview/internal/version.Version=..."
var (
	Version = "dev"
	Commit  = "none"
)
