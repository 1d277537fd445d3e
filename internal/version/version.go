// Package version carries build-time version metadata.
package version

// Version contains the application version. Set via build-time ldflags:
// go build -ldflags "-X github.com/siteforge-dev/siteforge/internal/version.Version=v1.2.0".
var Version = "dev"

// Build metadata, also set via ldflags.
var (
	BuildTime = "unknown"
	GitCommit = "unknown"
)
