// Package version exposes build metadata injected at link time.
package version

import (
	"runtime"
)

var (
	// Version is the semantic version, injected at build time via -ldflags.
	Version = "dev"
	// GitCommit is the git commit hash, injected at build time.
	GitCommit = "unknown"
	// BuildDate is the build timestamp, injected at build time.
	BuildDate = "unknown"
	// GoVersion is the Go compiler version.
	GoVersion = runtime.Version()
	// Platform is the OS/Arch pair.
	Platform = runtime.GOOS + "/" + runtime.GOARCH
)

// String returns a single human-readable version line.
func String() string {
	return Version + " (" + GitCommit + ", " + BuildDate + ", " + GoVersion + ", " + Platform + ")"
}
