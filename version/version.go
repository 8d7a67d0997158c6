// Package version holds the finch release version.
package version

// Version is the current finch version. Overridden at release time via
// -ldflags "-X github.com/finch-gen/finch/version.Version=...".
var Version = "0.2.0-dev"
