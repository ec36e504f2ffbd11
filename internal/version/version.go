// internal/version/version.go

// Package version holds the release string printed by the version command.
package version

// Version is the toolkit release. Release builds override it with
// -ldflags "-X labtool/internal/version.Version=...".
var Version = "1.0.0"
