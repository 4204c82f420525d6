// Package build contains information from the build time, injected via ldflags.
package build

var (
	BuildVersion = "dev"
	GitCommit    = "-"
	BuildDate    = "-"
)
