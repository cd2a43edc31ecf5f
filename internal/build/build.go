// Package build holds build metadata stamped in at release time via ldflags.
package build

var (
	Version = "dev"
	Commit  = ""
	Date    = ""
)
