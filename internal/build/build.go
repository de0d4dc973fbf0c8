// Package build holds build-time information set by the linker.
package build

var (
	// Version is the application version. It defaults to "dev".
	Version = "dev"
	// Commit is the VCS revision the binary was built from.
	Commit = "none"
	// Date is when the binary was built.
	Date = "unknown"
)
