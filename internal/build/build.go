// Package build holds build-time information.
package build

// Version is the lessco version.
// It defaults to "dev" and can be overwritten by linker flags.
var Version = "dev"

// Commit is the source revision lessco was built from, set by linker flags.
var Commit = "unknown"
