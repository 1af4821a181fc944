// Package version holds build information, set with -ldflags "-X".
package version

// Version is the application version.
var Version = "dev"
