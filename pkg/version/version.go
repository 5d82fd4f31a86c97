// Package version exposes the build version of the oddspulse binary.
package version

// version is overridden at build time via -ldflags "-X".
var version = "0.1.0-dev" //nolint:gochecknoglobals // Set by the linker.

// GetVersion returns the current build version.
func GetVersion() string {
	return version
}
