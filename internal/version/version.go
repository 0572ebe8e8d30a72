// Package version carries build identification, injected at link time with
// -ldflags "-X".
package version

var (
	// Version is the release version of the converter tools.
	Version = "dev"
	// GitSHA is the git commit SHA the binaries were built from.
	GitSHA = "unknown"
	// BuildTime is the build timestamp.
	BuildTime = "unknown"
)

// String returns the version line printed by the -version flag.
func String() string {
	return Version + " (" + GitSHA + ", built " + BuildTime + ")"
}
