// Package version carries the interpreter's build version, validated
// against semver with golang.org/x/mod/semver.
package version

import (
	"fmt"

	"golang.org/x/mod/semver"
)

// Version is overridden at build time via -ldflags, e.g.
// -X github.com/opal-lang/mython/internal/version.Version=v1.3.0
var Version = "v0.0.0-dev"

// String returns Version, falling back to the dev placeholder if a build
// injected something that isn't valid semver.
func String() string {
	if !semver.IsValid(Version) {
		return "v0.0.0-dev"
	}
	return Version
}

// Validate reports an error if Version was set to something that isn't
// valid semver; cmd/mython's version command calls this before printing,
// so a bad -ldflags build fails loudly instead of printing nonsense.
func Validate() error {
	if !semver.IsValid(Version) {
		return fmt.Errorf("version: %q is not valid semver", Version)
	}
	return nil
}
