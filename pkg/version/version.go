// Package version exposes the build version of topfive.
package version

import (
	"github.com/Masterminds/semver/v3"
)

// DevVersion is reported when the binary was built without a release version.
const DevVersion = "dev"

// These are set at build time via
// -ldflags "-X github.com/rshade/topfive/pkg/version.version=v1.2.3".
//
//nolint:gochecknoglobals // ldflags targets.
var (
	version   = ""
	gitCommit = ""
)

// GetVersion returns the build version in canonical semver form without a
// leading "v", or DevVersion when none was set or it does not parse.
func GetVersion() string {
	return normalize(version)
}

// GetGitCommit returns the commit the binary was built from, or "unknown".
func GetGitCommit() string {
	if gitCommit == "" {
		return "unknown"
	}
	return gitCommit
}

func normalize(raw string) string {
	if raw == "" {
		return DevVersion
	}
	v, err := semver.NewVersion(raw)
	if err != nil {
		return DevVersion
	}
	return v.String()
}
