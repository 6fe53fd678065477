package settings

import "errors"

var (
	// ErrPlatformVersionNotFound indicates neither gradle.properties nor
	// gradle/libs.versions.toml declares the platform version.
	ErrPlatformVersionNotFound = errors.New("platform version must be declared in gradle.properties or gradle/libs.versions.toml")

	// ErrProjectRootNotFound indicates no settings script or git worktree encloses a directory.
	ErrProjectRootNotFound = errors.New("project root not found")
)
