// Package bazelexport renders a version catalog as a rules_jvm_external
// maven.install declaration for a MODULE.bazel file.
//
// Every library with a resolvable version becomes a "group:name:version"
// artifact. The version is the strict version when set, else the required
// one, else the preferred one. Libraries whose version rejects everything,
// or that have no version at all, are left out and logged at warn level.
//
//	out, err := bazelexport.Export(model,
//	    bazelexport.WithRepositories(settings.Repositories(platformVersion)...))
//
// ReadArtifacts reads the artifacts back from an existing MODULE.bazel.
package bazelexport
