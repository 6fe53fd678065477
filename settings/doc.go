// Package settings locates and loads the catalog files of a Gradle project.
//
// A project may override the versions of any of its catalogs with a file
// named gradle/<catalog>-override.versions.toml next to the settings script.
// The platform catalog, registered as "mn", is published at
// io.micronaut.platform:micronaut-platform:<version>, where the version comes
// from the micronautVersion Gradle property or, failing that, from the
// micronaut entry of gradle/libs.versions.toml.
package settings
