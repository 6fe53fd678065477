package settings

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"
)

const (
	// PlatformCatalog is the name the platform catalog is registered under.
	PlatformCatalog = "mn"

	// PlatformModule is the module of the published platform catalog.
	PlatformModule = "io.micronaut.platform:micronaut-platform"

	// VersionProperty is the Gradle property holding the platform version.
	VersionProperty = "micronautVersion"

	// MavenCentralURL is the URL of Maven Central.
	MavenCentralURL = "https://repo.maven.apache.org/maven2/"

	// SnapshotsURL is the repository serving platform snapshots.
	SnapshotsURL = "https://s01.oss.sonatype.org/content/repositories/snapshots/"
)

// Repository is a named Maven repository.
type Repository struct {
	Name string `json:"name" yaml:"name"`
	URL  string `json:"url" yaml:"url"`
}

// PlatformVersion returns the platform version of the project in projectDir.
//
// Lookup order:
//  1. the ORG_GRADLE_PROJECT_micronautVersion environment variable;
//  2. micronautVersion in gradle.properties;
//  3. a string micronaut entry in the [versions] table of gradle/libs.versions.toml.
//
// It returns ErrPlatformVersionNotFound when none is set.
func PlatformVersion(projectDir string) (string, error) {
	v, err := gradleProperties(projectDir)
	if err != nil {
		return "", err
	}
	if version := v.GetString(VersionProperty); version != "" {
		return version, nil
	}
	if version := catalogPlatformVersion(filepath.Join(projectDir, CatalogDir, "libs.versions.toml")); version != "" {
		return version, nil
	}
	return "", ErrPlatformVersionNotFound
}

// gradleProperties reads gradle.properties, which share the key=value shape of
// dotenv files, and binds the environment variable Gradle maps to the
// platform version property.
func gradleProperties(projectDir string) (*viper.Viper, error) {
	v := viper.New()
	if err := v.BindEnv(VersionProperty, "ORG_GRADLE_PROJECT_"+VersionProperty); err != nil {
		return nil, err
	}

	path := filepath.Join(projectDir, "gradle.properties")
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return v, nil
		}
		return nil, err
	}
	v.SetConfigFile(path)
	v.SetConfigType("env")
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read gradle.properties: %w", err)
	}
	return v, nil
}

// catalogPlatformVersion returns [versions].micronaut when it is a plain
// string. Unreadable or invalid files yield no version.
func catalogPlatformVersion(path string) string {
	data, err := os.ReadFile(path)
	if err != nil {
		return ""
	}
	var doc struct {
		Versions map[string]any `toml:"versions"`
	}
	if err := toml.Unmarshal(data, &doc); err != nil {
		return ""
	}
	version, _ := doc.Versions["micronaut"].(string)
	return version
}

// PlatformCoordinates returns the GAV coordinates of the platform catalog.
func PlatformCoordinates(version string) string {
	return PlatformModule + ":" + version
}

// Repositories returns the repositories registered for a build that declares
// none: Maven Central, plus the snapshots repository for snapshot versions.
func Repositories(version string) []Repository {
	repos := []Repository{{Name: "MavenRepo", URL: MavenCentralURL}}
	if strings.HasSuffix(version, "-SNAPSHOT") {
		repos = append(repos, Repository{Name: "Micronaut Snapshots", URL: SnapshotsURL})
	}
	return repos
}

// RepositoryURLs returns the URLs of repos.
func RepositoryURLs(repos []Repository) []string {
	urls := make([]string, len(repos))
	for i, r := range repos {
		urls[i] = r.URL
	}
	return urls
}
