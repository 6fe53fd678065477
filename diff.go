package versioncatalog

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	masterminds "github.com/Masterminds/semver/v3"

	"github.com/albertocavalcante/go-versioncatalog/gradleversion"
)

// UpdateType classifies a version change by the semantic version component that moved.
type UpdateType string

const (
	UpdateMajor UpdateType = "major"
	UpdateMinor UpdateType = "minor"
	UpdatePatch UpdateType = "patch"

	// UpdateOther covers qualifier-only changes and versions that are not semver.
	UpdateOther UpdateType = "other"
)

// ClassifyUpdate returns which component differs between two versions.
func ClassifyUpdate(oldVersion, newVersion string) UpdateType {
	o, err := masterminds.NewVersion(oldVersion)
	if err != nil {
		return UpdateOther
	}
	n, err := masterminds.NewVersion(newVersion)
	if err != nil {
		return UpdateOther
	}
	switch {
	case o.Major() != n.Major():
		return UpdateMajor
	case o.Minor() != n.Minor():
		return UpdateMinor
	case o.Patch() != n.Patch():
		return UpdatePatch
	default:
		return UpdateOther
	}
}

// VersionEntry is a [versions] declaration that exists on one side of a diff.
type VersionEntry struct {
	// Alias is the key under [versions].
	Alias string `json:"alias" yaml:"alias"`

	// Version is the declared constraint.
	Version RichVersion `json:"version" yaml:"version"`
}

// VersionUpdate is a [versions] declaration present on both sides with different constraints.
type VersionUpdate struct {
	Alias string      `json:"alias" yaml:"alias"`
	Old   RichVersion `json:"old" yaml:"old"`
	New   RichVersion `json:"new" yaml:"new"`

	// Type is set for upgrades and downgrades.
	Type UpdateType `json:"type,omitempty" yaml:"type,omitempty"`
}

// LibraryChange is a library that exists on one side of a diff.
type LibraryChange struct {
	// Module is the "group:name" coordinate.
	Module string `json:"module" yaml:"module"`

	// Version is the rendered version declaration.
	Version string `json:"version" yaml:"version"`
}

// LibraryUpdate is a library present on both sides with a different version declaration.
type LibraryUpdate struct {
	Module     string `json:"module" yaml:"module"`
	OldVersion string `json:"old_version" yaml:"old_version"`
	NewVersion string `json:"new_version" yaml:"new_version"`
}

// CatalogDiff describes the differences between two catalogs.
//
// Versions are matched by alias and libraries by module coordinate.
//
// Example usage:
//
//	oldModel, _ := versioncatalog.ParseFile("old/libs.versions.toml")
//	newModel, _ := versioncatalog.ParseFile("gradle/libs.versions.toml")
//	diff := versioncatalog.DiffCatalogs(oldModel, newModel)
//	if !diff.IsEmpty() {
//	    fmt.Println(diff.Summary())
//	}
type CatalogDiff struct {
	AddedVersions   []VersionEntry `json:"added_versions,omitempty" yaml:"added_versions,omitempty"`
	RemovedVersions []VersionEntry `json:"removed_versions,omitempty" yaml:"removed_versions,omitempty"`

	// Upgraded and Downgraded compare the effective version with Gradle ordering.
	Upgraded   []VersionUpdate `json:"upgraded,omitempty" yaml:"upgraded,omitempty"`
	Downgraded []VersionUpdate `json:"downgraded,omitempty" yaml:"downgraded,omitempty"`

	// Modified holds constraints whose effective version is unchanged but whose
	// other facets (prefer, reject, rejectAll, strictness) differ.
	Modified []VersionUpdate `json:"modified,omitempty" yaml:"modified,omitempty"`

	AddedLibraries   []LibraryChange `json:"added_libraries,omitempty" yaml:"added_libraries,omitempty"`
	RemovedLibraries []LibraryChange `json:"removed_libraries,omitempty" yaml:"removed_libraries,omitempty"`
	ChangedLibraries []LibraryUpdate `json:"changed_libraries,omitempty" yaml:"changed_libraries,omitempty"`
}

// IsEmpty returns true if there are no differences between the catalogs.
func (d *CatalogDiff) IsEmpty() bool {
	return d.TotalChanges() == 0
}

// TotalChanges returns the number of changed versions and libraries.
func (d *CatalogDiff) TotalChanges() int {
	return len(d.AddedVersions) + len(d.RemovedVersions) +
		len(d.Upgraded) + len(d.Downgraded) + len(d.Modified) +
		len(d.AddedLibraries) + len(d.RemovedLibraries) + len(d.ChangedLibraries)
}

// Summary returns a one-line description of the diff.
func (d *CatalogDiff) Summary() string {
	if d.IsEmpty() {
		return "no changes"
	}
	counts := []struct {
		n     int
		label string
	}{
		{len(d.AddedVersions), "versions added"},
		{len(d.RemovedVersions), "versions removed"},
		{len(d.Upgraded), "upgraded"},
		{len(d.Downgraded), "downgraded"},
		{len(d.Modified), "modified"},
		{len(d.AddedLibraries), "libraries added"},
		{len(d.RemovedLibraries), "libraries removed"},
		{len(d.ChangedLibraries), "libraries changed"},
	}
	var parts []string
	for _, c := range counts {
		if c.n > 0 {
			parts = append(parts, fmt.Sprintf("%d %s", c.n, c.label))
		}
	}
	return strings.Join(parts, ", ")
}

// DiffCatalogs computes the difference between two catalogs.
// A nil model is treated as empty. Results are sorted by alias or module.
func DiffCatalogs(old, new *Model) *CatalogDiff {
	diff := &CatalogDiff{}
	oldVersions, newVersions := versionsByAlias(old), versionsByAlias(new)

	for alias, nv := range newVersions {
		ov, existed := oldVersions[alias]
		if !existed {
			diff.AddedVersions = append(diff.AddedVersions, VersionEntry{Alias: alias, Version: nv})
			continue
		}
		if ov.Equal(nv) {
			continue
		}
		update := VersionUpdate{Alias: alias, Old: ov, New: nv}
		switch c := gradleversion.Compare(nv.Effective(), ov.Effective()); {
		case c > 0:
			update.Type = ClassifyUpdate(ov.Effective(), nv.Effective())
			diff.Upgraded = append(diff.Upgraded, update)
		case c < 0:
			update.Type = ClassifyUpdate(ov.Effective(), nv.Effective())
			diff.Downgraded = append(diff.Downgraded, update)
		default:
			diff.Modified = append(diff.Modified, update)
		}
	}
	for alias, ov := range oldVersions {
		if _, exists := newVersions[alias]; !exists {
			diff.RemovedVersions = append(diff.RemovedVersions, VersionEntry{Alias: alias, Version: ov})
		}
	}

	oldLibs, newLibs := librariesByModule(old), librariesByModule(new)
	for module, nl := range newLibs {
		ol, existed := oldLibs[module]
		switch {
		case !existed:
			diff.AddedLibraries = append(diff.AddedLibraries, LibraryChange{Module: module, Version: nl.Version.String()})
		case !ol.Version.Equal(nl.Version):
			diff.ChangedLibraries = append(diff.ChangedLibraries, LibraryUpdate{
				Module:     module,
				OldVersion: ol.Version.String(),
				NewVersion: nl.Version.String(),
			})
		}
	}
	for module, ol := range oldLibs {
		if _, exists := newLibs[module]; !exists {
			diff.RemovedLibraries = append(diff.RemovedLibraries, LibraryChange{Module: module, Version: ol.Version.String()})
		}
	}

	byAlias := func(a, b VersionEntry) int { return cmp.Compare(a.Alias, b.Alias) }
	byUpdateAlias := func(a, b VersionUpdate) int { return cmp.Compare(a.Alias, b.Alias) }
	slices.SortFunc(diff.AddedVersions, byAlias)
	slices.SortFunc(diff.RemovedVersions, byAlias)
	slices.SortFunc(diff.Upgraded, byUpdateAlias)
	slices.SortFunc(diff.Downgraded, byUpdateAlias)
	slices.SortFunc(diff.Modified, byUpdateAlias)
	byModule := func(a, b LibraryChange) int { return cmp.Compare(a.Module, b.Module) }
	slices.SortFunc(diff.AddedLibraries, byModule)
	slices.SortFunc(diff.RemovedLibraries, byModule)
	slices.SortFunc(diff.ChangedLibraries, func(a, b LibraryUpdate) int { return cmp.Compare(a.Module, b.Module) })

	return diff
}

func versionsByAlias(m *Model) map[string]RichVersion {
	out := make(map[string]RichVersion)
	if m == nil {
		return out
	}
	for alias, v := range m.versionAliasToVersion {
		out[alias] = *v.Version
	}
	return out
}

func librariesByModule(m *Model) map[string]Library {
	if m == nil {
		return map[string]Library{}
	}
	return m.gaToLibrary
}
