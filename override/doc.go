// Package override merges version override catalogs into a base catalog.
//
// An override catalog is a regular version catalog whose [versions] table
// replaces constraints declared by another catalog, typically a platform
// catalog published by a framework. Libraries declared in an override catalog
// are not merged: a warning is reported instead.
//
// # Applying to a Builder
//
// Apply drives any CatalogBuilder, so the same override logic can feed a
// build tool's catalog API or an in-memory model:
//
//	b := override.NewModelBuilder(platform)
//	report := override.Apply(b, overrides)
//	merged := b.Model()
//
// For each declared version, Apply calls Strictly when a strict version is set
// and Require otherwise, then Prefer, then either RejectAll or Reject for each
// rejected version. The builder decides how those calls combine; MutableConstraint
// follows Gradle's rules, where Require and Strictly reset the reject list and
// RejectAll clears every other facet.
//
// # Merging Models
//
// Merge combines loading, applying and unknown-alias handling:
//
//	merged, report, err := override.Merge(platform, overrides,
//	    override.WithStrategy(override.ErrorOnUnknownAlias))
//	if errors.Is(err, override.ErrUnknownAlias) {
//	    // the override names a version the platform does not declare
//	}
package override
