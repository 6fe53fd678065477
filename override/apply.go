package override

import (
	"fmt"
	"slices"

	versioncatalog "github.com/albertocavalcante/go-versioncatalog"
)

// CatalogBuilder declares versions in a catalog under construction.
type CatalogBuilder interface {
	// Version declares alias, replacing any previous declaration, and lets
	// configure set up its constraint.
	Version(alias string, configure func(VersionConstraint))
}

// Report summarizes what an override did.
type Report struct {
	// Applied lists override aliases handed to the builder, in application order.
	Applied []string `json:"applied" yaml:"applied"`

	// Added lists applied aliases that the base catalog did not declare.
	Added []string `json:"added,omitempty" yaml:"added,omitempty"`

	// Skipped lists aliases left out by IgnoreUnknownAlias.
	Skipped []string `json:"skipped,omitempty" yaml:"skipped,omitempty"`

	// Warnings holds non-fatal problems with the override catalog.
	Warnings []string `json:"warnings,omitempty" yaml:"warnings,omitempty"`
}

// HasWarnings returns true if the override produced warnings.
func (r *Report) HasWarnings() bool {
	return len(r.Warnings) > 0
}

// Apply replays the [versions] table of an override catalog onto b.
//
// Libraries in the override catalog are never applied; their presence is
// reported as a warning. Apply never fails.
func Apply(b CatalogBuilder, override *versioncatalog.Model, opts ...Option) *Report {
	cfg := newConfig(opts)
	return apply(b, override, cfg, nil)
}

// apply replays versions accepted by keep, or all versions if keep is nil.
func apply(b CatalogBuilder, override *versioncatalog.Model, cfg config, keep func(alias string) bool) *Report {
	report := &Report{}
	if override == nil {
		return report
	}
	logger := cfg.logger.With("source", cfg.source)

	for _, vm := range override.Versions() {
		if vm.Reference == "" || vm.Version == nil {
			continue
		}
		if keep != nil && !keep(vm.Reference) {
			if !slices.Contains(report.Skipped, vm.Reference) {
				report.Skipped = append(report.Skipped, vm.Reference)
			}
			logger.Debug("skipping unknown version alias", "alias", vm.Reference)
			continue
		}
		version := *vm.Version
		b.Version(vm.Reference, func(vc VersionConstraint) {
			configure(vc, version)
		})
		report.Applied = append(report.Applied, vm.Reference)
		logger.Debug("applied version override", "alias", vm.Reference, "version", version.String())
	}

	if libs := override.Libraries(); len(libs) > 0 {
		msg := fmt.Sprintf("The %s file should only contain entries overriding platform versions; "+
			"%d libraries were ignored. Use your own version catalog to declare new libraries", cfg.source, len(libs))
		report.Warnings = append(report.Warnings, msg)
		logger.Warn("override catalog declares libraries", "count", len(libs))
	}
	return report
}

// configure translates a rich version into constraint calls.
// RejectAll and the reject list are not exclusive in a catalog; RejectAll wins here.
func configure(vc VersionConstraint, v versioncatalog.RichVersion) {
	switch {
	case v.Strictly != "":
		vc.Strictly(v.Strictly)
	case v.Require != "":
		vc.Require(v.Require)
	}
	if v.Prefer != "" {
		vc.Prefer(v.Prefer)
	}
	if v.RejectAll {
		vc.RejectAll()
		return
	}
	for _, r := range v.RejectedVersions {
		vc.Reject(r)
	}
}
