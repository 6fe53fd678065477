package override

import (
	"fmt"
	"slices"

	versioncatalog "github.com/albertocavalcante/go-versioncatalog"
)

// Merge applies the versions of override to a copy of base and returns the
// merged model. Neither input is modified.
//
// Unknown aliases, declared by override but not by base, are handled
// according to the configured Strategy. With ErrorOnUnknownAlias nothing is
// applied when an unknown alias is found.
func Merge(base, override *versioncatalog.Model, opts ...Option) (*versioncatalog.Model, *Report, error) {
	cfg := newConfig(opts)
	b := NewModelBuilder(base)

	var keep func(string) bool
	switch cfg.strategy {
	case ErrorOnUnknownAlias:
		if override != nil {
			for _, v := range override.Versions() {
				if !b.Declares(v.Reference) {
					return nil, nil, fmt.Errorf("%w: %q is not declared by the base catalog", ErrUnknownAlias, v.Reference)
				}
			}
		}
	case IgnoreUnknownAlias:
		keep = b.Declares
	}

	report := apply(b, override, cfg, keep)
	if err := b.Err(); err != nil {
		return nil, report, fmt.Errorf("failed to merge override: %w", err)
	}
	for _, alias := range report.Applied {
		if !b.Declares(alias) && !slices.Contains(report.Added, alias) {
			report.Added = append(report.Added, alias)
		}
	}
	return b.Model(), report, nil
}
