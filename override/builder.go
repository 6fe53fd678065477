package override

import (
	versioncatalog "github.com/albertocavalcante/go-versioncatalog"
)

// ModelBuilder is a CatalogBuilder over a copy of a catalog model.
type ModelBuilder struct {
	model *versioncatalog.Model
	base  map[string]struct{}
	err   error
}

var _ CatalogBuilder = (*ModelBuilder)(nil)

// NewModelBuilder creates a builder over a deep copy of base. A nil base
// starts from an empty model.
func NewModelBuilder(base *versioncatalog.Model) *ModelBuilder {
	b := &ModelBuilder{base: make(map[string]struct{})}
	if base == nil {
		b.model = versioncatalog.NewModel()
		return b
	}
	b.model = base.Clone()
	for _, v := range base.Versions() {
		b.base[v.Reference] = struct{}{}
	}
	return b
}

// Version replaces the declaration of alias with a fresh constraint set
// up by setup. The declaration keeps the position of the one it replaces.
func (b *ModelBuilder) Version(alias string, setup func(VersionConstraint)) {
	c := &MutableConstraint{}
	if setup != nil {
		setup(c)
	}
	rv := c.RichVersion()
	vm := versioncatalog.VersionModel{Reference: alias, Version: &rv}
	if existing, ok := b.model.FindVersion(alias); ok {
		vm.Position = existing.Position
	}
	if err := b.model.ReplaceVersion(vm); err != nil && b.err == nil {
		b.err = err
	}
}

// Declares returns true if the base model declared alias.
func (b *ModelBuilder) Declares(alias string) bool {
	_, ok := b.base[alias]
	return ok
}

// Model returns the model being built.
func (b *ModelBuilder) Model() *versioncatalog.Model {
	return b.model
}

// Err returns the first error met while declaring versions.
func (b *ModelBuilder) Err() error {
	return b.err
}
