package graph

import (
	"slices"

	versioncatalog "github.com/albertocavalcante/go-versioncatalog"
)

// Build constructs the usage graph of a catalog model. A nil model yields an empty graph.
func Build(m *versioncatalog.Model) *Graph {
	g := &Graph{
		Versions:  make(map[string]*VersionNode),
		Libraries: make(map[string]*LibraryNode),
	}
	if m == nil {
		return g
	}

	// First pass: declared versions
	for _, v := range m.Versions() {
		declared, ok := m.FindVersion(v.Reference)
		if !ok {
			continue
		}
		g.Versions[v.Reference] = &VersionNode{
			Alias:    v.Reference,
			Version:  declared.Version,
			Users:    []string{},
			Position: declared.Position,
		}
	}

	// Second pass: libraries and reverse edges. Equal libraries under distinct
	// aliases are deduplicated by Libraries, so aliased entries come from
	// LibraryAliases.
	libs := m.LibraryAliases()
	for _, lib := range m.Libraries() {
		if lib.Alias == "" {
			libs = append(libs, lib)
		}
	}
	for _, lib := range libs {
		alias := lib.Alias
		if alias == "" {
			alias = lib.Module()
		}
		node := &LibraryNode{
			Alias:     alias,
			Module:    lib.Module(),
			Reference: lib.Version.Reference,
			Inline:    lib.Version.Version,
			Position:  lib.Position,
		}
		g.Libraries[alias] = node

		if node.Reference == "" {
			continue
		}
		vn, ok := g.Versions[node.Reference]
		if !ok {
			vn = &VersionNode{Alias: node.Reference, Users: []string{}}
			g.Versions[node.Reference] = vn
		}
		if !slices.Contains(vn.Users, alias) {
			vn.Users = append(vn.Users, alias)
		}
	}

	for _, vn := range g.Versions {
		slices.Sort(vn.Users)
	}
	return g
}
