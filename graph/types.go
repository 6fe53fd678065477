package graph

import (
	versioncatalog "github.com/albertocavalcante/go-versioncatalog"
)

// Graph links version aliases to the libraries referring to them.
type Graph struct {
	// Versions contains one node per alias, declared or referenced, keyed by alias.
	Versions map[string]*VersionNode

	// Libraries contains one node per library alias, keyed by alias.
	Libraries map[string]*LibraryNode
}

// VersionNode is a version alias.
type VersionNode struct {
	// Alias is the key under [versions].
	Alias string

	// Version is the declared constraint, nil when the alias is only referenced.
	Version *versioncatalog.RichVersion

	// Users are the aliases of the libraries referring to this version, sorted.
	Users []string

	// Position is where the alias was declared.
	Position versioncatalog.Position
}

// Declared returns true if the alias is declared under [versions].
func (n *VersionNode) Declared() bool {
	return n.Version != nil
}

// LibraryNode is a library entry.
type LibraryNode struct {
	// Alias is the key under [libraries].
	Alias string

	// Module is the "group:name" coordinate.
	Module string

	// Reference is the version alias the library uses, empty for inline versions.
	Reference string

	// Inline is the constraint declared on the library itself.
	Inline *versioncatalog.RichVersion

	// Position is where the library was declared.
	Position versioncatalog.Position
}

// Stats provides statistics about the graph.
type Stats struct {
	// Versions is the number of declared version aliases.
	Versions int `json:"versions" yaml:"versions"`

	// Libraries is the number of libraries.
	Libraries int `json:"libraries" yaml:"libraries"`

	// Referencing is the number of libraries using a version alias.
	Referencing int `json:"referencing" yaml:"referencing"`

	// Inline is the number of libraries declaring their own version.
	Inline int `json:"inline" yaml:"inline"`

	// Shared is the number of aliases used by more than one library.
	Shared int `json:"shared" yaml:"shared"`

	// Orphans is the number of declared aliases no library uses.
	Orphans int `json:"orphans" yaml:"orphans"`

	// Dangling is the number of referenced aliases that are not declared.
	Dangling int `json:"dangling" yaml:"dangling"`
}
