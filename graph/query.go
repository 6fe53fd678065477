package graph

import (
	"maps"
	"slices"
)

// Node returns the version node for alias, or nil.
func (g *Graph) Node(alias string) *VersionNode {
	return g.Versions[alias]
}

// Library returns the library node for alias, or nil.
func (g *Graph) Library(alias string) *LibraryNode {
	return g.Libraries[alias]
}

// Aliases returns every version alias in the graph, sorted.
func (g *Graph) Aliases() []string {
	return slices.Sorted(maps.Keys(g.Versions))
}

// UsersOf returns the library nodes referring to alias, sorted by library alias.
func (g *Graph) UsersOf(alias string) []*LibraryNode {
	vn := g.Versions[alias]
	if vn == nil {
		return nil
	}
	users := make([]*LibraryNode, 0, len(vn.Users))
	for _, u := range vn.Users {
		if lib := g.Libraries[u]; lib != nil {
			users = append(users, lib)
		}
	}
	return users
}

// Shared returns declared aliases used by more than one library, sorted.
func (g *Graph) Shared() []string {
	return g.filter(func(n *VersionNode) bool {
		return n.Declared() && len(n.Users) > 1
	})
}

// Orphans returns declared aliases no library refers to, sorted.
func (g *Graph) Orphans() []string {
	return g.filter(func(n *VersionNode) bool {
		return n.Declared() && len(n.Users) == 0
	})
}

// Dangling returns aliases referred to by libraries but never declared, sorted.
func (g *Graph) Dangling() []string {
	return g.filter(func(n *VersionNode) bool {
		return !n.Declared()
	})
}

func (g *Graph) filter(keep func(*VersionNode) bool) []string {
	var out []string
	for _, alias := range g.Aliases() {
		if keep(g.Versions[alias]) {
			out = append(out, alias)
		}
	}
	return out
}

// Stats returns statistics about the graph.
func (g *Graph) Stats() Stats {
	s := Stats{
		Libraries: len(g.Libraries),
		Shared:    len(g.Shared()),
		Orphans:   len(g.Orphans()),
		Dangling:  len(g.Dangling()),
	}
	for _, n := range g.Versions {
		if n.Declared() {
			s.Versions++
		}
	}
	for _, lib := range g.Libraries {
		if lib.Reference != "" {
			s.Referencing++
		} else {
			s.Inline++
		}
	}
	return s
}
