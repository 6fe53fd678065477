package graph

import (
	"bytes"
	"encoding/json"
	"fmt"
	"maps"
	"slices"
	"strings"
)

const separatorWidth = 60 // Width of separator lines in text output

// JSONGraph is the serializable form of a graph.
type JSONGraph struct {
	Versions  []JSONVersion `json:"versions" yaml:"versions"`
	Libraries []JSONLibrary `json:"libraries" yaml:"libraries"`
	Stats     Stats         `json:"stats" yaml:"stats"`
}

// JSONVersion is a version alias in serialized output.
type JSONVersion struct {
	Alias    string   `json:"alias" yaml:"alias"`
	Version  string   `json:"version,omitempty" yaml:"version,omitempty"`
	Declared bool     `json:"declared" yaml:"declared"`
	Users    []string `json:"users" yaml:"users"`
}

// JSONLibrary is a library in serialized output.
type JSONLibrary struct {
	Alias   string `json:"alias" yaml:"alias"`
	Module  string `json:"module" yaml:"module"`
	Ref     string `json:"ref,omitempty" yaml:"ref,omitempty"`
	Version string `json:"version,omitempty" yaml:"version,omitempty"`
}

// ToJSON outputs the graph as indented JSON, sorted by alias.
func (g *Graph) ToJSON() ([]byte, error) {
	return json.MarshalIndent(g.Document(), "", "  ")
}

// Document returns the serializable form of the graph, sorted by alias.
func (g *Graph) Document() JSONGraph {
	out := JSONGraph{
		Versions:  make([]JSONVersion, 0, len(g.Versions)),
		Libraries: make([]JSONLibrary, 0, len(g.Libraries)),
		Stats:     g.Stats(),
	}
	for _, alias := range g.Aliases() {
		n := g.Versions[alias]
		jv := JSONVersion{Alias: alias, Declared: n.Declared(), Users: n.Users}
		if n.Declared() {
			jv.Version = n.Version.String()
		}
		out.Versions = append(out.Versions, jv)
	}
	for _, alias := range slices.Sorted(maps.Keys(g.Libraries)) {
		lib := g.Libraries[alias]
		jl := JSONLibrary{Alias: alias, Module: lib.Module, Ref: lib.Reference}
		if lib.Inline != nil {
			jl.Version = lib.Inline.String()
		}
		out.Libraries = append(out.Libraries, jl)
	}
	return out
}

// ToDOT outputs the graph in Graphviz DOT format. Version aliases are
// ellipses, libraries are boxes, and undeclared aliases are dashed.
func (g *Graph) ToDOT() string {
	var buf bytes.Buffer

	buf.WriteString("digraph catalog {\n")
	buf.WriteString("  rankdir=LR;\n")
	buf.WriteString("  node [shape=box];\n\n")

	for _, alias := range g.Aliases() {
		n := g.Versions[alias]
		label := alias
		attrs := "shape=ellipse"
		if n.Declared() {
			label += "\n" + n.Version.String()
		} else {
			attrs += ", style=dashed"
		}
		fmt.Fprintf(&buf, "  %q [label=%q, %s];\n", "version:"+alias, label, attrs)
	}
	for _, alias := range slices.Sorted(maps.Keys(g.Libraries)) {
		lib := g.Libraries[alias]
		fmt.Fprintf(&buf, "  %q [label=%q];\n", "library:"+alias, lib.Module)
	}

	buf.WriteString("\n")

	for _, alias := range g.Aliases() {
		for _, user := range g.Versions[alias].Users {
			fmt.Fprintf(&buf, "  %q -> %q;\n", "version:"+alias, "library:"+user)
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

// ToText outputs a human-readable text representation of the graph.
func (g *Graph) ToText() string {
	var buf bytes.Buffer

	buf.WriteString("Version Catalog Graph\n")
	buf.WriteString(strings.Repeat("=", separatorWidth) + "\n\n")

	stats := g.Stats()
	fmt.Fprintf(&buf, "Versions: %d\n", stats.Versions)
	fmt.Fprintf(&buf, "Libraries: %d (%d by reference, %d inline)\n", stats.Libraries, stats.Referencing, stats.Inline)
	fmt.Fprintf(&buf, "Shared versions: %d\n", stats.Shared)
	if stats.Orphans > 0 {
		fmt.Fprintf(&buf, "Unused versions: %d\n", stats.Orphans)
	}
	if stats.Dangling > 0 {
		fmt.Fprintf(&buf, "Undeclared versions: %d\n", stats.Dangling)
	}
	buf.WriteString("\n")

	buf.WriteString("Version Usage:\n")
	for _, alias := range g.Aliases() {
		n := g.Versions[alias]
		buf.WriteString(alias)
		switch {
		case !n.Declared():
			buf.WriteString(" (undeclared)")
		default:
			buf.WriteString(" = " + n.Version.String())
		}
		if len(n.Users) == 0 {
			buf.WriteString(" (unused)")
		}
		buf.WriteString("\n")
		for i, user := range n.Users {
			connector := "├── "
			if i == len(n.Users)-1 {
				connector = "└── "
			}
			module := user
			if lib := g.Libraries[user]; lib != nil {
				module = lib.Module
			}
			fmt.Fprintf(&buf, "%s%s (%s)\n", connector, user, module)
		}
	}

	var inline []string
	for alias, lib := range g.Libraries {
		if lib.Reference == "" {
			inline = append(inline, alias)
		}
	}
	if len(inline) > 0 {
		slices.Sort(inline)
		buf.WriteString("\nInline Versions:\n")
		for _, alias := range inline {
			lib := g.Libraries[alias]
			version := "none"
			if lib.Inline != nil {
				version = lib.Inline.String()
			}
			fmt.Fprintf(&buf, "  %s (%s) = %s\n", alias, lib.Module, version)
		}
	}

	return buf.String()
}
