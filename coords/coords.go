// Package coords provides Maven-style coordinate notation as used in version
// catalogs.
//
// Two notations appear in catalog files:
//   - module notation "group:name", used by the `module` field of a library;
//   - GAV notation "group:name:version", used by the string shorthand of a library.
//
// Splitting follows the JVM's String.split rules so that catalogs behave the
// same here as in the build tool: trailing empty segments are dropped, inner
// empty segments are kept.
package coords

import (
	"fmt"
	"strings"
)

// Separator separates coordinate parts.
const Separator = ":"

// Split splits a coordinate string on ':' and drops trailing empty segments.
//
//	Split("g:n:1.0")  = [g n 1.0]
//	Split("g:n:1.0:") = [g n 1.0]
//	Split("g::1.0")   = [g "" 1.0]
func Split(coordinates string) []string {
	parts := strings.Split(coordinates, Separator)
	for len(parts) > 0 && parts[len(parts)-1] == "" {
		parts = parts[:len(parts)-1]
	}
	return parts
}

// Module is a group:name coordinate.
type Module struct {
	Group string
	Name  string
}

// ParseModule parses module notation "group:name".
func ParseModule(s string) (Module, error) {
	parts := Split(s)
	if len(parts) != 2 {
		return Module{}, fmt.Errorf("invalid module notation %q: expected group:name", s)
	}
	return Module{Group: parts[0], Name: parts[1]}, nil
}

// MustModule parses a Module or panics. Use only for constants/tests.
func MustModule(s string) Module {
	m, err := ParseModule(s)
	if err != nil {
		panic(err)
	}
	return m
}

// String returns "group:name".
func (m Module) String() string {
	return m.Group + Separator + m.Name
}

// GAV is a group:name:version coordinate. Version is kept verbatim; it may use
// rich version shorthand such as "1.0!!1.5".
type GAV struct {
	Module
	Version string
}

// ParseGAV parses GAV notation "group:name:version".
func ParseGAV(s string) (GAV, error) {
	parts := Split(s)
	if len(parts) != 3 {
		return GAV{}, fmt.Errorf("invalid coordinates %q: expected group:name:version", s)
	}
	return GAV{Module: Module{Group: parts[0], Name: parts[1]}, Version: parts[2]}, nil
}

// String returns "group:name:version".
func (g GAV) String() string {
	return g.Module.String() + Separator + g.Version
}
