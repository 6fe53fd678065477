package versioncatalog

import (
	"fmt"
	"maps"
	"slices"
)

// Position is a 1-based source location inside a catalog file.
// It is used for diagnostics only.
type Position struct {
	Line   int `json:"line" yaml:"line"`
	Column int `json:"column" yaml:"column"`
}

// String returns the position as "line:column".
func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// IsValid returns true if the position points into a file.
func (p Position) IsValid() bool {
	return p.Line > 0
}

// VersionModel binds an optional alias to a version constraint.
//
// It is one of:
//   - an anonymous inline version: Reference is empty and Version is set;
//   - a declaration under [versions]: Reference and Version are both set;
//   - a deferred reference from a library: Reference is set and Version is nil.
//     The constraint is found by looking Reference up in the versions table.
type VersionModel struct {
	// Reference is the alias under [versions], empty for inline versions.
	Reference string `json:"ref,omitempty" yaml:"ref,omitempty"`

	// Version is the constraint, nil when it is provided by Reference.
	Version *RichVersion `json:"version,omitempty" yaml:"version,omitempty"`

	// Position is where the entry was declared.
	Position Position `json:"position" yaml:"position"`
}

// IsReference returns true if the constraint must be resolved through the versions table.
func (m VersionModel) IsReference() bool {
	return m.Reference != "" && m.Version == nil
}

// Equal compares reference and constraint. Positions are ignored.
func (m VersionModel) Equal(other VersionModel) bool {
	if m.Reference != other.Reference {
		return false
	}
	if m.Version == nil || other.Version == nil {
		return m.Version == nil && other.Version == nil
	}
	return m.Version.Equal(*other.Version)
}

// String renders the model as "ref" or the inline constraint.
func (m VersionModel) String() string {
	switch {
	case m.Version == nil:
		return "ref:" + m.Reference
	case m.Reference == "":
		return m.Version.String()
	default:
		return m.Reference + "=" + m.Version.String()
	}
}

func (m VersionModel) key() string {
	if m.Version == nil {
		return fmt.Sprintf("%q|<nil>", m.Reference)
	}
	return fmt.Sprintf("%q|%s", m.Reference, m.Version.key())
}

// Library is a catalog library entry: a group/name coordinate bound to a version.
type Library struct {
	// Alias is the key under [libraries].
	Alias string `json:"alias" yaml:"alias"`

	// Group is the Maven group.
	Group string `json:"group" yaml:"group"`

	// Name is the Maven artifact name.
	Name string `json:"name" yaml:"name"`

	// Version is the version declaration of the library.
	Version VersionModel `json:"version" yaml:"version"`

	// Position is where the alias was declared.
	Position Position `json:"position" yaml:"position"`
}

// Module returns the "group:name" notation of the library.
func (l Library) Module() string {
	return l.Group + ":" + l.Name
}

// Equal compares group, name and version. The alias is not part of a library's
// identity, so two aliases for the same coordinate and version are equal.
func (l Library) Equal(other Library) bool {
	return l.Group == other.Group && l.Name == other.Name && l.Version.Equal(other.Version)
}

func (l Library) key() string {
	return fmt.Sprintf("%q|%q|%s", l.Group, l.Name, l.Version.key())
}

// Model is the in-memory form of a version catalog.
//
// A Model is built by repeated insertion, usually by a LenientParser, and read
// afterwards. It is not safe for concurrent mutation.
type Model struct {
	libraries   []Library
	libraryKeys map[string]struct{}
	versions    []VersionModel
	versionKeys map[string]struct{}

	gaToLibrary           map[string]Library
	aliasToLibrary        map[string]Library
	versionAliasToVersion map[string]VersionModel

	// versionAliasToModules maps a version alias found in [versions] to the
	// libraries from [libraries] referencing it.
	versionAliasToModules map[string][]Library
}

// NewModel creates an empty model.
func NewModel() *Model {
	return &Model{
		libraryKeys:           make(map[string]struct{}),
		versionKeys:           make(map[string]struct{}),
		gaToLibrary:           make(map[string]Library),
		aliasToLibrary:        make(map[string]Library),
		versionAliasToVersion: make(map[string]VersionModel),
		versionAliasToModules: make(map[string][]Library),
	}
}

// AddLibrary inserts a library. A library equal to one already present is not
// added twice, but the coordinate lookup always points at the latest insertion.
func (m *Model) AddLibrary(lib Library) {
	key := lib.key()
	if _, ok := m.libraryKeys[key]; !ok {
		m.libraryKeys[key] = struct{}{}
		m.libraries = append(m.libraries, lib)
	}
	m.gaToLibrary[lib.Module()] = lib
	if lib.Alias != "" {
		m.aliasToLibrary[lib.Alias] = lib
	}

	ref := lib.Version.Reference
	if ref == "" {
		return
	}
	refs := m.versionAliasToModules[ref]
	if !slices.ContainsFunc(refs, lib.Equal) {
		m.versionAliasToModules[ref] = append(refs, lib)
	}
}

// AddVersion inserts a version declaration. The model must carry both an alias
// and a constraint.
func (m *Model) AddVersion(v VersionModel) error {
	if v.Reference == "" || v.Version == nil {
		return fmt.Errorf("%w: version declaration needs both a reference and a version (reference=%q, version=%v)",
			ErrIllegalArgument, v.Reference, v.Version)
	}
	key := v.key()
	if _, ok := m.versionKeys[key]; !ok {
		m.versionKeys[key] = struct{}{}
		m.versions = append(m.versions, v)
	}
	m.versionAliasToVersion[v.Reference] = v
	return nil
}

// ReplaceVersion removes every declaration of v.Reference from the versions
// table, then adds v. Libraries referring to the alias are unchanged.
func (m *Model) ReplaceVersion(v VersionModel) error {
	if v.Reference == "" || v.Version == nil {
		return m.AddVersion(v)
	}
	m.versions = slices.DeleteFunc(m.versions, func(existing VersionModel) bool {
		if existing.Reference != v.Reference {
			return false
		}
		delete(m.versionKeys, existing.key())
		return true
	})
	return m.AddVersion(v)
}

// FindLibrary returns the library declared for group:name.
func (m *Model) FindLibrary(group, name string) (Library, bool) {
	lib, ok := m.gaToLibrary[group+":"+name]
	return lib, ok
}

// FindVersion returns the version declared under alias in [versions].
func (m *Model) FindVersion(alias string) (VersionModel, bool) {
	v, ok := m.versionAliasToVersion[alias]
	return v, ok
}

// FindLibrariesForVersionReference returns the libraries whose version refers
// to alias. The result is empty, never nil, when none does.
func (m *Model) FindLibrariesForVersionReference(alias string) []Library {
	libs := m.versionAliasToModules[alias]
	if libs == nil {
		return []Library{}
	}
	return slices.Clone(libs)
}

// LibraryByAlias returns the library declared under alias in [libraries].
func (m *Model) LibraryByAlias(alias string) (Library, bool) {
	lib, ok := m.aliasToLibrary[alias]
	return lib, ok
}

// Libraries returns the libraries table in insertion order.
func (m *Model) Libraries() []Library {
	return slices.Clone(m.libraries)
}

// LibraryAliases returns one library per alias declared under [libraries],
// sorted by alias. Unlike Libraries, aliases binding equal libraries are all
// reported.
func (m *Model) LibraryAliases() []Library {
	libs := make([]Library, 0, len(m.aliasToLibrary))
	for _, alias := range slices.Sorted(maps.Keys(m.aliasToLibrary)) {
		libs = append(libs, m.aliasToLibrary[alias])
	}
	return libs
}

// Versions returns the versions table in insertion order.
func (m *Model) Versions() []VersionModel {
	return slices.Clone(m.versions)
}

// VersionReferences returns every version alias referenced by a library, sorted.
func (m *Model) VersionReferences() []string {
	refs := make([]string, 0, len(m.versionAliasToModules))
	for ref := range m.versionAliasToModules {
		refs = append(refs, ref)
	}
	slices.Sort(refs)
	return refs
}

// ResolveVersion returns the constraint of a library, looking deferred
// references up in the versions table. It returns false when a reference
// cannot be resolved.
func (m *Model) ResolveVersion(lib Library) (RichVersion, bool) {
	if lib.Version.Version != nil {
		return *lib.Version.Version, true
	}
	v, ok := m.FindVersion(lib.Version.Reference)
	if !ok || v.Version == nil {
		return RichVersion{}, false
	}
	return *v.Version, true
}

// Clone returns a deep copy of the model.
func (m *Model) Clone() *Model {
	c := NewModel()
	for _, lib := range m.libraries {
		c.AddLibrary(cloneLibrary(lib))
	}
	for _, v := range m.versions {
		// Versions in the table always satisfy AddVersion's preconditions.
		_ = c.AddVersion(cloneVersionModel(v))
	}
	// Restore last-write-wins lookups, which may differ from table order.
	for module, lib := range m.gaToLibrary {
		c.gaToLibrary[module] = cloneLibrary(lib)
	}
	for alias, lib := range m.aliasToLibrary {
		c.aliasToLibrary[alias] = cloneLibrary(lib)
	}
	for alias, v := range m.versionAliasToVersion {
		c.versionAliasToVersion[alias] = cloneVersionModel(v)
	}
	return c
}

func cloneLibrary(lib Library) Library {
	lib.Version = cloneVersionModel(lib.Version)
	return lib
}

func cloneVersionModel(v VersionModel) VersionModel {
	if v.Version != nil {
		rv := *v.Version
		rv.RejectedVersions = slices.Clone(rv.RejectedVersions)
		v.Version = &rv
	}
	return v
}
