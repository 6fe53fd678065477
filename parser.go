package versioncatalog

import (
	"cmp"
	"fmt"
	"io"
	"maps"
	"slices"

	"github.com/albertocavalcante/go-versioncatalog/coords"
	toml "github.com/pelletier/go-toml/v2"
)

const (
	librariesKey = "libraries"
	versionsKey  = "versions"
)

// LenientParser reads version catalogs, skipping entries it does not understand.
//
// Only the [libraries] and [versions] tables are read. A library or version
// whose shape is not recognized is dropped without error, so catalogs written
// for newer tools or by other generators still load. Syntax errors and a
// misplaced strict modifier remain fatal.
//
// A LenientParser accumulates into a single Model and is meant for one
// parse-then-read operation.
type LenientParser struct {
	cfg   parserConfig
	model *Model
}

// NewLenientParser creates a parser with an empty model.
func NewLenientParser(opts ...Option) *LenientParser {
	return &LenientParser{
		cfg:   newParserConfig(opts),
		model: NewModel(),
	}
}

// Model returns the model populated by Parse.
func (p *LenientParser) Model() *Model {
	return p.model
}

// Parse reads a TOML catalog from r into the parser's model.
func (p *LenientParser) Parse(r io.Reader) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("failed to read version catalog: %w", err)
	}
	return p.ParseBytes(data)
}

// ParseBytes parses TOML catalog content into the parser's model.
func (p *LenientParser) ParseBytes(data []byte) error {
	var doc map[string]any
	if err := toml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("%w: %w", ErrMalformedCatalog, err)
	}
	positions := indexPositions(data)

	if err := p.parseLibraries(asTable(doc[librariesKey]), positions); err != nil {
		return err
	}
	return p.parseVersions(asTable(doc[versionsKey]), positions)
}

func (p *LenientParser) parseLibraries(table map[string]any, positions *positionIndex) error {
	for _, alias := range sortedAliases(table) {
		pos := positions.lookup(librariesKey, alias)
		lib, ok, err := parseLibrary(alias, table[alias], pos)
		if err != nil {
			return fmt.Errorf("library %q at %s: %w", alias, pos, err)
		}
		if !ok {
			p.cfg.logger.Debug("skipping library without usable version", "alias", alias, "position", pos.String())
			continue
		}
		p.model.AddLibrary(lib)
	}
	return nil
}

func (p *LenientParser) parseVersions(table map[string]any, positions *positionIndex) error {
	for _, alias := range sortedAliases(table) {
		pos := positions.lookup(versionsKey, alias)
		rv, ok, err := parseVersion(table[alias])
		if err != nil {
			return fmt.Errorf("version %q at %s: %w", alias, pos, err)
		}
		if !ok {
			p.cfg.logger.Debug("skipping version with unsupported shape", "alias", alias, "position", pos.String())
			continue
		}
		if err := p.model.AddVersion(VersionModel{Reference: alias, Version: &rv, Position: pos}); err != nil {
			return err
		}
	}
	return nil
}

// parseLibrary converts one [libraries] entry. It returns false when no
// version information can be derived from the entry.
func parseLibrary(alias string, raw any, pos Position) (Library, bool, error) {
	if gav, ok := raw.(string); ok {
		if parts := coords.Split(gav); len(parts) == 3 {
			rv, err := ParseRichVersion(parts[2])
			if err != nil {
				return Library{}, false, err
			}
			return Library{
				Alias:    alias,
				Group:    parts[0],
				Name:     parts[1],
				Version:  VersionModel{Version: &rv, Position: pos},
				Position: pos,
			}, true, nil
		}
	}

	entry := asTable(raw)
	group := stringField(entry, "group")
	name := stringField(entry, "name")
	if module := stringField(entry, "module"); module != "" {
		if parts := coords.Split(module); len(parts) == 2 {
			group, name = parts[0], parts[1]
		}
	}

	var version VersionModel
	switch v := entry["version"].(type) {
	case string:
		rv, err := ParseRichVersion(v)
		if err != nil {
			return Library{}, false, err
		}
		version = VersionModel{Version: &rv, Position: pos}
	case map[string]any:
		version = VersionModel{Reference: stringField(v, "ref"), Position: pos}
		if version.Reference == "" {
			rv := richVersionFromTable(v)
			version.Version = &rv
		}
	default:
		return Library{}, false, nil
	}

	return Library{Alias: alias, Group: group, Name: name, Version: version, Position: pos}, true, nil
}

// parseVersion converts one [versions] entry. It returns false for shapes
// other than a string or a table.
func parseVersion(raw any) (RichVersion, bool, error) {
	switch v := raw.(type) {
	case string:
		rv, err := ParseRichVersion(v)
		if err != nil {
			return RichVersion{}, false, err
		}
		return rv, true, nil
	case map[string]any:
		return richVersionFromTable(v), true, nil
	default:
		return RichVersion{}, false, nil
	}
}

// richVersionFromTable reads the rich version facets of a version table.
// Facets with an unexpected type are treated as absent.
func richVersionFromTable(t map[string]any) RichVersion {
	rv := RichVersion{
		Require:  stringField(t, "require"),
		Strictly: stringField(t, "strictly"),
		Prefer:   stringField(t, "prefer"),
	}
	if rejected, ok := t["reject"].([]any); ok {
		rv.RejectedVersions = make([]string, 0, len(rejected))
		for _, r := range rejected {
			rv.RejectedVersions = append(rv.RejectedVersions, fmt.Sprint(r))
		}
	}
	if all, ok := t["rejectAll"].(bool); ok {
		rv.RejectAll = all
	}
	return rv
}

// sortedAliases orders keys by length, then lexically, for reproducible output.
func sortedAliases(table map[string]any) []string {
	return slices.SortedFunc(maps.Keys(table), func(a, b string) int {
		return cmp.Or(cmp.Compare(len(a), len(b)), cmp.Compare(a, b))
	})
}

func asTable(v any) map[string]any {
	t, _ := v.(map[string]any)
	return t
}

func stringField(t map[string]any, key string) string {
	s, _ := t[key].(string)
	return s
}
