package versioncatalog

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

// MarshalTOML renders the model as a version catalog document.
//
// Constraints use the string notation when it is lossless and a table
// otherwise. The output parses back into an equal model.
func (m *Model) MarshalTOML() ([]byte, error) {
	var buf bytes.Buffer
	if err := m.WriteTOML(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteTOML writes the model as a version catalog document to w.
func (m *Model) WriteTOML(w io.Writer) error {
	doc := make(map[string]any)

	if len(m.versionAliasToVersion) > 0 {
		versions := make(map[string]any, len(m.versionAliasToVersion))
		for alias, v := range m.versionAliasToVersion {
			versions[alias] = richVersionValue(*v.Version)
		}
		doc[versionsKey] = versions
	}

	if len(m.libraries) > 0 {
		libraries := make(map[string]any, len(m.libraries))
		for _, lib := range m.libraries {
			alias := lib.Alias
			if alias == "" {
				alias = strings.ReplaceAll(lib.Module(), ":", "-")
			}
			libraries[alias] = libraryValue(lib)
		}
		doc[librariesKey] = libraries
	}

	if err := toml.NewEncoder(w).Encode(doc); err != nil {
		return fmt.Errorf("failed to write version catalog: %w", err)
	}
	return nil
}

func libraryValue(lib Library) map[string]any {
	entry := map[string]any{
		"group": lib.Group,
		"name":  lib.Name,
	}
	switch {
	case lib.Version.Version != nil:
		entry["version"] = richVersionValue(*lib.Version.Version)
	case lib.Version.Reference != "":
		entry["version"] = map[string]any{"ref": lib.Version.Reference}
	}
	return entry
}

// richVersionValue returns the shorthand string, or the facets table.
func richVersionValue(v RichVersion) any {
	if s, ok := v.Shorthand(); ok {
		return s
	}
	t := make(map[string]any)
	if v.Require != "" {
		t["require"] = v.Require
	}
	if v.Strictly != "" {
		t["strictly"] = v.Strictly
	}
	if v.Prefer != "" {
		t["prefer"] = v.Prefer
	}
	if v.RejectedVersions != nil {
		t["reject"] = v.RejectedVersions
	}
	if v.RejectAll {
		t["rejectAll"] = true
	}
	return t
}
