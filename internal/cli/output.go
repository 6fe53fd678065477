package cli

import (
	"encoding/json"
	"fmt"
	"io"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	versioncatalog "github.com/albertocavalcante/go-versioncatalog"
)

// render writes value in the configured format. text renders the text format.
// value must be a struct or a map so that every format can encode it.
func (a *app) render(value any, text func(w io.Writer) error) error {
	switch a.cfg.Format {
	case "json":
		enc := json.NewEncoder(a.out)
		enc.SetIndent("", "  ")
		return enc.Encode(value)
	case "yaml":
		enc := yaml.NewEncoder(a.out)
		enc.SetIndent(2)
		if err := enc.Encode(value); err != nil {
			return err
		}
		return enc.Close()
	case "toml":
		return toml.NewEncoder(a.out).Encode(value)
	default:
		return text(a.out)
	}
}

// parseFile parses a catalog with the command logger attached.
func (a *app) parseFile(path string) (*versioncatalog.Model, error) {
	return versioncatalog.ParseFile(path, versioncatalog.WithLogger(a.logger))
}

// libraryVersion describes how a library declares its version.
func libraryVersion(lib versioncatalog.Library) string {
	if lib.Version.IsReference() {
		return "ref:" + lib.Version.Reference
	}
	if lib.Version.Version != nil {
		return lib.Version.Version.String()
	}
	return ""
}

func writeCatalogText(w io.Writer, m *versioncatalog.Model) error {
	if _, err := fmt.Fprintln(w, "[versions]"); err != nil {
		return err
	}
	for _, v := range m.Versions() {
		if _, err := fmt.Fprintf(w, "  %s = %s (%s)\n", v.Reference, v.Version, v.Position); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintln(w, "[libraries]"); err != nil {
		return err
	}
	for _, lib := range m.Libraries() {
		if _, err := fmt.Fprintf(w, "  %s = %s %s (%s)\n", lib.Alias, lib.Module(), libraryVersion(lib), lib.Position); err != nil {
			return err
		}
	}
	return nil
}
