package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	versioncatalog "github.com/albertocavalcante/go-versioncatalog"
)

type catalogView struct {
	Versions  []versioncatalog.VersionModel `json:"versions" yaml:"versions"`
	Libraries []versioncatalog.Library      `json:"libraries" yaml:"libraries"`
}

func (a *app) newParseCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "parse FILE",
		Short: "Parse a version catalog and print its versions and libraries",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := a.parseFile(args[0])
			if err != nil {
				return err
			}
			if a.cfg.Format == "toml" {
				return m.WriteTOML(a.out)
			}
			return a.render(catalogView{Versions: m.Versions(), Libraries: m.Libraries()}, func(w io.Writer) error {
				return writeCatalogText(w, m)
			})
		},
	}
}

type refsView struct {
	Alias     string   `json:"alias" yaml:"alias" toml:"alias"`
	Version   string   `json:"version,omitempty" yaml:"version,omitempty" toml:"version,omitempty"`
	Libraries []string `json:"libraries" yaml:"libraries" toml:"libraries"`
}

func (a *app) newRefsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "refs FILE ALIAS",
		Short: "List the libraries referring to a version alias",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := a.parseFile(args[0])
			if err != nil {
				return err
			}
			view := refsView{Alias: args[1], Libraries: []string{}}
			if v, ok := m.FindVersion(args[1]); ok {
				view.Version = v.Version.String()
			}
			for _, lib := range m.FindLibrariesForVersionReference(args[1]) {
				view.Libraries = append(view.Libraries, lib.Module())
			}

			return a.render(view, func(w io.Writer) error {
				if len(view.Libraries) == 0 {
					_, err := fmt.Fprintf(w, "no library refers to %q\n", view.Alias)
					return err
				}
				for _, module := range view.Libraries {
					if _, err := fmt.Fprintln(w, module); err != nil {
						return err
					}
				}
				return nil
			})
		},
	}
}
