package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	versioncatalog "github.com/albertocavalcante/go-versioncatalog"
)

func (a *app) newDiffCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "diff OLD NEW",
		Short: "Compare two version catalogs",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			oldModel, err := a.parseFile(args[0])
			if err != nil {
				return err
			}
			newModel, err := a.parseFile(args[1])
			if err != nil {
				return err
			}
			d := versioncatalog.DiffCatalogs(oldModel, newModel)
			return a.render(d, func(w io.Writer) error {
				return writeDiffText(w, d)
			})
		},
	}
}

func writeDiffText(w io.Writer, d *versioncatalog.CatalogDiff) error {
	var lines []string
	for _, v := range d.AddedVersions {
		lines = append(lines, fmt.Sprintf("+ %s = %s", v.Alias, v.Version))
	}
	for _, v := range d.RemovedVersions {
		lines = append(lines, fmt.Sprintf("- %s = %s", v.Alias, v.Version))
	}
	for _, u := range d.Upgraded {
		lines = append(lines, fmt.Sprintf("^ %s %s -> %s (%s)", u.Alias, u.Old, u.New, u.Type))
	}
	for _, u := range d.Downgraded {
		lines = append(lines, fmt.Sprintf("v %s %s -> %s (%s)", u.Alias, u.Old, u.New, u.Type))
	}
	for _, u := range d.Modified {
		lines = append(lines, fmt.Sprintf("~ %s %s -> %s", u.Alias, u.Old, u.New))
	}
	for _, l := range d.AddedLibraries {
		lines = append(lines, fmt.Sprintf("+ %s %s", l.Module, l.Version))
	}
	for _, l := range d.RemovedLibraries {
		lines = append(lines, fmt.Sprintf("- %s %s", l.Module, l.Version))
	}
	for _, l := range d.ChangedLibraries {
		lines = append(lines, fmt.Sprintf("~ %s %s -> %s", l.Module, l.OldVersion, l.NewVersion))
	}
	lines = append(lines, d.Summary())

	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
