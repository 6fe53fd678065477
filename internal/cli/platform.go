package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/albertocavalcante/go-versioncatalog/settings"
)

type platformView struct {
	Root         string                `json:"root" yaml:"root" toml:"root"`
	Catalog      string                `json:"catalog" yaml:"catalog" toml:"catalog"`
	Version      string                `json:"version" yaml:"version" toml:"version"`
	Coordinates  string                `json:"coordinates" yaml:"coordinates" toml:"coordinates"`
	Repositories []settings.Repository `json:"repositories" yaml:"repositories" toml:"repositories"`
}

func (a *app) newPlatformCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "platform",
		Short: "Show the platform catalog of a Gradle project",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := settings.FindProjectRoot(a.cfg.ProjectDir)
			if err != nil {
				a.logger.Debug("using project directory as root", "dir", a.cfg.ProjectDir, "error", err)
				root = a.cfg.ProjectDir
			}
			version, err := settings.PlatformVersion(root)
			if err != nil {
				return err
			}
			view := platformView{
				Root:         root,
				Catalog:      settings.PlatformCatalog,
				Version:      version,
				Coordinates:  settings.PlatformCoordinates(version),
				Repositories: settings.Repositories(version),
			}
			return a.render(view, func(w io.Writer) error {
				fmt.Fprintf(w, "%s = %s\n", view.Catalog, view.Coordinates)
				for _, r := range view.Repositories {
					fmt.Fprintf(w, "  %s: %s\n", r.Name, r.URL)
				}
				return nil
			})
		},
	}
}
