package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"maps"
	"slices"

	"github.com/spf13/cobra"

	versioncatalog "github.com/albertocavalcante/go-versioncatalog"
	"github.com/albertocavalcante/go-versioncatalog/override"
	"github.com/albertocavalcante/go-versioncatalog/settings"
)

type overrideView struct {
	Catalog  string                        `json:"catalog" yaml:"catalog" toml:"catalog"`
	Path     string                        `json:"path" yaml:"path" toml:"path"`
	Versions []versioncatalog.VersionModel `json:"versions" yaml:"versions" toml:"versions"`
	Report   *override.Report              `json:"report,omitempty" yaml:"report,omitempty" toml:"report,omitempty"`
}

type overridesView struct {
	Overrides []overrideView `json:"overrides" yaml:"overrides" toml:"overrides"`
}

func (a *app) newOverrideCommand() *cobra.Command {
	var (
		base     string
		catalogs []string
		watch    bool
	)
	cmd := &cobra.Command{
		Use:   "override",
		Short: "Show override catalogs, or merge one into a base catalog",
		Long: "Without --base, lists the versions of every gradle/<catalog>-override.versions.toml file " +
			"of the project. With --base, merges the override of a single catalog into the base catalog " +
			"and prints the result.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			strategy, ok := override.ParseStrategy(a.cfg.Strategy)
			if !ok {
				return fmt.Errorf("invalid strategy %q", a.cfg.Strategy)
			}
			if len(catalogs) == 0 {
				catalogs = a.cfg.Catalogs
			}

			run := func(ctx context.Context) error {
				if base != "" {
					return a.mergeOverride(base, catalogs, strategy)
				}
				return a.listOverrides(ctx, catalogs)
			}
			if err := run(cmd.Context()); err != nil {
				return err
			}
			if !watch {
				return nil
			}
			return a.watchOverrides(cmd.Context(), run)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&base, "base", "", "base catalog to merge the override into")
	flags.StringSliceVar(&catalogs, "catalog", nil, "catalog name (repeatable, default: every override file)")
	flags.BoolVar(&watch, "watch", false, "rerun when an override file changes")
	flags.String("strategy", "prefer-override", "unknown alias handling: prefer-override, ignore-unknown or error-on-unknown")
	_ = a.v.BindPFlag("strategy", flags.Lookup("strategy"))
	return cmd
}

func (a *app) listOverrides(ctx context.Context, catalogs []string) error {
	dir := a.cfg.ProjectDir
	if len(catalogs) == 0 {
		discovered, err := settings.DiscoverCatalogs(dir)
		if err != nil {
			return err
		}
		catalogs = discovered
	}
	models, err := settings.LoadOverrides(ctx, dir, catalogs, versioncatalog.WithLogger(a.logger))
	if err != nil {
		return err
	}

	view := overridesView{Overrides: []overrideView{}}
	for _, catalog := range slices.Sorted(maps.Keys(models)) {
		path := settings.OverridePath(dir, catalog)
		report := override.Apply(override.NewModelBuilder(versioncatalog.NewModel()), models[catalog],
			override.WithLogger(a.logger), override.WithSource(path))
		view.Overrides = append(view.Overrides, overrideView{
			Catalog:  catalog,
			Path:     path,
			Versions: models[catalog].Versions(),
			Report:   report,
		})
	}

	return a.render(view, func(w io.Writer) error {
		if len(view.Overrides) == 0 {
			_, err := fmt.Fprintln(w, "no override files")
			return err
		}
		for _, o := range view.Overrides {
			fmt.Fprintf(w, "%s (%s)\n", o.Catalog, o.Path)
			for _, v := range o.Versions {
				fmt.Fprintf(w, "  %s = %s\n", v.Reference, v.Version)
			}
			for _, warning := range o.Report.Warnings {
				fmt.Fprintf(w, "  warning: %s\n", warning)
			}
		}
		return nil
	})
}

func (a *app) mergeOverride(basePath string, catalogs []string, strategy override.Strategy) error {
	catalog := settings.PlatformCatalog
	switch len(catalogs) {
	case 0:
	case 1:
		catalog = catalogs[0]
	default:
		return errors.New("--base merges a single catalog: pass one --catalog")
	}

	baseModel, err := a.parseFile(basePath)
	if err != nil {
		return err
	}
	overrides, ok, err := settings.LoadOverride(a.cfg.ProjectDir, catalog, versioncatalog.WithLogger(a.logger))
	if err != nil {
		return err
	}
	path := settings.OverridePath(a.cfg.ProjectDir, catalog)
	if !ok {
		return fmt.Errorf("no override file %s", path)
	}

	merged, report, err := override.Merge(baseModel, overrides,
		override.WithLogger(a.logger),
		override.WithStrategy(strategy),
		override.WithSource(path))
	if err != nil {
		return err
	}

	switch a.cfg.Format {
	case "text", "toml":
		for _, alias := range report.Added {
			a.logger.Info("added version", "alias", alias)
		}
		for _, alias := range report.Skipped {
			a.logger.Info("skipped version", "alias", alias)
		}
		return merged.WriteTOML(a.out)
	default:
		return a.render(overrideView{Catalog: catalog, Path: path, Versions: merged.Versions(), Report: report}, nil)
	}
}

func (a *app) watchOverrides(ctx context.Context, run func(context.Context) error) error {
	w, err := settings.NewWatcher(a.cfg.ProjectDir, settings.WithWatchLogger(a.logger))
	if err != nil {
		return err
	}
	defer w.Stop()
	if err := w.Start(); err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case change, ok := <-w.Changes:
			if !ok {
				return nil
			}
			a.logger.Info("override changed", "catalog", change.Catalog, "removed", change.Removed)
			if err := run(ctx); err != nil {
				a.logger.Error("override failed", "error", err)
			}
		}
	}
}
