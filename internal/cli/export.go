package cli

import (
	"github.com/spf13/cobra"

	"github.com/albertocavalcante/go-versioncatalog/bazelexport"
	"github.com/albertocavalcante/go-versioncatalog/settings"
)

func (a *app) newExportCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export a catalog to another build system",
	}
	cmd.AddCommand(a.newExportBazelCommand())
	return cmd
}

func (a *app) newExportBazelCommand() *cobra.Command {
	var platformRepos bool
	cmd := &cobra.Command{
		Use:   "bazel FILE",
		Short: "Render a catalog as a rules_jvm_external maven.install tag",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := a.parseFile(args[0])
			if err != nil {
				return err
			}

			repos := a.cfg.Bazel.Repositories
			if platformRepos {
				version, err := settings.PlatformVersion(a.cfg.ProjectDir)
				if err != nil {
					return err
				}
				repos = append(repos, settings.RepositoryURLs(settings.Repositories(version))...)
			}

			out, err := bazelexport.Export(m,
				bazelexport.WithLogger(a.logger),
				bazelexport.WithRepoName(a.cfg.Bazel.RepoName),
				bazelexport.WithRepositories(repos...),
				bazelexport.WithFetchSources(a.cfg.Bazel.FetchSources),
			)
			if err != nil {
				return err
			}
			_, err = a.out.Write(out)
			return err
		},
	}

	flags := cmd.Flags()
	flags.StringSlice("repository", nil, "Maven repository URL (repeatable)")
	flags.String("repo-name", "maven", "name of the generated Maven repository")
	flags.Bool("fetch-sources", false, "fetch source jars")
	flags.BoolVar(&platformRepos, "platform-repositories", false, "add the repositories of the project's platform version")
	_ = a.v.BindPFlag("bazel.repositories", flags.Lookup("repository"))
	_ = a.v.BindPFlag("bazel.repo_name", flags.Lookup("repo-name"))
	_ = a.v.BindPFlag("bazel.fetch_sources", flags.Lookup("fetch-sources"))
	return cmd
}
