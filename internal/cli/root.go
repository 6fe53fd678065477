// Package cli implements the vercat command line.
package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/albertocavalcante/go-versioncatalog/internal/config"
)

// app carries the state shared by all commands of one invocation.
type app struct {
	v       *viper.Viper
	cfg     config.Config
	cfgFile string
	logger  *slog.Logger
	out     io.Writer
	errOut  io.Writer
}

// NewRootCommand builds the vercat command tree writing to out and errOut.
func NewRootCommand(out, errOut io.Writer) *cobra.Command {
	a := &app{v: config.New(), out: out, errOut: errOut}

	root := &cobra.Command{
		Use:   "vercat",
		Short: "Inspect and merge Gradle version catalogs",
		Long: "vercat parses Gradle version catalogs leniently, merges version override files " +
			"into platform catalogs and exports catalogs to other build systems.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Name() == "version" {
				return nil
			}
			cfg, err := config.Load(a.v, a.cfgFile)
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}
			a.cfg = cfg

			level := slog.LevelWarn
			if cfg.Verbose {
				level = slog.LevelDebug
			}
			a.logger = slog.New(slog.NewTextHandler(a.errOut, &slog.HandlerOptions{Level: level}))
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(out)
	root.SetErr(errOut)

	flags := root.PersistentFlags()
	flags.StringVar(&a.cfgFile, "config", "", "config file (default .vercat.yaml)")
	flags.StringP("format", "o", "text", "output format: text, json, yaml or toml")
	flags.BoolP("verbose", "v", false, "verbose output")
	flags.StringP("project", "C", ".", "Gradle project directory")
	_ = a.v.BindPFlag("format", flags.Lookup("format"))
	_ = a.v.BindPFlag("verbose", flags.Lookup("verbose"))
	_ = a.v.BindPFlag("project_dir", flags.Lookup("project"))

	root.AddCommand(
		a.newParseCommand(),
		a.newRefsCommand(),
		a.newOverrideCommand(),
		a.newGraphCommand(),
		a.newCheckCommand(),
		a.newDiffCommand(),
		a.newExportCommand(),
		a.newPlatformCommand(),
		newVersionCommand(),
	)
	return root
}

// Execute runs vercat with the process arguments and returns the exit code.
func Execute() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := NewRootCommand(os.Stdout, os.Stderr).ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		return 1
	}
	return 0
}
