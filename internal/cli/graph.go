package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/albertocavalcante/go-versioncatalog/graph"
)

var errCheckFailed = errors.New("catalog check failed")

func (a *app) newGraphCommand() *cobra.Command {
	var dot bool
	cmd := &cobra.Command{
		Use:   "graph FILE",
		Short: "Show how libraries use version aliases",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := a.parseFile(args[0])
			if err != nil {
				return err
			}
			g := graph.Build(m)
			if dot {
				_, err := io.WriteString(a.out, g.ToDOT())
				return err
			}
			return a.render(g.Document(), func(w io.Writer) error {
				_, err := io.WriteString(w, g.ToText())
				return err
			})
		},
	}
	cmd.Flags().BoolVar(&dot, "dot", false, "output Graphviz DOT")
	return cmd
}

type checkView struct {
	Issues []graph.Issue `json:"issues" yaml:"issues" toml:"issues"`
}

func (a *app) newCheckCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "check FILE",
		Short: "Report dangling references, unused versions and unsatisfiable constraints",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := a.parseFile(args[0])
			if err != nil {
				return err
			}
			issues := graph.Build(m).Check()
			err = a.render(checkView{Issues: issues}, func(w io.Writer) error {
				if len(issues) == 0 {
					_, err := fmt.Fprintln(w, "no issues")
					return err
				}
				for _, issue := range issues {
					if _, err := fmt.Fprintln(w, issue); err != nil {
						return err
					}
				}
				return nil
			})
			if err != nil {
				return err
			}
			if graph.HasErrors(issues) {
				return errCheckFailed
			}
			return nil
		},
	}
}
