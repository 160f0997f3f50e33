package cmd

import (
	"sort"
	"strings"

	kdstrings "kubedeploy/pkg/strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

// newListCmd creates the Cobra command that lists configured targets.
func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the configured deployment targets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			names := make([]string, 0, len(cfg.Targets))
			for name := range cfg.Targets {
				names = append(names, name)
			}
			sort.Strings(names)

			t := table.NewWriter()
			t.SetOutputMirror(cmd.OutOrStdout())
			t.SetStyle(table.StyleRounded)
			t.AppendHeader(table.Row{"TARGET", "NAMESPACE", "MANIFESTS", "WORKLOADS"})
			for _, name := range names {
				target := cfg.Targets[name]
				workloads := make([]string, len(target.Workloads))
				for i, w := range target.Workloads {
					workloads[i] = w.Name
				}
				t.AppendRow(table.Row{
					name,
					target.Namespace,
					kdstrings.TruncateCell(strings.Join(target.Manifests, ", "), kdstrings.DefaultCellMaxLen),
					kdstrings.TruncateCell(strings.Join(workloads, ", "), kdstrings.DefaultCellMaxLen),
				})
			}
			t.Render()
			return nil
		},
	}
}
