package cmd

import (
	"fmt"

	"kubedeploy/internal/cli"
	"kubedeploy/internal/cluster"
	"kubedeploy/internal/reconcile"

	"github.com/spf13/cobra"
)

// newStatusCmd creates the Cobra command that shows a target's namespace state.
func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status <target>",
		Short: "Show the resources currently in a target's namespace",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			name := args[0]
			target, ok := cfg.Targets[name]
			if !ok {
				return fmt.Errorf("unknown target %q; run 'kubedeploy list' to see available targets", name)
			}

			runner, closeAudit := newRunner(cfg)
			defer closeAudit()
			client := cluster.NewKubectlClient(runner, cfg.WorkDir(target))

			snap, err := reconcile.NewInspector(client).Snapshot(cmd.Context(), target.Namespace)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), cli.RenderSnapshot(snap))

			ownership := reconcile.NewOwnership(target.OwnedPrefixes)
			fmt.Fprintf(cmd.OutOrStdout(), "Classification: %s\n", reconcile.Classify(snap, ownership))
			return nil
		},
	}
}
