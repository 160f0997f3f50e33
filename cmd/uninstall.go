package cmd

import (
	"fmt"

	"kubedeploy/internal/cli"
	"kubedeploy/internal/cluster"
	"kubedeploy/internal/reconcile"

	"github.com/spf13/cobra"
)

// newUninstallCmd creates the Cobra command that removes a target's namespace.
func newUninstallCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "uninstall <target>",
		Short: "Remove a target's namespace from the cluster",
		Long: `Uninstall deletes the target's namespace and waits for the deletion
to complete. An absent namespace is reported as a no-op, not an error.`,
		Args: cobra.ExactArgs(1),
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

			r := reconcile.New(reconcile.Options{
				Client:    cluster.NewKubectlClient(runner, cfg.WorkDir(target)),
				Prompter:  cli.NewReadlinePrompter(),
				Principal: cfg.Principal,
				Progress:  cli.NewSpinnerProgress(),
			})

			report, err := r.Uninstall(cmd.Context(), name, target)
			if err != nil {
				return err
			}
			switch report.Outcome {
			case reconcile.OutcomeNamespaceAbsent:
				fmt.Fprintf(cmd.OutOrStdout(), "Namespace %q does not exist; nothing to remove.\n", report.Namespace)
			default:
				fmt.Fprintf(cmd.OutOrStdout(), "Namespace %q removed.\n", report.Namespace)
			}
			return nil
		},
	}
}
