package cmd

import (
	"fmt"
	"path/filepath"

	"kubedeploy/internal/artifacts"
	"kubedeploy/internal/cli"
	"kubedeploy/internal/cluster"
	"kubedeploy/internal/config"
	"kubedeploy/internal/execute"
	"kubedeploy/internal/reconcile"
	"kubedeploy/pkg/logging"

	"github.com/spf13/cobra"
)

// newDeployCmd creates the Cobra command that deploys one target.
func newDeployCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "deploy <target>",
		Short: "Deploy a target into its namespace",
		Long: `Deploy runs the full reconciliation workflow for one target:
preconditions, namespace inspection, conflict resolution where needed,
manifest application, and a bounded wait for workload readiness. A
namespace that already holds exactly the expected resources is reported
as already deployed and left untouched.`,
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

			workDir := cfg.WorkDir(target)
			runner, closeAudit := newRunner(cfg)
			defer closeAudit()

			r := reconcile.New(reconcile.Options{
				Client:       cluster.NewKubectlClient(runner, workDir),
				Fetcher:      artifacts.NewGitFetcher(runner),
				Prompter:     cli.NewReadlinePrompter(),
				Principal:    cfg.Principal,
				PollInterval: cfg.PollInterval(),
				PollTimeout:  cfg.PollTimeout(),
				Progress:     cli.NewSpinnerProgress(),
			})

			report, err := r.Deploy(cmd.Context(), name, target, workDir)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), cli.RenderSnapshot(report.Snapshot))
			switch report.Outcome {
			case reconcile.OutcomeAlreadyDeployed:
				fmt.Fprintf(cmd.OutOrStdout(), "Target %q is already deployed; nothing was applied.\n", name)
			default:
				fmt.Fprintf(cmd.OutOrStdout(), "Target %q deployed successfully.\n", name)
			}
			return nil
		},
	}
}

// newRunner builds the audited command executor. A failure to open the
// audit file degrades to an un-audited run with a warning; the audit trail
// is diagnostic and must not block a deployment.
func newRunner(cfg config.Config) (execute.Runner, func()) {
	auditPath := filepath.Join(cfg.BaseDir, "logs", "kubedeploy-audit.log")
	audit, err := execute.NewFileAudit(auditPath)
	if err != nil {
		logging.Warn("Executor", "Audit file unavailable (%v); commands will not be recorded", err)
		return execute.NewExecutor(nil), func() {}
	}
	return execute.NewExecutor(audit), func() { audit.Close() }
}
