package cmd

import (
	"errors"
	"os"
	"path/filepath"

	"kubedeploy/internal/config"
	"kubedeploy/internal/reconcile"
	"kubedeploy/pkg/logging"

	"github.com/spf13/cobra"
)

// Exit codes for CLI commands. These are stable for scripting.
const (
	// ExitCodeSuccess indicates successful execution.
	ExitCodeSuccess = 0
	// ExitCodeError indicates a general error (command failed, invalid arguments).
	ExitCodeError = 1
	// ExitCodePrecondition indicates a failed precondition: wrong user,
	// stopped cluster, or missing artifacts.
	ExitCodePrecondition = 2
	// ExitCodeAborted indicates the operator aborted at the conflict
	// prompt, or never gave a recognized answer.
	ExitCodeAborted = 3
	// ExitCodeTimeout indicates a workload never became ready in time.
	ExitCodeTimeout = 4
)

var (
	configPath string
	debugMode  bool
)

// rootCmd represents the base command for the kubedeploy application.
// It is the entry point when the application is called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "kubedeploy",
	Short: "Provision application components into a local cluster",
	Long: `kubedeploy provisions one application component (dashboard, database,
messaging, backup tooling, bridge service) into a local single-node
cluster: it verifies preconditions, fetches missing manifests, detects
what the target namespace already holds, resolves conflicts with you,
applies manifests, and waits for the workloads to become healthy.`,
	// SilenceUsage prevents Cobra from printing the usage message on errors that are handled by the application.
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := logging.LevelInfo
		if debugMode {
			level = logging.LevelDebug
		}
		logging.InitForCLI(level, os.Stdout)
	},
}

// SetVersion sets the version for the root command.
// This function is typically called from the main package to inject the application version at build time.
func SetVersion(v string) {
	rootCmd.Version = v
}

// Execute is the main entry point for the CLI application.
// It initializes and executes the root command, which in turn handles subcommands and flags.
// This function is called by main.main().
func Execute() {
	rootCmd.SetVersionTemplate(`{{printf "kubedeploy version %s\n" .Version}}`)

	err := rootCmd.Execute()
	logging.CloseLogFile()
	if err != nil {
		os.Exit(getExitCode(err))
	}
}

// getExitCode determines the appropriate exit code based on the error type.
// This provides semantic exit codes for scripting and automation.
func getExitCode(err error) int {
	var identity *reconcile.IdentityMismatchError
	var unavailable *reconcile.ClusterUnavailableError
	var fetch *reconcile.ArtifactFetchFailedError
	switch {
	case errors.As(err, &identity), errors.As(err, &unavailable), errors.As(err, &fetch):
		return ExitCodePrecondition
	}

	var aborted *reconcile.UserAbortedError
	var invalid *reconcile.InvalidUserInputError
	if errors.As(err, &aborted) || errors.As(err, &invalid) {
		return ExitCodeAborted
	}

	var timeout *reconcile.ReadinessTimeoutError
	if errors.As(err, &timeout) {
		return ExitCodeTimeout
	}

	return ExitCodeError
}

// loadConfig loads configuration from the --config-path directory, falling
// back to the default location, and attaches the debug log file under the
// configured base directory. A log file that cannot be opened degrades to
// console-only logging with a warning.
func loadConfig() (config.Config, error) {
	path := configPath
	if path == "" {
		path = config.GetDefaultConfigPathOrPanic()
	}
	cfg, err := config.LoadConfig(path)
	if err != nil {
		return cfg, err
	}
	logPath := filepath.Join(cfg.BaseDir, "logs", "kubedeploy.log")
	if err := logging.AttachLogFile(logPath); err != nil {
		logging.Warn("CLI", "Log file unavailable (%v); logging to console only", err)
	}
	return cfg, nil
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config-path", "", "config directory (default is $HOME/.config/kubedeploy)")
	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "enable debug logging")

	rootCmd.AddCommand(newDeployCmd())
	rootCmd.AddCommand(newUninstallCmd())
	rootCmd.AddCommand(newStatusCmd())
	rootCmd.AddCommand(newListCmd())
	rootCmd.AddCommand(newVersionCmd())
}
