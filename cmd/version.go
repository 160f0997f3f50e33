package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// newVersionCmd creates the Cobra command for displaying the application version.
func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number of kubedeploy",
		Long: `Print the kubedeploy version. Include this output when reporting a
problem with a deployment run, together with the audit log from
<baseDir>/logs.`,
		Run: func(cmd *cobra.Command, args []string) {
			// rootCmd.Version is set by main via SetVersion.
			fmt.Fprintf(cmd.OutOrStdout(), "kubedeploy version %s\n", rootCmd.Version)
		},
	}
}
