// Package cli implements the progressmaker command line.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/wintryx/progressmaker/pkg/config"
)

var (
	version = "dev"
	commit  = "none"
)

func newRootCmd() *cobra.Command {
	var envFiles []string

	cmd := &cobra.Command{
		Use:   "progressmaker",
		Short: "Notification ticket playground",
		Long: "progressmaker serves a mock REST backend and shows how pre-registered " +
			"notification tickets are resolved when HTTP calls finish.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(*cobra.Command, []string) error {
			return config.LoadFiles(envFiles...)
		},
	}
	cmd.PersistentFlags().StringSliceVar(&envFiles, "env-file", nil, "additional .env files to load")

	cmd.AddCommand(newVersionCmd())
	cmd.AddCommand(newServeCmd())
	cmd.AddCommand(newSimulateCmd())
	return cmd
}

// NewRootCmdForTest returns the root command for testing.
func NewRootCmdForTest() *cobra.Command {
	return newRootCmd()
}

func Execute() error {
	return newRootCmd().Execute()
}
