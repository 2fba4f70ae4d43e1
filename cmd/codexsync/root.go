package main

import (
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "codexsync",
		Short:   "Keep codex-config skills and the ~/.codex destination in sync",
		Version: version,
	}

	cmd.PersistentFlags().String("root", ".", "Repository root directory")

	cmd.AddCommand(
		newRemoteCmd(),
		newDeployCmd(),
		newStatusCmd(),
		newDoctorCmd(),
		newInitCmd(),
	)

	return cmd
}
