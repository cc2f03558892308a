package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

const (
	Version = "dev"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), "version:", Version)
	},
}

func init() {
	RootCmd.AddCommand(versionCmd)
}
