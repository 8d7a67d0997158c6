package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/finch-gen/finch/version"
)

// versionCmd prints the finch version.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the finch version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("finch", version.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
