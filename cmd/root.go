package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/finch-gen/finch/pkg/log"
)

// logLevel is the global log level override, set via --log-level.
var logLevel string

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "finch",
	Short: "Compile an asset directory into a C header file",
	Long: `finch compiles a directory of assets into C source: a generated header
embeds every file's bytes as static data, addressable through a struct
mirroring the directory tree.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return log.Init("", logLevel)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

// init initializes the root command and its flags.
func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")
}
