package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/finch-gen/finch/internal/config"
	"github.com/finch-gen/finch/internal/generator"
	"github.com/finch-gen/finch/internal/ui"
	"github.com/finch-gen/finch/pkg/log"
)

var (
	// flagOutput overrides the output base name derived from the directory.
	flagOutput string
	// flagPrefix names the generated root value.
	flagPrefix string
	// flagCFile enables split mode (header + companion .c file).
	flagCFile bool
	// flagStrict aborts on symlinks and other unsupported entries.
	flagStrict bool
	// flagConfig is the project configuration file path.
	flagConfig string
)

// generateCmd represents the generate command.
var generateCmd = &cobra.Command{
	Use:   "generate <directory> [output]",
	Short: "Compile a directory into a C header with embedded file data",
	Args:  cobra.RangeArgs(1, 2),
	Run: func(cmd *cobra.Command, args []string) {
		if err := runGenerate(cmd, args); err != nil {
			ui.PrintError("generate", err.Error())
			os.Exit(1)
		}
	},
}

func init() {
	generateCmd.Flags().StringVarP(&flagOutput, "output", "o", "", "Output base name (default: directory name)")
	generateCmd.Flags().StringVarP(&flagPrefix, "prefix", "p", "", "Identifier for the generated root value")
	generateCmd.Flags().BoolVarP(&flagCFile, "c-file", "c", false, "Write definitions to a companion .c file")
	generateCmd.Flags().BoolVar(&flagStrict, "strict", false, "Abort on entries that are not regular files or directories")
	generateCmd.Flags().StringVar(&flagConfig, "config", "finch.yaml", "Project configuration file")
	rootCmd.AddCommand(generateCmd)
}

// runGenerate loads the configuration, applies flag overrides and invokes
// the compiler.
//
// Returns:
//   - error: An error if generation fails at any step.
func runGenerate(cmd *cobra.Command, args []string) error {
	flags := cmd.Flags()

	// The config file is optional unless the user pointed --config away
	// from the default.
	cfg, err := config.Load(flagConfig, !flags.Changed("config"))
	if err != nil {
		return err
	}

	config.ApplyDefaults(cfg)

	if err := config.Validate(cfg); err != nil {
		return err
	}

	// Flags set on the command line win over file values, including
	// explicit --c-file=false / --strict=false.
	if flags.Changed("output") {
		cfg.Output = flagOutput
	}
	if len(args) > 1 {
		cfg.Output = args[1]
	}
	if flags.Changed("prefix") {
		cfg.Prefix = flagPrefix
	}
	if flags.Changed("c-file") {
		cfg.CFile = flagCFile
	}
	if flags.Changed("strict") {
		cfg.Strict = flagStrict
	}

	level := logLevel
	if level == "" {
		level = cfg.Logging.Level
	}
	if err := log.Init(cfg.Logging.Path, level); err != nil {
		return err
	}

	return generator.Generate(cfg, args[0], generator.Options{})
}
