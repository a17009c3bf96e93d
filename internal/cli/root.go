// Package cli implements the nearacct command tree.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/near/go-account-id/internal/config"
	"github.com/near/go-account-id/internal/logger"
)

// RootOptions holds global flags and the wired-up logger shared by all
// commands.
type RootOptions struct {
	ConfigFile string
	Format     config.OutputFormat
	Verbose    bool
	Logger     logger.AppLogger
}

// NewRootCommand creates the root command for the nearacct CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	var format string
	cmd := &cobra.Command{
		Use:           "nearacct",
		Short:         "Inspect NEAR account IDs",
		Long:          "Validate, classify and walk the hierarchy of NEAR account identifiers.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig(opts.ConfigFile)
			if err != nil {
				return err
			}

			opts.Format = cfg.Output.Format
			if format != "" {
				opts.Format = config.OutputFormat(format)
			}
			if opts.Format != config.OutputFormatJSON && opts.Format != config.OutputFormatText {
				return fmt.Errorf("invalid format %q: must be one of: json, text", opts.Format)
			}

			loggerCfg := cfg.Logger
			if opts.Verbose {
				loggerCfg.Level = config.LogLevelDebug
			}
			// Logs go to stderr so JSON output on stdout stays parseable.
			appLogger, err := logger.NewAppLogger(loggerCfg, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			opts.Logger = appLogger

			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&opts.ConfigFile, "config", "", "path to YAML configuration file")
	cmd.PersistentFlags().StringVar(&format, "format", "", "output format (json|text)")
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose logging")

	cmd.AddCommand(NewValidateCommand(opts))
	cmd.AddCommand(NewClassifyCommand(opts))
	cmd.AddCommand(NewParentCommand(opts))

	return cmd
}

// formatter builds the output formatter for a command invocation.
func (o *RootOptions) formatter(cmd *cobra.Command) *OutputFormatter {
	return &OutputFormatter{
		Format: o.Format,
		Writer: cmd.OutOrStdout(),
	}
}
