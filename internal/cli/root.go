// Package cli provides the command-line interface for eyecatcher.
package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ccollicutt/eyecatcher/internal/cli/commands"
	"github.com/ccollicutt/eyecatcher/pkg/logging"
)

// EnvPrefix is the prefix of environment variables bound to global flags.
const EnvPrefix = "EYECATCHER"

// Execute runs the root command and returns the exit code.
func Execute() int {
	return Run(os.Args[1:], os.Stdout, os.Stderr)
}

// Run executes the command line args with the given output streams and
// returns the process exit code: 0 on success, 1 on any error.
func Run(args []string, stdout, stderr io.Writer) int {
	rootCmd := NewRootCommand()
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	if err := rootCmd.Execute(); err != nil {
		// SilenceErrors prevents Cobra from printing this itself
		_, _ = fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

// NewRootCommand creates the root cobra command.
func NewRootCommand() *cobra.Command {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	rootCmd := &cobra.Command{
		Use:   "eyecatcher",
		Short: "Extract and count eyecatchers in binary diagnostic dumps",
		Long: `eyecatcher scans binary diagnostic dumps for embedded eyecatcher strings
(>BIP followed by four digits or word characters) and tabulates how often each
one occurs.

It works in two offline stages composed through files:
  extract    binary dump      -> eyecatchers text file
  summarize  eyecatchers file -> "<eyecatcher> <count>" summary

Diagnostics are written to stderr; --log-level and --log-format may also be
set with EYECATCHER_LOG_LEVEL and EYECATCHER_LOG_FORMAT.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logger, err := logging.New(logging.Config{
				Level:  logging.LogLevel(v.GetString("log-level")),
				Format: logging.LogFormat(v.GetString("log-format")),
				Output: cmd.ErrOrStderr(),
			})
			if err != nil {
				return fmt.Errorf("configuring logging: %w", err)
			}
			cmd.SetContext(logging.NewContext(cmd.Context(), logger))
			return nil
		},
	}

	defaults := logging.DefaultConfig()
	rootCmd.PersistentFlags().String("config", "", "Configuration file path (YAML)")
	rootCmd.PersistentFlags().String("log-level", string(defaults.Level), "Logging level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-format", string(defaults.Format), "Log format (text, json)")
	_ = v.BindPFlag("log-level", rootCmd.PersistentFlags().Lookup("log-level"))
	_ = v.BindPFlag("log-format", rootCmd.PersistentFlags().Lookup("log-format"))

	// Add subcommands
	rootCmd.AddCommand(commands.NewExtractCommand())
	rootCmd.AddCommand(commands.NewSummarizeCommand())
	rootCmd.AddCommand(commands.NewInspectCommand())
	rootCmd.AddCommand(commands.NewValidateCommand())
	rootCmd.AddCommand(commands.NewVersionCommand())

	return rootCmd
}
