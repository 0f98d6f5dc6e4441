// Package commands implements the CLI commands for retro.
package commands

import (
	"context"
	"io"
	"slices"

	"github.com/spf13/cobra"
	"go.trai.ch/retro/internal/adapters/detector"
	"go.trai.ch/retro/internal/app"
	"go.trai.ch/retro/internal/build"
	"go.trai.ch/zerr"
)

var errInvalidLogFormat = zerr.New("invalid log format")

var logFormats = []string{"auto", "pretty", "json"}

// LogSwitch toggles the logger between pretty and JSON output.
type LogSwitch interface {
	SetJSON(enable bool)
}

// CLI represents the command line interface for retro.
type CLI struct {
	app     *app.App
	logs    LogSwitch
	rootCmd *cobra.Command
}

// New creates a new CLI instance with the given app.
// logs may be nil when the logger cannot switch formats.
func New(a *app.App, logs LogSwitch) *CLI {
	rootCmd := &cobra.Command{
		Use:           "retro",
		Short:         "Backport Java 8 bytecode with Retrolambda",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	rootCmd.PersistentFlags().String("log-format", "auto", "Log output format: auto, pretty or json")

	c := &CLI{
		app:     a,
		logs:    logs,
		rootCmd: rootCmd,
	}

	rootCmd.PersistentPreRunE = c.configureLogging

	rootCmd.AddCommand(c.newProcessClassesCmd())
	rootCmd.AddCommand(c.newProcessTestClassesCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOut redirects command output. Used for testing.
func (c *CLI) SetOut(w io.Writer) {
	c.rootCmd.SetOut(w)
}

func (c *CLI) configureLogging(cmd *cobra.Command, _ []string) error {
	flag, _ := cmd.Flags().GetString("log-format")
	if !slices.Contains(logFormats, flag) {
		return zerr.With(errInvalidLogFormat, "log_format", flag)
	}
	if c.logs == nil {
		return nil
	}
	format := detector.ResolveFormat(detector.DetectEnvironment(), flag)
	c.logs.SetJSON(format == detector.FormatJSON)
	return nil
}
