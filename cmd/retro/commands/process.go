package commands

import (
	"strconv"

	"github.com/spf13/cobra"
	"go.trai.ch/retro/internal/app"
	"go.trai.ch/retro/internal/core/domain"
)

func (c *CLI) newProcessClassesCmd() *cobra.Command {
	return c.newProcessCmd(
		"process-classes",
		"Backport the main classes of the project",
		domain.GoalMain,
	)
}

func (c *CLI) newProcessTestClassesCmd() *cobra.Command {
	return c.newProcessCmd(
		"process-test-classes",
		"Backport the test classes of the project",
		domain.GoalTest,
	)
}

func (c *CLI) newProcessCmd(use, short string, goal domain.Goal) *cobra.Command {
	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts, err := processOptions(cmd)
			if err != nil {
				return err
			}
			return c.app.Process(cmd.Context(), goal, opts)
		},
	}
	cmd.Flags().StringP("config", "c", "", "Path to the config file (default: discover retro.yaml or retro.toml)")
	cmd.Flags().StringArrayP("define", "D", nil, "Override a property, as key=value or key for true")
	cmd.Flags().Bool("fork", false, "Run Retrolambda in a forked Java process")
	cmd.Flags().Bool("skip", false, "Skip processing")
	return cmd
}

func processOptions(cmd *cobra.Command) (app.ProcessOptions, error) {
	configPath, _ := cmd.Flags().GetString("config")
	rawDefines, _ := cmd.Flags().GetStringArray("define")

	defines, err := domain.ParseDefines(rawDefines)
	if err != nil {
		return app.ProcessOptions{}, err
	}

	for _, name := range []string{domain.DefineFork, domain.DefineSkip} {
		if !cmd.Flags().Changed(name) {
			continue
		}
		value, _ := cmd.Flags().GetBool(name)
		defines[name] = strconv.FormatBool(value)
	}

	return app.ProcessOptions{
		ConfigPath: configPath,
		Defines:    defines,
	}, nil
}
