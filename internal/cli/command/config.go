// Package command provides CLI command definitions for mapbench.
package command

import (
	"fmt"

	"github.com/urfave/cli/v2"
)

// ConfigCommand returns the config subcommand group.
func ConfigCommand() *cli.Command {
	return &cli.Command{
		Name:  "config",
		Usage: "Configuration inspection",
		Subcommands: []*cli.Command{
			{
				Name:   "show",
				Usage:  "Show the resolved configuration (defaults, file, env, flags)",
				Flags:  workloadFlags(),
				Action: configShow,
			},
			{
				Name:   "validate",
				Usage:  "Validate the configuration without running",
				Flags:  workloadFlags(),
				Action: configValidate,
			},
		},
	}
}

func configShow(c *cli.Context) error {
	cfg, _, err := prepare(c)
	if err != nil {
		return err
	}

	return writeRecord(c, cfg.Output.Format, cfg)
}

func configValidate(c *cli.Context) error {
	if _, _, err := prepare(c); err != nil {
		return err
	}

	fmt.Fprintln(writer(c), "configuration is valid")
	return nil
}
