// Package command provides CLI command definitions for mapbench.
package command

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/yndnr/mapbench-go/internal/infra/buildinfo"
)

// VersionCommand returns the version command.
func VersionCommand() *cli.Command {
	return &cli.Command{
		Name:  "version",
		Usage: "Print build information",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "Output format: text, json, yaml, table",
				Value:   "text",
			},
		},
		Action: func(c *cli.Context) error {
			if format := c.String("output"); format != "text" {
				return writeRecord(c, format, buildinfo.Get())
			}
			_, err := fmt.Fprintf(writer(c), "mapbench %s\n", buildinfo.String())
			return err
		},
	}
}
