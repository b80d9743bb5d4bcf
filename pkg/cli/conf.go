package cli

import (
	"log/slog"

	"github.com/urfave/cli/v2"

	"github.com/gpakit/gpakit/pkg/config"
)

var (
	confPathFlag = &cli.StringFlag{
		Name:  "path",
		Usage: "Where to write the config file",
		Value: "gpakit.yaml",
	}

	configCmd = &cli.Command{
		Name:            "config",
		Usage:           "Config file operations",
		HideHelpCommand: true,
		Subcommands: []*cli.Command{
			{
				Name:   "init",
				Usage:  "Write the built-in tables as an editable starter config",
				Action: cmdConfigInit,
				Flags: []cli.Flag{
					confPathFlag,
				},
			},
		},
	}
)

func cmdConfigInit(c *cli.Context) error {
	path := c.String(confPathFlag.Name)
	if err := config.Save(path, config.Default()); err != nil {
		return err
	}
	slog.Info("config written", "path", path)
	return nil
}
