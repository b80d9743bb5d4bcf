package cli

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/gpakit/gpakit/pkg/config"
	"github.com/gpakit/gpakit/pkg/logging"
)

const appConfigKey = "app-config"

// DefaultDumpFile is the grade dump name the exporting system produces.
const DefaultDumpFile = "成绩.txt"

var (
	version = "v0.0.1-default"
	commit  = ""
	date    = ""

	debugFlag = &cli.BoolFlag{
		Name:  "debug",
		Usage: "Prints verbose logs (optional, default: false)",
	}

	formatFlag = &cli.StringFlag{
		Name:  "format",
		Usage: "Output format [text, json, yaml]",
		Value: "text",
	}

	configFlag = &cli.StringFlag{
		Name:  "config",
		Usage: "Path to a YAML config overriding the built-in tables (optional)",
	}

	fileFlag = &cli.StringFlag{
		Name:    "file",
		Aliases: []string{"f"},
		Usage:   "Path to the grade dump text file",
		Value:   DefaultDumpFile,
	}

	yesFlag = &cli.BoolFlag{
		Name:    "yes",
		Aliases: []string{"y"},
		Usage:   "Accept the disclaimer without prompting",
	}
)

// Execute creates and runs the CLI application.
func Execute() {
	logging.SetDefault(false)

	app := newApp()
	if err := app.Run(os.Args); err != nil {
		slog.Error("fatal error", "error", err)
		os.Exit(1)
	}
}

type appConfig struct {
	Conf   *config.Config
	Format string
	Debug  bool
}

func getConfig(c *cli.Context) *appConfig {
	return c.App.Metadata[appConfigKey].(*appConfig)
}

func newApp() *cli.App {
	return &cli.App{
		Name:                 "gpakit",
		Version:              fmt.Sprintf("%s (%s - %s)", version, commit, date),
		Compiled:             time.Now(),
		EnableBashCompletion: true,
		HideHelpCommand:      true,
		Usage:                "Weighted averages and GPA from a raw transcript dump",
		Flags: []cli.Flag{
			debugFlag,
			formatFlag,
			configFlag,
		},
		Commands: []*cli.Command{
			reportCmd,
			exportCmd,
			configCmd,
		},
		Before: func(c *cli.Context) error {
			if c.Bool(debugFlag.Name) {
				logging.SetDefault(true)
			}

			conf, err := config.Load(c.String(configFlag.Name))
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}

			c.App.Metadata[appConfigKey] = &appConfig{
				Conf:   conf,
				Format: c.String(formatFlag.Name),
				Debug:  c.Bool(debugFlag.Name),
			}
			return nil
		},
	}
}
