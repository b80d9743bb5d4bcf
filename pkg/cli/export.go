package cli

import (
	"log/slog"

	"github.com/urfave/cli/v2"

	"github.com/gpakit/gpakit/pkg/export"
)

var (
	outputFlag = &cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "Path of the workbook to write",
		Value:   "report.xlsx",
	}

	exportCmd = &cli.Command{
		Name:            "export",
		Aliases:         []string{"e"},
		Usage:           "Write the report as an Excel workbook",
		HideHelpCommand: true,
		Flags: []cli.Flag{
			fileFlag,
			outputFlag,
			yesFlag,
		},
		Action: cmdExport,
	}
)

func cmdExport(c *cli.Context) error {
	if !c.Bool(yesFlag.Name) {
		ok, err := confirmTerms()
		if err != nil || !ok {
			return err
		}
	}

	rep, err := buildReport(c)
	if err != nil {
		return err
	}

	out := c.String(outputFlag.Name)
	if err := export.Write(out, rep); err != nil {
		return err
	}

	slog.Info("workbook written", "path", out, "courses", len(rep.Official))
	return nil
}
