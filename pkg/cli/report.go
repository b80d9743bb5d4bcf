package cli

import (
	"log/slog"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/gpakit/gpakit/pkg/extract"
	"github.com/gpakit/gpakit/pkg/report"
)

var reportCmd = &cli.Command{
	Name:            "report",
	Aliases:         []string{"r"},
	Usage:           "Compute weighted averages and GPA from the grade dump",
	HideHelpCommand: true,
	Flags: []cli.Flag{
		fileFlag,
		yesFlag,
	},
	Action: cmdReport,
}

func cmdReport(c *cli.Context) error {
	cfg := getConfig(c)

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

	return report.Render(os.Stdout, rep, cfg.Format)
}

// buildReport runs the whole pipeline: dump file → embedded objects → rows
// → official set → aggregates.
func buildReport(c *cli.Context) (report.Report, error) {
	cfg := getConfig(c)
	path := c.String(fileFlag.Name)

	rows, err := extract.ReadRows(path)
	if err != nil {
		return report.Report{}, err
	}

	official := cfg.Conf.Filter().Official(rows)
	slog.Debug("official set built", "rows", len(rows), "courses", len(official))

	return report.Build(official, cfg.Conf.Classifier(), cfg.Conf.GPATable), nil
}
