package main

import (
	"os"

	"github.com/urfave/cli/v2"

	"sortdemo/src/cmd"
	"sortdemo/src/utils"
)

var logger = utils.GetLogger("sortdemo")

func main() {
	app := &cli.App{
		Name:                 "sortdemo",
		Usage:                "classic comparison sort demonstrations",
		HideHelpCommand:      true,
		EnableBashCompletion: true,
		Flags:                globalFlags(),
		Commands: []*cli.Command{
			cmd.CmdSort(),
			cmd.CmdBench(),
		},
	}
	if err := app.Run(os.Args); err != nil {
		logger.Fatalf("%s", err)
	}
}

func globalFlags() []cli.Flag {
	return []cli.Flag{
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"debug", "v"},
			Usage:   "show debug log",
		},
		&cli.BoolFlag{
			Name:    "quiet",
			Aliases: []string{"q"},
			Usage:   "show warning and errors only",
		},
		&cli.BoolFlag{
			Name:  "trace",
			Usage: "show more runtime log",
		},
		&cli.BoolFlag{
			Name:  "no-agent",
			Usage: "disable pprof and gops agent",
		},
		&cli.StringFlag{
			Name:  "pyroscope",
			Usage: "pyroscope server address",
		},
		&cli.BoolFlag{
			Name:  "no-color",
			Usage: "disable colors",
		},
	}
}
