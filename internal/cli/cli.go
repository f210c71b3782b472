package cli

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"
	"olexsmir.xyz/ltwords/internal/config"
	"olexsmir.xyz/ltwords/internal/humanize"
)

type Cli struct {
	cfg     *config.Config
	version string
}

func New(version string) *Cli {
	return &Cli{version: version}
}

func (c *Cli) Run(ctx context.Context, args []string) error {
	return c.command().Run(ctx, args)
}

func (c *Cli) command() *cli.Command {
	return &cli.Command{
		Name:                  "ltwords",
		Usage:                 "lithuanian words for numbers, durations and dates",
		Version:               c.version,
		EnableShellCompletion: true,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "path to config file",
			},
			&cli.BoolFlag{
				Name:  "capitalize",
				Usage: "capitalize the first word of the output",
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			loadedCfg, err := config.Load(cmd.String("config"))
			if err != nil {
				return ctx, err
			}
			c.cfg = loadedCfg
			return ctx, nil
		},
		Commands: []*cli.Command{
			{
				Name:   "duration",
				Usage:  "describe a number of seconds, up to 31 days",
				Action: c.durationAction,
				Arguments: []cli.Argument{
					&cli.StringArg{Name: "seconds"},
				},
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "variant",
						Usage:   "grammatical variant: ago, noun or since",
						Sources: cli.EnvVars("LTWORDS_VARIANT"),
					},
				},
			},
			{
				Name:   "relative",
				Usage:  "describe a time relative to now",
				Action: c.relativeAction,
				Arguments: []cli.Argument{
					&cli.StringArg{Name: "time"},
				},
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "now",
						Usage: "time to compare against instead of the current one",
					},
					&cli.BoolFlag{
						Name:  "detailed",
						Usage: "append the exact time",
					},
				},
			},
			{
				Name:   "words",
				Usage:  "decline a word for a number",
				Action: c.wordsAction,
				Arguments: []cli.Argument{
					&cli.StringArg{Name: "number"},
				},
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "ones", Usage: "form for 1, 21, 31...", Required: true},
					&cli.StringFlag{Name: "tens", Usage: "form for 10-20, 30, 40...", Required: true},
					&cli.StringFlag{Name: "plural", Usage: "form for everything else", Required: true},
					&cli.StringFlag{Name: "zero", Usage: "form for 0, defaults to --tens"},
					&cli.BoolFlag{Name: "custom", Usage: "don't prepend the number to forms without %d"},
				},
			},
			{
				Name:   "calendar",
				Usage:  "format a date",
				Action: c.calendarAction,
				Arguments: []cli.Argument{
					&cli.StringArg{Name: "date"},
				},
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "time", Usage: "add hours and minutes"},
					&cli.BoolFlag{Name: "seconds", Usage: "add seconds"},
					&cli.BoolFlag{Name: "weekday", Usage: "add the day of the week"},
				},
			},
			{
				Name:   "serve",
				Usage:  "starts the http server",
				Action: c.serveAction,
			},
		},
	}
}

func (c *Cli) print(cmd *cli.Command, s string) error {
	if cmd.Bool("capitalize") || c.cfg.Humanize.Capitalize {
		s = humanize.Capitalize(s)
	}
	_, err := fmt.Fprintln(cmd.Root().Writer, s)
	return err
}
