package cli

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/urfave/cli/v3"
	"olexsmir.xyz/ltwords/internal/humanize"
)

func (c *Cli) durationAction(ctx context.Context, cmd *cli.Command) error {
	arg := cmd.StringArg("seconds")
	if arg == "" {
		return fmt.Errorf("no seconds provided")
	}

	seconds, err := strconv.ParseFloat(arg, 64)
	if err != nil {
		return fmt.Errorf("invalid seconds: %w", err)
	}

	variant := c.cfg.Variant()
	if v := cmd.String("variant"); v != "" {
		if variant, err = humanize.ParseVariant(v); err != nil {
			return err
		}
	}

	s, err := humanize.Duration(seconds, variant)
	if err != nil {
		return fmt.Errorf("failed to humanize duration: %w", err)
	}
	return c.print(cmd, s)
}

func (c *Cli) relativeAction(ctx context.Context, cmd *cli.Command) error {
	arg := cmd.StringArg("time")
	if arg == "" {
		return fmt.Errorf("no time provided")
	}

	ref, err := humanize.ParseTime(arg, c.cfg.Location())
	if err != nil {
		return err
	}

	now := time.Now()
	if s := cmd.String("now"); s != "" {
		if now, err = humanize.ParseTime(s, c.cfg.Location()); err != nil {
			return fmt.Errorf("invalid --now: %w", err)
		}
	}

	detailed := c.cfg.Humanize.Detailed
	if cmd.IsSet("detailed") {
		detailed = cmd.Bool("detailed")
	}

	loc := c.cfg.Location()
	return c.print(cmd, humanize.Relative(ref.In(loc), now.In(loc), detailed))
}

func (c *Cli) wordsAction(ctx context.Context, cmd *cli.Command) error {
	arg := cmd.StringArg("number")
	if arg == "" {
		return fmt.Errorf("no number provided")
	}

	n, err := strconv.Atoi(arg)
	if err != nil {
		return fmt.Errorf("invalid number: %w", err)
	}
	if n < 0 {
		return fmt.Errorf("number must not be negative, got %d", n)
	}

	return c.print(cmd, humanize.Words(n, humanize.Forms{
		Ones:   cmd.String("ones"),
		Tens:   cmd.String("tens"),
		Plural: cmd.String("plural"),
		Zero:   cmd.String("zero"),
		Custom: cmd.Bool("custom"),
	}))
}

func (c *Cli) calendarAction(ctx context.Context, cmd *cli.Command) error {
	arg := cmd.StringArg("date")
	if arg == "" {
		return fmt.Errorf("no date provided")
	}

	t, err := humanize.ParseTime(arg, c.cfg.Location())
	if err != nil {
		return err
	}

	opts := c.cfg.CalendarOptions()
	if cmd.IsSet("time") {
		opts.Time = cmd.Bool("time")
	}
	if cmd.IsSet("seconds") {
		opts.Seconds = cmd.Bool("seconds")
	}
	if cmd.IsSet("weekday") {
		opts.Weekday = cmd.Bool("weekday")
	}

	return c.print(cmd, humanize.Calendar(t.In(c.cfg.Location()), opts))
}
