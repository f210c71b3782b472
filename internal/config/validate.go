package config

import (
	"errors"
	"fmt"
	"time"

	"olexsmir.xyz/ltwords/internal/humanize"
)

func (c Config) validate() error {
	var errs []error

	if err := checkPort(c.Server.Port); err != nil {
		errs = append(errs, fmt.Errorf("server.port %w", err))
	}

	if _, err := humanize.ParseVariant(c.Humanize.Variant); err != nil {
		errs = append(errs, fmt.Errorf("humanize.variant: %w", err))
	}

	if _, err := time.LoadLocation(c.Humanize.Timezone); err != nil {
		errs = append(errs, fmt.Errorf("humanize.timezone: %w", err))
	}

	if c.Calendar.Seconds && c.Calendar.Time != nil && !*c.Calendar.Time {
		errs = append(errs, errors.New("calendar.seconds requires calendar.time"))
	}

	return errors.Join(errs...)
}

func checkPort(port int) error {
	if port < 1 || port > 65535 {
		return fmt.Errorf("must be between 1 and 65535, got %d", port)
	}
	return nil
}
