package humanize

import (
	"errors"
	"fmt"
	"math"
	"time"
)

// ErrRangeExceeded is returned for durations longer than MaxDays days, which
// can't be expressed in weeks and days. Use [Calendar] instead.
var ErrRangeExceeded = errors.New("difference is too big")

const MaxDays = 31

// Duration returns seconds in Lithuanian words, e.g. "3 valandos ir 12
// minučių". At most two adjacent units are used, anything finer than the
// second one is dropped.
func Duration(seconds float64, v Variant) (string, error) {
	if math.IsNaN(seconds) {
		return "", errors.New("duration is not a number")
	}

	rounded := math.Round(seconds)
	if rounded < 0 {
		return "", fmt.Errorf("%w: %v seconds", ErrNegativeCount, seconds)
	}
	if rounded > math.MaxInt64/2 {
		return "", fmt.Errorf("%w: %v seconds", ErrRangeExceeded, seconds)
	}

	secs := int(rounded)
	if secs < 60 {
		return Second.Words(secs, v), nil
	}

	minutes, secs := secs/60, secs%60
	if minutes < 60 {
		return join(Minute, minutes, Second, secs, v), nil
	}

	hours, minutes := minutes/60, minutes%60
	if hours < 24 {
		return join(Hour, hours, Minute, minutes, v), nil
	}

	days, hours := hours/24, hours%24
	if days > MaxDays {
		return "", fmt.Errorf("%w: %d days, max is %d", ErrRangeExceeded, days, MaxDays)
	}
	if days >= 7 {
		return join(Week, days/7, Day, days%7, v), nil
	}
	return join(Day, days, Hour, hours, v), nil
}

// FromDuration is like [Duration] but takes a [time.Duration].
func FromDuration(d time.Duration, v Variant) (string, error) {
	return Duration(d.Seconds(), v)
}

func join(coarse Unit, n int, fine Unit, rest int, v Variant) string {
	s := coarse.Words(n, v)
	if rest == 0 {
		return s
	}
	return s + " ir " + fine.Words(rest, v)
}
