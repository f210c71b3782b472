package humanize

import "time"

// Time returns a human-readable relative time string (e.g., "prieš 3
// valandas").
func Time(t time.Time) string {
	return Relative(t, time.Now(), false)
}

// Relative describes ref as seen from now: "prieš 5 minutes" if ref is in the
// past, "už 5 minučių" otherwise. With detailed set, the exact time is
// appended in parentheses. Times more than [MaxDays] away are returned as a
// calendar date.
func Relative(ref, now time.Time, detailed bool) string {
	var (
		s   string
		err error
	)
	if now.After(ref) {
		s, err = FromDuration(now.Sub(ref), Ago)
		s = "prieš " + s
	} else {
		s, err = FromDuration(ref.Sub(now), Since)
		s = "už " + s
	}

	full := Calendar(ref, CalendarOptions{Time: true})
	// only ErrRangeExceeded is possible here
	if err != nil {
		return full
	}

	if detailed {
		s += " (" + full + ")"
	}
	return s
}
