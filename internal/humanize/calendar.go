package humanize

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// month names in the genitive case, as used in dates
var months = [...]string{
	"sausio", "vasario", "kovo", "balandžio", "gegužės", "birželio",
	"liepos", "rugpjūčio", "rugsėjo", "spalio", "lapkričio", "gruodžio",
}

var weekdays = [...]string{
	time.Sunday:    "sekmadienis",
	time.Monday:    "pirmadienis",
	time.Tuesday:   "antradienis",
	time.Wednesday: "trečiadienis",
	time.Thursday:  "ketvirtadienis",
	time.Friday:    "penktadienis",
	time.Saturday:  "šeštadienis",
}

type CalendarOptions struct {
	Time    bool // add hours and minutes
	Seconds bool // add seconds, only with Time
	Weekday bool
}

// Calendar formats t as a Lithuanian date, e.g. "2022 m. sausio 03 d. 14:05".
func Calendar(t time.Time, o CalendarOptions) string {
	s := fmt.Sprintf("%04d m. %s %02d d.", t.Year(), months[t.Month()-1], t.Day())
	if o.Time {
		s += fmt.Sprintf(" %02d:%02d", t.Hour(), t.Minute())
		if o.Seconds {
			s += fmt.Sprintf(":%02d", t.Second())
		}
	}
	if o.Weekday {
		s += ", " + weekdays[t.Weekday()]
	}
	return s
}

var timeLayouts = []string{
	time.RFC3339,
	time.DateTime,
	"2006-01-02 15:04",
	time.DateOnly,
}

// ParseTime parses s as RFC 3339, "2006-01-02 15:04:05", "2006-01-02 15:04",
// "2006-01-02" or unix seconds. Times without a zone are read in loc.
func ParseTime(s string, loc *time.Location) (time.Time, error) {
	s = strings.TrimSpace(s)
	if unix, err := strconv.ParseInt(s, 10, 64); err == nil {
		return time.Unix(unix, 0).In(loc), nil
	}

	for _, layout := range timeLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized time %q", s)
}
