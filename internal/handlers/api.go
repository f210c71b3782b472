package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"olexsmir.xyz/ltwords/internal/humanize"
)

func (h *handlers) durationHandler(w http.ResponseWriter, r *http.Request) {
	arg, err := requiredParam(r, "seconds")
	if err != nil {
		h.write400(w, err)
		return
	}

	seconds, err := strconv.ParseFloat(arg, 64)
	if err != nil {
		h.write400(w, fmt.Errorf("invalid seconds: %w", err))
		return
	}

	variant := h.c.Variant()
	if v := r.URL.Query().Get("variant"); v != "" {
		if variant, err = humanize.ParseVariant(v); err != nil {
			h.write400(w, err)
			return
		}
	}

	s, err := humanize.Duration(seconds, variant)
	switch {
	case errors.Is(err, humanize.ErrRangeExceeded):
		h.write422(w, err)
	case err != nil:
		h.write400(w, err)
	default:
		h.writeText(w, s)
	}
}

func (h *handlers) relativeHandler(w http.ResponseWriter, r *http.Request) {
	loc := h.c.Location()

	ref, err := h.timeParam(r, "t")
	if err != nil {
		h.write400(w, err)
		return
	}

	now := time.Now()
	if r.URL.Query().Has("now") {
		if now, err = h.timeParam(r, "now"); err != nil {
			h.write400(w, err)
			return
		}
	}

	detailed, err := boolParam(r, "detailed", h.c.Humanize.Detailed)
	if err != nil {
		h.write400(w, err)
		return
	}

	h.writeText(w, humanize.Relative(ref.In(loc), now.In(loc), detailed))
}

func (h *handlers) wordsHandler(w http.ResponseWriter, r *http.Request) {
	arg, err := requiredParam(r, "n")
	if err != nil {
		h.write400(w, err)
		return
	}

	n, err := strconv.Atoi(arg)
	if err != nil {
		h.write400(w, fmt.Errorf("invalid n: %w", err))
		return
	}
	if n < 0 {
		h.write400(w, fmt.Errorf("%w: %d", humanize.ErrNegativeCount, n))
		return
	}

	var f humanize.Forms
	for _, p := range []struct {
		name string
		dst  *string
	}{{"ones", &f.Ones}, {"tens", &f.Tens}, {"plural", &f.Plural}} {
		if *p.dst, err = requiredParam(r, p.name); err != nil {
			h.write400(w, err)
			return
		}
	}
	f.Zero = r.URL.Query().Get("zero")
	if f.Custom, err = boolParam(r, "custom", false); err != nil {
		h.write400(w, err)
		return
	}

	h.writeText(w, humanize.Words(n, f))
}

func (h *handlers) calendarHandler(w http.ResponseWriter, r *http.Request) {
	t, err := h.timeParam(r, "t")
	if err != nil {
		h.write400(w, err)
		return
	}

	opts := h.c.CalendarOptions()
	if opts.Time, err = boolParam(r, "time", opts.Time); err != nil {
		h.write400(w, err)
		return
	}
	if opts.Seconds, err = boolParam(r, "seconds", opts.Seconds); err != nil {
		h.write400(w, err)
		return
	}
	if opts.Weekday, err = boolParam(r, "weekday", opts.Weekday); err != nil {
		h.write400(w, err)
		return
	}

	h.writeText(w, humanize.Calendar(t.In(h.c.Location()), opts))
}

func (h *handlers) timeParam(r *http.Request, name string) (time.Time, error) {
	v, err := requiredParam(r, name)
	if err != nil {
		return time.Time{}, err
	}
	t, err := humanize.ParseTime(v, h.c.Location())
	if err != nil {
		return time.Time{}, fmt.Errorf("%s: %w", name, err)
	}
	return t, nil
}
