package handlers

import (
	"html/template"
	"net/http"
	"time"

	"olexsmir.xyz/ltwords/internal/config"
	"olexsmir.xyz/ltwords/internal/humanize"
	"olexsmir.xyz/ltwords/web"
)

type handlers struct {
	c *config.Config
	t *template.Template

	started time.Time
}

func InitRoutes(cfg *config.Config) http.Handler {
	tmpls := template.Must(template.New("").
		Funcs(templateFuncs).
		ParseFS(web.TemplatesFS, "*"))
	h := handlers{cfg, tmpls, time.Now()}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", h.indexHandler)
	mux.HandleFunc("GET /duration", h.durationHandler)
	mux.HandleFunc("GET /relative", h.relativeHandler)
	mux.HandleFunc("GET /words", h.wordsHandler)
	mux.HandleFunc("GET /calendar", h.calendarHandler)

	handler := h.recoverMiddleware(mux)
	return h.loggingMiddleware(handler)
}

type indexData struct {
	Started  time.Time
	Variants []humanize.Variant
}

func (h *handlers) indexHandler(w http.ResponseWriter, r *http.Request) {
	h.templ(w, "index", indexData{
		Started:  h.started.In(h.c.Location()),
		Variants: []humanize.Variant{humanize.Ago, humanize.Noun, humanize.Since},
	})
}

var templateFuncs = template.FuncMap{
	"humanizeRelTime": func(t time.Time) string { return humanize.Time(t) },
	"humanizeDuration": func(seconds float64, variant string) (string, error) {
		v, err := humanize.ParseVariant(variant)
		if err != nil {
			return "", err
		}
		return humanize.Duration(seconds, v)
	},
	"calendar": func(t time.Time) string {
		return humanize.Calendar(t, humanize.CalendarOptions{Time: true})
	},
}
