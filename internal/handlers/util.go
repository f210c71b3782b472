package handlers

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"olexsmir.xyz/ltwords/internal/humanize"
)

func (h *handlers) templ(w http.ResponseWriter, name string, data any) {
	if err := h.t.ExecuteTemplate(w, name, data); err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		slog.Error("template", "name", name, "err", err)
	}
}

func (h *handlers) writeText(w http.ResponseWriter, s string) {
	if h.c.Humanize.Capitalize {
		s = humanize.Capitalize(s)
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	io.WriteString(w, s+"\n")
}

func (h *handlers) write400(w http.ResponseWriter, err error) {
	slog.Info("400", "err", err)
	http.Error(w, err.Error(), http.StatusBadRequest)
}

func (h *handlers) write422(w http.ResponseWriter, err error) {
	slog.Info("422", "err", err)
	http.Error(w, err.Error(), http.StatusUnprocessableEntity)
}

func (h *handlers) write500(w http.ResponseWriter, err error) {
	slog.Error("500", "err", err)
	http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}

// boolParam returns def if the query parameter is absent.
func boolParam(r *http.Request, name string, def bool) (bool, error) {
	v := r.URL.Query().Get(name)
	if v == "" {
		return def, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("%s: %w", name, err)
	}
	return b, nil
}

func requiredParam(r *http.Request, name string) (string, error) {
	v := r.URL.Query().Get(name)
	if v == "" {
		return "", fmt.Errorf("%s is required", name)
	}
	return v, nil
}
