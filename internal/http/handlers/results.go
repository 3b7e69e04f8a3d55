package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"sketchstudio/internal/middleware"
	"sketchstudio/pkg/zip"
)

// Download streams one gallery entry as a PNG file named after its 1-based
// display index.
func (a *App) Download(w http.ResponseWriter, r *http.Request) {
	view, ok := a.currentSession(r)
	if !ok || !view.Authenticated {
		redirectHome(w, r)
		return
	}
	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil || index < 1 {
		http.NotFound(w, r)
		return
	}
	token := middleware.SessionTokenFromContext(r.Context())
	data, ok := a.Sessions.Result(token, index)
	if !ok {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=result_%d.png", index))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

// Archive bundles every accumulated result into one zip download.
func (a *App) Archive(w http.ResponseWriter, r *http.Request) {
	view, ok := a.currentSession(r)
	if !ok || !view.Authenticated {
		redirectHome(w, r)
		return
	}
	if len(view.Results) == 0 {
		http.NotFound(w, r)
		return
	}
	archive := zip.ArchiveResults(view.Results)
	w.Header().Set("Content-Type", "application/zip")
	w.Header().Set("Content-Disposition", "attachment; filename=results.zip")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(archive)
}
