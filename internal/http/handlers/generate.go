package handlers

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	"sketchstudio/internal/audit"
	"sketchstudio/internal/domain"
	"sketchstudio/internal/middleware"
)

// Generate handles one submission: read the upload and description, run the
// generation workflow and append the returned images to the session. On any
// failure the gallery is left exactly as it was and the error is shown for
// this interaction only.
func (a *App) Generate(w http.ResponseWriter, r *http.Request) {
	view, ok := a.currentSession(r)
	if !ok || !view.Authenticated {
		redirectHome(w, r)
		return
	}
	locale := middleware.LocaleFromContext(r.Context())
	t := copyFor(locale)
	token := middleware.SessionTokenFromContext(r.Context())

	r.Body = http.MaxBytesReader(w, r.Body, a.Config.MaxUploadBytes)
	if err := r.ParseMultipartForm(a.Config.MaxUploadBytes); err != nil {
		a.renderStudio(w, r, view, t["upload_too_large"])
		return
	}

	var sketch []byte
	file, _, err := r.FormFile("sketch")
	switch {
	case err == nil:
		sketch, err = io.ReadAll(file)
		file.Close()
		if err != nil {
			a.renderStudio(w, r, view, fmt.Sprintf(t["generation_error"], err))
			return
		}
	case errors.Is(err, http.ErrMissingFile):
		// Leave sketch empty; the workflow reports the missing input.
	default:
		a.renderStudio(w, r, view, fmt.Sprintf(t["generation_error"], err))
		return
	}
	description := r.FormValue("description")

	ctx, cancel := context.WithTimeout(r.Context(), a.Config.GenerationTimeout)
	defer cancel()

	blobs, err := a.Generator.Submit(ctx, sketch, description)
	if err != nil {
		a.Audit.Record(r.Context(), audit.Event{
			Kind: audit.KindGenerate, Username: view.Username, SessionID: token,
			Success: false, Detail: err.Error(),
		})
		a.renderStudio(w, r, view, a.submitErrorMessage(t, err))
		return
	}

	count, ok := a.Sessions.AppendResults(token, blobs)
	if !ok {
		redirectHome(w, r)
		return
	}
	a.Logger.Info().Str("username", view.Username).Int("results", count).Msg("generation ok")
	a.Audit.Record(r.Context(), audit.Event{
		Kind: audit.KindGenerate, Username: view.Username, SessionID: token,
		Success: true, Detail: fmt.Sprintf("%d image(s)", len(blobs)),
	})
	redirectHome(w, r)
}

// submitErrorMessage maps workflow errors onto the page copy. A missing
// upload gets its own hint; decode and provider failures share the generic
// edit-error line with the underlying message, matching the single failure
// surface of the page.
func (a *App) submitErrorMessage(t map[string]string, err error) string {
	if errors.Is(err, domain.ErrMissingImage) {
		return t["missing_image"]
	}
	var genErr *domain.GenerationError
	if errors.As(err, &genErr) {
		return fmt.Sprintf(t["generation_error"], genErr.Reason())
	}
	return fmt.Sprintf(t["generation_error"], err)
}
