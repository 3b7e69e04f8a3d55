package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"

	"sketchstudio/internal/audit"
	"sketchstudio/internal/auth"
	"sketchstudio/internal/imagegen"
	"sketchstudio/internal/infra"
	"sketchstudio/internal/session"
)

// App bundles the dependencies the HTTP surface needs. One instance serves
// all requests.
type App struct {
	Config    *infra.Config
	Logger    zerolog.Logger
	Auth      *auth.Store
	Sessions  *session.Store
	Generator *imagegen.Service
	Audit     *audit.Recorder
}

func NewApp(cfg *infra.Config, logger zerolog.Logger, authStore *auth.Store, sessions *session.Store, generator *imagegen.Service, recorder *audit.Recorder) *App {
	return &App{
		Config:    cfg,
		Logger:    logger,
		Auth:      authStore,
		Sessions:  sessions,
		Generator: generator,
		Audit:     recorder,
	}
}

func (a *App) json(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func (a *App) render(w http.ResponseWriter, code int, name string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(code)
	if err := pageTemplates.ExecuteTemplate(w, name, data); err != nil {
		a.Logger.Error().Err(err).Str("template", name).Msg("render template failed")
	}
}

func redirectHome(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
