package httpapi

import (
	stdhttp "net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"sketchstudio/internal/http/handlers"
	"sketchstudio/internal/middleware"
)

// NewRouter wires the single-page surface: login gate, generation form,
// result gallery and downloads.
func NewRouter(app *handlers.App, lookup middleware.CountryLookup) stdhttp.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID, chimw.RealIP, chimw.Recoverer)
	r.Use(middleware.Logger(app.Logger))

	r.Get("/healthz", app.Health)

	r.Group(func(r chi.Router) {
		r.Use(middleware.Locale(app.Config.DefaultLocale, lookup))
		r.Use(middleware.Sessions(app.Sessions))

		r.Get("/", app.Home)
		r.Post("/login", app.Login)
		r.Post("/logout", app.Logout)
		r.With(middleware.RateLimit(app.Config.RateLimitPerMin, time.Minute)).
			Post("/generate", app.Generate)
		r.Get("/results/{index}/download", app.Download)
		r.Get("/results/archive", app.Archive)
	})

	return r
}
