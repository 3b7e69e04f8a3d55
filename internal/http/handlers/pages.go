package handlers

import (
	"net/http"

	"sketchstudio/internal/middleware"
	"sketchstudio/internal/session"
)

// Home renders the single page: the login form while unauthenticated, the
// studio form plus the result gallery afterwards.
func (a *App) Home(w http.ResponseWriter, r *http.Request) {
	view, ok := a.currentSession(r)
	if !ok {
		redirectHome(w, r)
		return
	}
	if !view.Authenticated {
		a.renderLogin(w, r, "")
		return
	}
	a.renderStudio(w, r, view, "")
}

func (a *App) renderLogin(w http.ResponseWriter, r *http.Request, errMsg string) {
	locale := middleware.LocaleFromContext(r.Context())
	a.render(w, http.StatusOK, "login.html", loginData{
		Lang:  locale,
		T:     copyFor(locale),
		Error: errMsg,
	})
}

func (a *App) renderStudio(w http.ResponseWriter, r *http.Request, view session.View, errMsg string) {
	locale := middleware.LocaleFromContext(r.Context())
	a.render(w, http.StatusOK, "studio.html", studioData{
		Lang:     locale,
		T:        copyFor(locale),
		Username: view.Username,
		Error:    errMsg,
		Results:  galleryItems(view.Results),
	})
}

// currentSession resolves the request's session snapshot. The session
// middleware guarantees a live token, so a miss only happens when the session
// expired mid-flight.
func (a *App) currentSession(r *http.Request) (session.View, bool) {
	token := middleware.SessionTokenFromContext(r.Context())
	if token == "" {
		return session.View{}, false
	}
	return a.Sessions.Snapshot(token)
}
