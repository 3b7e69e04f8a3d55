package handlers

import (
	"net/http"

	"sketchstudio/internal/audit"
	"sketchstudio/internal/middleware"
)

// Login validates the submitted credentials against the credential store. A
// failed attempt re-renders the login view and leaves the session untouched;
// there is no lockout or attempt counting.
func (a *App) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		a.renderLogin(w, r, copyFor(middleware.LocaleFromContext(r.Context()))["login_failed"])
		return
	}
	username := r.PostFormValue("username")
	password := r.PostFormValue("password")
	token := middleware.SessionTokenFromContext(r.Context())

	resolved, ok := a.Auth.Authenticate(username, password)
	if !ok {
		a.Logger.Debug().Str("username", username).Msg("login rejected")
		a.Audit.Record(r.Context(), audit.Event{Kind: audit.KindLogin, Username: username, SessionID: token, Success: false})
		a.renderLogin(w, r, copyFor(middleware.LocaleFromContext(r.Context()))["login_failed"])
		return
	}

	if !a.Sessions.Login(token, resolved) {
		redirectHome(w, r)
		return
	}
	a.Logger.Info().Str("username", resolved).Msg("login ok")
	a.Audit.Record(r.Context(), audit.Event{Kind: audit.KindLogin, Username: resolved, SessionID: token, Success: true})
	redirectHome(w, r)
}

// Logout clears the auth fields only; accumulated results stay with the
// session until it expires.
func (a *App) Logout(w http.ResponseWriter, r *http.Request) {
	token := middleware.SessionTokenFromContext(r.Context())
	view, _ := a.Sessions.Snapshot(token)
	a.Sessions.Logout(token)
	a.Audit.Record(r.Context(), audit.Event{Kind: audit.KindLogout, Username: view.Username, SessionID: token, Success: true})
	redirectHome(w, r)
}
