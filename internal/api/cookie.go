package api

import (
	"net/http"
	"time"

	"github.com/novalis-io/identity/internal/auth"
)

const sessionCookieName = "token"

// setSessionCookie delivers the session token to the browser. HttpOnly keeps
// it away from page scripts, SameSite=Strict blocks cross-site sends, and
// Secure is set in production where traffic is HTTPS.
func (api *Api) setSessionCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(auth.SessionDuration.Seconds()),
		HttpOnly: true,
		Secure:   api.Config.IsProduction(),
		SameSite: http.SameSiteStrictMode,
	})
}

func (api *Api) clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   api.Config.IsProduction(),
		SameSite: http.SameSiteStrictMode,
	})
}
