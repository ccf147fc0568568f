package http

import (
	"net/http"

	"budget/internal/auth"
	"budget/internal/http/render"
)

// RequireSession is the session guard. A request without a valid session
// cookie never reaches the wrapped handler: it gets an "invalid session"
// notice and a redirect to the sign-in page.
func RequireSession(sessions *auth.Manager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			c, err := r.Cookie(auth.SessionCookie)
			if err != nil {
				rejectSession(w, r)
				return
			}

			claims, err := sessions.Verify(c.Value)
			if err != nil {
				rejectSession(w, r)
				return
			}

			next.ServeHTTP(w, r.WithContext(auth.WithClaims(r.Context(), claims)))
		})
	}
}

func rejectSession(w http.ResponseWriter, r *http.Request) {
	render.SetFlash(w, render.FlashError, "invalid session")
	http.Redirect(w, r, "/signin/", http.StatusSeeOther)
}
