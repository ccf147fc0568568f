package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	authDomain "budget/internal/auth"
	authHandler "budget/internal/http/auth"
	txHandler "budget/internal/http/transaction"
)

func New(
	sessions *authDomain.Manager,
	authH *authHandler.Handler,
	transactionsH *txHandler.Handler,
	allowedOrigins []string,
) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost},
		AllowCredentials: true,
	}))

	router.Get("/", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/transactions/all", http.StatusSeeOther)
	})

	// Sign-up and sign-in must stay reachable without a session.
	router.Group(authH.PublicRoutes)

	// Everything else sits behind the session guard; NoCache makes sure
	// each request is re-checked against current session state.
	router.Group(func(r chi.Router) {
		r.Use(middleware.NoCache)
		r.Use(RequireSession(sessions))

		authH.GuardedRoutes(r)

		r.Route("/transactions", transactionsH.Routes)
	})

	return router
}
