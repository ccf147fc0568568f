package auth

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"budget/internal/auth"
	"budget/internal/forms"
	"budget/internal/http/render"
	"budget/internal/user"
)

type Handler struct {
	users    *user.Service
	sessions *auth.Manager
	renderer *render.Renderer
}

func NewHandler(users *user.Service, sessions *auth.Manager, renderer *render.Renderer) *Handler {
	return &Handler{users: users, sessions: sessions, renderer: renderer}
}

// PublicRoutes registers the routes that must stay reachable without a
// session.
func (h *Handler) PublicRoutes(r chi.Router) {
	r.Get("/signup/", h.signUpForm)
	r.Post("/signup/", h.signUp)
	r.Get("/signin/", h.signInForm)
	r.Post("/signin/", h.signIn)
}

// GuardedRoutes registers the routes behind the session guard.
func (h *Handler) GuardedRoutes(r chi.Router) {
	r.Get("/signout/", h.signOut)
}

type signUpPage struct {
	render.Page
	Form   forms.Registration
	Errors forms.FieldErrors
}

func (h *Handler) signUpForm(w http.ResponseWriter, r *http.Request) {
	h.renderer.HTML(w, http.StatusOK, "signup.html", signUpPage{
		Page: render.NewPage(w, r, "Sign up"),
	})
}

func (h *Handler) signUp(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form data", http.StatusBadRequest)
		return
	}

	form, errs := forms.ParseRegistration(r.PostForm)
	if errs != nil {
		h.renderer.HTML(w, http.StatusUnprocessableEntity, "signup.html", signUpPage{
			Page:   render.NewPage(w, r, "Sign up"),
			Form:   form,
			Errors: errs,
		})

		return
	}

	_, err := h.users.Register(r.Context(), user.RegisterParams{
		Username: form.Username,
		Email:    form.Email,
		Password: form.Password,
	})
	if err != nil {
		if errors.Is(err, user.ErrUsernameTaken) {
			h.renderer.HTML(w, http.StatusUnprocessableEntity, "signup.html", signUpPage{
				Page:   render.NewPage(w, r, "Sign up"),
				Form:   form,
				Errors: forms.FieldErrors{"username": "username already taken"},
			})

			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	render.SetFlash(w, render.FlashSuccess, "account created, please sign in")
	http.Redirect(w, r, "/signin/", http.StatusSeeOther)
}

type signInPage struct {
	render.Page
	Form      forms.Login
	Errors    forms.FieldErrors
	AuthError string
}

func (h *Handler) signInForm(w http.ResponseWriter, r *http.Request) {
	h.renderer.HTML(w, http.StatusOK, "signin.html", signInPage{
		Page: render.NewPage(w, r, "Sign in"),
	})
}

func (h *Handler) signIn(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form data", http.StatusBadRequest)
		return
	}

	form, errs := forms.ParseLogin(r.PostForm)
	if errs != nil {
		h.renderer.HTML(w, http.StatusUnprocessableEntity, "signin.html", signInPage{
			Page:   render.NewPage(w, r, "Sign in"),
			Form:   form,
			Errors: errs,
		})

		return
	}

	u, err := h.users.Authenticate(r.Context(), form.Username, form.Password)
	if err != nil {
		if errors.Is(err, user.ErrInvalidCredentials) {
			// Same message for unknown username and wrong password.
			h.renderer.HTML(w, http.StatusUnauthorized, "signin.html", signInPage{
				Page:      render.NewPage(w, r, "Sign in"),
				Form:      form,
				AuthError: "invalid username or password",
			})

			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	token, err := h.sessions.Issue(u.ID, u.Username)
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	http.SetCookie(w, h.sessions.Cookie(token))
	http.Redirect(w, r, "/transactions/all", http.StatusSeeOther)
}

func (h *Handler) signOut(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, auth.ClearCookie())
	http.Redirect(w, r, "/signin/", http.StatusSeeOther)
}
