// Package router sets up all HTTP routes and middleware chains for the
// blog. Routes are organized into the public reader and the session-gated
// admin panel.
package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"halkapress/internal/handlers"
	"halkapress/internal/middleware"
	"halkapress/internal/models"
	"halkapress/internal/session"
	"halkapress/web"
)

// New creates and returns the configured chi router with all middleware
// and route groups wired up. csrfSecure marks the CSRF cookie HTTPS-only.
func New(sessionStore *session.Store, admin *handlers.Admin, auth *handlers.Auth, public *handlers.Public, csrfSecure bool) chi.Router {
	r := chi.NewRouter()

	// Global middleware — applied to every request.
	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)
	r.Use(middleware.LoadSession(sessionStore))

	// Health check — no auth, no CSRF.
	r.Get("/health", healthHandler)

	// Embedded static assets.
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(web.Static()))))

	// The bare domain has exactly one meaning: the default-language listing.
	r.Get("/", redirectToDefaultLanguage)

	// Admin routes — CSRF protection on the whole group.
	r.Route("/admin", func(r chi.Router) {
		r.Use(middleware.NewCSRF(csrfSecure))

		// Login doubles as the admin landing page.
		r.Get("/", auth.LoginPage)
		r.Post("/", auth.LoginSubmit)
		r.Post("/logout", auth.Logout)

		// 2FA — requires auth but NOT a completed second factor.
		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAuth)
			r.Get("/2fa/setup", auth.TwoFASetupPage)
			r.Post("/2fa/setup", auth.TwoFASetupSubmit)
			r.Get("/2fa/verify", auth.TwoFAVerifyPage)
			r.Post("/2fa/verify", auth.TwoFAVerifySubmit)
		})

		// Fully authenticated admin area.
		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAuth)
			r.Use(middleware.Require2FA)

			r.Get("/dashboard", admin.Dashboard)

			r.Route("/posts", func(r chi.Router) {
				r.Get("/new", admin.PostNew)
				r.Post("/new", admin.PostCreate)
				r.Get("/{id}", admin.PostEdit)
				r.Post("/{id}", admin.PostUpdate)
				r.Post("/{id}/delete", admin.PostDelete)
			})
		})
	})

	// Public reader.
	r.Get("/{lang}", public.ListPosts)
	r.Get("/{lang}/{slug}", public.PostDetail)

	return r
}

// redirectToDefaultLanguage sends the bare domain to the default-language
// listing. This is the only place that rule lives.
func redirectToDefaultLanguage(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/"+string(models.DefaultLanguage), http.StatusPermanentRedirect)
}

// healthHandler returns a simple JSON health check response.
func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}
