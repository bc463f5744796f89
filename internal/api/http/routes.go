package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Options wires the router's dependencies.
type Options struct {
	Tracker  TrackerServiceI
	Accounts AccountServiceI
	Verifier TokenVerifier

	// Limiter guards the sign-in and sign-up routes; nil disables limiting.
	Limiter     Limiter
	LoginLimit  int
	LoginWindow time.Duration

	Locale string
	Logger *slog.Logger
}

// NewRouter creates a new HTTP router with configured routes, middleware, and handlers.
// It sets up auth, application, calendar and status routes, health check, and
// Prometheus metrics endpoint.
func NewRouter(opts Options) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)
	r.Use(ContentLanguage(opts.Locale))

	h := NewHandler(opts.Tracker, opts.Accounts, opts.Logger)
	requireAuth := Authenticate(opts.Verifier)
	loginLimit := RateLimit(opts.Limiter, func(r *http.Request) string {
		return "login:" + ClientIP(r)
	}, opts.LoginLimit, opts.LoginWindow)

	r.Route("/auth", func(r chi.Router) {
		r.With(loginLimit).Post("/sign-in", h.SignIn)
		r.With(loginLimit).Post("/sign-up", h.SignUp)

		r.Group(func(r chi.Router) {
			r.Use(requireAuth)
			r.Post("/sign-out", h.SignOut)
			r.Post("/password", h.ChangePassword)
		})
	})

	r.Group(func(r chi.Router) {
		r.Use(requireAuth)
		r.Get("/me", h.Profile)
		r.Get("/me/overview", h.Overview)
		r.Get("/applications", h.ListApplications)
		r.Get("/applications/{applicationID}", h.GetApplication)
		r.Get("/calendar", h.Calendar)
	})

	r.Route("/statuses", func(r chi.Router) {
		r.Get("/", ListStatuses)
		r.Get("/{status}", GetStatus)
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Handle("/metrics", promhttp.Handler())

	return r
}
