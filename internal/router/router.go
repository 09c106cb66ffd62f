// Package router sets up the HTTP routes and middleware chains of the
// site. Pages, the JSON API and the admin API are separate groups with
// their own middleware stacks.
package router

import (
	"io/fs"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/cors"

	"github.com/yunusgulbuz/gizlimesaj-sub002/internal/apperr"
	"github.com/yunusgulbuz/gizlimesaj-sub002/internal/handlers"
	"github.com/yunusgulbuz/gizlimesaj-sub002/internal/middleware"
	"github.com/yunusgulbuz/gizlimesaj-sub002/internal/respond"
	"github.com/yunusgulbuz/gizlimesaj-sub002/internal/session"
	"github.com/yunusgulbuz/gizlimesaj-sub002/web"
)

// CallbackPath is where PayTR posts payment results. It is exempt from
// CSRF checks.
const CallbackPath = "/api/payments/callback"

// Deps is everything the router mounts.
type Deps struct {
	Logger         *slog.Logger
	Sessions       *session.Store
	SecureCookies  bool
	AllowedOrigins []string
	// APILimiter and PageLimiter throttle per client IP. Either may be nil.
	APILimiter  *middleware.RateLimiter
	PageLimiter *middleware.RateLimiter

	Public    *handlers.Public
	Templates *handlers.Templates
	Orders    *handlers.Orders
	Credits   *handlers.Credits
	Feedback  *handlers.Feedback
	AI        *handlers.AITemplates
	Email     *handlers.Email
	Auth      *handlers.Auth
	Admin     *handlers.Admin
}

// New creates the chi router with all middleware and route groups wired up.
func New(d Deps) chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger(d.Logger))
	r.Use(middleware.SecureHeaders)
	r.Use(middleware.CSRF(d.SecureCookies, CallbackPath))
	r.Use(middleware.LoadSession(d.Sessions))

	r.Get("/health", healthHandler)

	static, err := fs.Sub(web.StaticFS, "static")
	if err == nil {
		r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(static))))
	}

	r.Group(func(r chi.Router) {
		if d.PageLimiter != nil {
			r.Use(d.PageLimiter.Middleware)
		}

		r.Get("/", d.Templates.List)
		r.Get("/templates", d.Templates.List)
		r.Get("/templates/{slug}/preview", d.Templates.Preview)
		r.Get("/templates/{slug}/edit", d.Templates.Edit)

		r.Get("/giris", d.Auth.LoginPage)
		r.Post("/giris", d.Auth.LoginSubmit)
		r.Post("/cikis", d.Auth.Logout)

		r.Route("/m/{shortId}", func(r chi.Router) {
			r.Get("/", d.Public.View)
			r.Get("/status", d.Public.Status)
			r.Get("/qr.png", d.Public.QR)
		})

		r.Get("/payment/result", d.Orders.PaymentResult)
		r.Get("/payment/{orderId}", d.Orders.PaymentPage)

		r.Get("/credits/checkout", d.Credits.CheckoutPage)
		r.Post("/credits/checkout", d.Credits.CheckoutSubmit)
	})

	r.Route("/api", func(r chi.Router) {
		r.Use(corsHandler(d.AllowedOrigins))
		if d.APILimiter != nil {
			r.Use(d.APILimiter.Middleware)
		}
		r.NotFound(apiNotFound)

		r.Post("/payments/callback", d.Orders.Callback)
		r.Post("/orders", d.Orders.Create)
		r.Put("/drafts/{draftId}/fields", d.Templates.SaveFields)

		r.Get("/personal-pages/{shortId}", d.Public.PageJSON)
		r.With(middleware.RequireAPIAuth).Put("/personal-pages/{shortId}/share-preview", d.Public.SharePreview)
		r.With(middleware.RequireAPIAuth).Put("/personal-pages/{shortId}/fields", d.Public.UpdateFields)

		r.Get("/credits/packages", d.Credits.Packages)
		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAPIAuth)
			r.Get("/credits", d.Credits.Balance)
			r.Get("/credits/transactions", d.Credits.Transactions)
		})

		r.Route("/templates/{id}", func(r chi.Router) {
			r.Get("/comments", d.Feedback.ListComments)
			r.Get("/ratings", d.Feedback.Ratings)

			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireAPIAuth)
				r.Post("/comments", d.Feedback.CreateComment)
				r.Put("/comments/{commentId}", d.Feedback.UpdateComment)
				r.Delete("/comments/{commentId}", d.Feedback.DeleteComment)
				r.Post("/comments/{commentId}/like", d.Feedback.Like)
				r.Delete("/comments/{commentId}/like", d.Feedback.Unlike)
				r.Post("/ratings", d.Feedback.Rate)
				r.Delete("/ratings", d.Feedback.Unrate)
			})
		})

		r.Route("/ai-templates", func(r chi.Router) {
			r.Use(middleware.RequireAPIAuth)
			r.Get("/", d.AI.List)
			r.Post("/generate", d.AI.Generate)
			r.Post("/refine", d.AI.Refine)
			r.Delete("/{id}", d.AI.Delete)
		})

		r.With(middleware.RequireAPIAuth).Post("/send-email", d.Email.Send)

		r.Route("/admin", func(r chi.Router) {
			r.Use(middleware.RequireAPIAuth)
			r.Use(middleware.RequireAdmin)
			r.Get("/status", d.Admin.Status)
			r.Post("/templates/sync", d.Admin.SyncTemplates)
			r.Delete("/previews", d.Admin.InvalidatePreviews)
			r.Delete("/previews/{slug}", d.Admin.InvalidatePreviews)
			r.Put("/credit-packages/{id}", d.Admin.UpsertPackage)
			r.Post("/pages/expire", d.Admin.ExpirePages)
		})
	})

	return r
}

// corsHandler allows the configured origins to call the JSON API with
// cookies. With no origins configured only same-origin calls work.
func corsHandler(origins []string) func(http.Handler) http.Handler {
	return cors.New(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Content-Type", middleware.CSRFHeaderName},
		AllowCredentials: true,
		MaxAge:           600,
	}).Handler
}

func apiNotFound(w http.ResponseWriter, r *http.Request) {
	respond.Error(w, r, apperr.NotFound("Endpoint"))
}

// healthHandler returns a simple JSON health check response.
func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
