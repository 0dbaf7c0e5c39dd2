package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/subtrack-notify/internal/application/notification"
	"github.com/subtrack-notify/internal/application/reminder"
	"github.com/subtrack-notify/internal/application/settings"
	"github.com/subtrack-notify/internal/application/subscription"
	"github.com/subtrack-notify/internal/application/verification"
	"github.com/subtrack-notify/internal/config"
	"github.com/subtrack-notify/internal/domain"
	"github.com/subtrack-notify/internal/infrastructure/dynamo"
	jwtinfra "github.com/subtrack-notify/internal/infrastructure/jwt"
	"github.com/subtrack-notify/internal/infrastructure/sns"
	"github.com/subtrack-notify/internal/infrastructure/whatsapp"
	"github.com/subtrack-notify/internal/transport/http/handler"
	appmiddleware "github.com/subtrack-notify/internal/transport/http/middleware"
	"golang.org/x/time/rate"
)

// Deps holds all infrastructure dependencies for the router.
type Deps struct {
	VerificationRepo *dynamo.VerificationRepo
	SettingsRepo     *dynamo.SettingsRepo
	SubscriptionRepo *dynamo.SubscriptionRepo
	NotificationRepo *dynamo.NotificationRepo
	WhatsAppSender   whatsapp.Sender
	SMSSender        sns.SMSSender
	JWTProvider      *jwtinfra.Provider
}

// NewRouter builds and returns the application router.
func NewRouter(cfg *config.Config, deps *Deps) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.RequestID)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	var authMw func(http.Handler) http.Handler
	if deps.JWTProvider != nil {
		authMw = appmiddleware.Auth(deps.JWTProvider)
	} else {
		authMw = func(next http.Handler) http.Handler { return next }
	}

	// 5 requests/second, burst of 10 — applied to sensitive public endpoints.
	sensitiveRL := appmiddleware.NewRateLimiter(rate.Limit(5), 10)

	verificationSvc := verification.NewService(deps.VerificationRepo, deps.SettingsRepo, deps.WhatsAppSender, deps.SMSSender)
	settingsSvc := settings.NewService(deps.SettingsRepo)
	subscriptionSvc := subscription.NewService(deps.SubscriptionRepo)
	notificationSvc := notification.NewService(deps.NotificationRepo)
	reminderSvc := reminder.NewService(deps.SettingsRepo, deps.SubscriptionRepo, deps.NotificationRepo, deps.WhatsAppSender, cfg.SendDelay)

	healthH := handler.NewHealthHandler()
	verificationH := handler.NewVerificationHandler(verificationSvc)
	settingsH := handler.NewSettingsHandler(settingsSvc)
	subscriptionH := handler.NewSubscriptionHandler(subscriptionSvc)
	notificationH := handler.NewNotificationHandler(notificationSvc)
	reminderH := handler.NewReminderHandler(reminderSvc)

	r.Route("/v1", func(r chi.Router) {
		// ── Public routes (no auth) ──────────────────────────────────────────
		r.Get("/health-check/{action}", healthH.Ping)
		r.Post("/health-check/{action}", healthH.Ping)
		r.With(sensitiveRL.Limit).Post("/verification/check", verificationH.CheckCode)
		r.With(sensitiveRL.Limit).Post("/reminders/dispatch", reminderH.Dispatch)

		// ── Authenticated routes ─────────────────────────────────────────────
		r.Group(func(r chi.Router) {
			r.Use(authMw)

			r.Post("/verification/request", verificationH.RequestCode)
			r.Get("/settings", settingsH.Get)
			r.Put("/settings", settingsH.Update)
			r.Get("/subscriptions", subscriptionH.List)
			r.Get("/notifications", notificationH.List)

			// Admin-only routes
			r.Group(func(r chi.Router) {
				r.Use(appmiddleware.RequireRole(domain.RoleAdmin))

				r.Get("/notifications/all", notificationH.ListAll)
			})
		})
	})

	return r
}
