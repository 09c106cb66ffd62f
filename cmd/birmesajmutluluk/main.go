// Package main is the entry point for the birmesajmutluluk server.
// It loads configuration, connects to services, sets up routing, and starts
// the HTTP server with graceful shutdown support.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/yunusgulbuz/gizlimesaj-sub002/internal/ai"
	"github.com/yunusgulbuz/gizlimesaj-sub002/internal/aitemplate"
	"github.com/yunusgulbuz/gizlimesaj-sub002/internal/cache"
	"github.com/yunusgulbuz/gizlimesaj-sub002/internal/catalog"
	"github.com/yunusgulbuz/gizlimesaj-sub002/internal/checkout"
	"github.com/yunusgulbuz/gizlimesaj-sub002/internal/config"
	"github.com/yunusgulbuz/gizlimesaj-sub002/internal/database"
	"github.com/yunusgulbuz/gizlimesaj-sub002/internal/email"
	"github.com/yunusgulbuz/gizlimesaj-sub002/internal/engine"
	"github.com/yunusgulbuz/gizlimesaj-sub002/internal/feedback"
	"github.com/yunusgulbuz/gizlimesaj-sub002/internal/handlers"
	"github.com/yunusgulbuz/gizlimesaj-sub002/internal/middleware"
	"github.com/yunusgulbuz/gizlimesaj-sub002/internal/payment"
	"github.com/yunusgulbuz/gizlimesaj-sub002/internal/render"
	"github.com/yunusgulbuz/gizlimesaj-sub002/internal/router"
	"github.com/yunusgulbuz/gizlimesaj-sub002/internal/session"
	"github.com/yunusgulbuz/gizlimesaj-sub002/internal/storage"
	"github.com/yunusgulbuz/gizlimesaj-sub002/internal/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	// JSON logs in production, readable text while developing.
	var handler slog.Handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug})
	if !cfg.IsDev() {
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})
	}
	logger := slog.New(handler)
	slog.SetDefault(logger)

	slog.Info("configuration loaded", "env", cfg.Env, "addr", cfg.Addr(), "site", cfg.SiteURL)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := database.Connect(cfg.DSN())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	cat, err := catalog.Load()
	if err != nil {
		slog.Error("failed to load template catalog", "error", err)
		os.Exit(1)
	}

	// Catalog rows and credit packages are upserted on every start.
	if err := database.Seed(ctx, db, cat, database.Admin{Email: cfg.AdminEmail, Password: cfg.AdminPassword}); err != nil {
		slog.Error("failed to seed database", "error", err)
		os.Exit(1)
	}

	valkeyClient, err := cache.ConnectValkey(ctx, cfg.ValkeyHost, cfg.ValkeyPort, cfg.ValkeyPassword, cfg.ValkeyDB)
	if err != nil {
		slog.Error("failed to connect to valkey", "error", err)
		os.Exit(1)
	}
	defer valkeyClient.Close()

	secureCookies := !cfg.IsDev()
	sessionStore := session.NewStore(valkeyClient, secureCookies)
	drafts := cache.NewDrafts(valkeyClient)
	previews := cache.NewPreviewCache(valkeyClient, cfg.PreviewTTL)

	renderer, err := render.New(cfg.SiteURL, cfg.IsDev())
	if err != nil {
		slog.Error("failed to initialize template renderer", "error", err)
		os.Exit(1)
	}

	userStore := store.NewUserStore(db)
	templateStore := store.NewTemplateStore(db)
	pageStore := store.NewPersonalPageStore(db)
	orderStore := store.NewOrderStore(db)
	creditStore := store.NewCreditStore(db)
	aiTemplateStore := store.NewAITemplateStore(db)
	commentStore := store.NewCommentStore(db)
	ratingStore := store.NewRatingStore(db)

	// Share images need object storage. Without it the share endpoint
	// answers 503 and everything else keeps working.
	var objects handlers.ObjectStore
	storageClient, err := storage.New(storage.Config{
		Endpoint:  cfg.S3Endpoint,
		Region:    cfg.S3Region,
		AccessKey: cfg.S3AccessKey,
		SecretKey: cfg.S3SecretKey,
		Bucket:    cfg.S3Bucket,
		PublicURL: cfg.S3PublicURL,
	})
	switch {
	case err != nil:
		slog.Error("failed to initialize S3 storage", "error", err)
		os.Exit(1)
	case storageClient != nil:
		objects = storageClient
		slog.Info("s3 storage connected", "endpoint", cfg.S3Endpoint, "bucket", cfg.S3Bucket)
	default:
		slog.Warn("s3 storage not configured, share images disabled")
	}

	aiRegistry := ai.NewRegistry(cfg.AIProvider, map[string]ai.ProviderConfig{
		"openai":  {APIKey: cfg.OpenAIKey, Model: cfg.OpenAIModel, BaseURL: cfg.OpenAIBaseURL},
		"gemini":  {APIKey: cfg.GeminiKey, Model: cfg.GeminiModel, BaseURL: cfg.GeminiBaseURL},
		"claude":  {APIKey: cfg.ClaudeKey, Model: cfg.ClaudeModel, BaseURL: cfg.ClaudeBaseURL},
		"mistral": {APIKey: cfg.MistralKey, Model: cfg.MistralModel, BaseURL: cfg.MistralBaseURL},
	})
	slog.Info("ai providers initialized",
		"active", cfg.AIProvider,
		"ready", aiRegistry.Ready(),
		"available", aiRegistry.Available(),
		"moderation", aiRegistry.CanModerate(),
	)

	mailer := email.New(email.Config{
		APIKey:  cfg.ResendAPIKey,
		From:    cfg.EmailFrom,
		ReplyTo: cfg.EmailReplyTo,
		SiteURL: cfg.SiteURL,
	}, logger)
	if !mailer.Configured() {
		slog.Warn("resend not configured, emails are skipped")
	}

	paytr := payment.NewClient(payment.Config{
		MerchantID:   cfg.PayTRMerchantID,
		MerchantKey:  cfg.PayTRMerchantKey,
		MerchantSalt: cfg.PayTRMerchantSalt,
		OkURL:        cfg.URL("/payment/result"),
		FailURL:      cfg.URL("/payment/result"),
		TestMode:     cfg.PayTRTestMode,
		Currency:     "TL",
		Language:     "tr",
	})
	if !paytr.Configured() {
		slog.Warn("paytr not configured, orders stay pending")
	}
	processor := payment.NewProcessor(paytr, orderStore, pageStore, creditStore, templateStore, mailer, cfg.SiteURL)

	eng := engine.New()
	aiService := aitemplate.NewService(aiRegistry, creditStore, aiTemplateStore, eng)
	feedbackService := feedback.NewService(commentStore, ratingStore, templateStore, aiRegistry)
	creditCheckout := checkout.NewService(orderStore)

	var apiLimiter, pageLimiter *middleware.RateLimiter
	if cfg.APIRateLimit > 0 {
		apiLimiter = middleware.NewRateLimiter(cfg.APIRateLimit, time.Minute)
		defer apiLimiter.Stop()
	}
	if cfg.PageRateLimit > 0 {
		pageLimiter = middleware.NewRateLimiter(cfg.PageRateLimit, time.Minute)
		defer pageLimiter.Stop()
	}

	public := handlers.NewPublic(renderer, cat, pageStore, orderStore, templateStore, aiTemplateStore, eng, objects, cfg.SiteURL)

	r := router.New(router.Deps{
		Logger:         logger,
		Sessions:       sessionStore,
		SecureCookies:  secureCookies,
		AllowedOrigins: cfg.CORSAllowedOrigins,
		APILimiter:     apiLimiter,
		PageLimiter:    pageLimiter,

		Public:    public,
		Templates: handlers.NewTemplates(renderer, cat, previews, drafts),
		Orders:    handlers.NewOrders(renderer, cat, orderStore, templateStore, drafts, paytr, processor),
		Credits:   handlers.NewCredits(renderer, creditStore, creditCheckout),
		Feedback:  handlers.NewFeedback(feedbackService),
		AI:        handlers.NewAITemplates(aiService, aiTemplateStore),
		Email:     handlers.NewEmail(mailer),
		Auth:      handlers.NewAuth(renderer, sessionStore, userStore),
		Admin: handlers.NewAdmin(handlers.AdminDeps{
			Catalog:   cat,
			Templates: templateStore,
			Previews:  previews,
			Packages:  creditStore,
			Pages:     pageStore,
			Users:     userStore,
			AI:        aiRegistry,
		}),
	})

	// WriteTimeout must cover AI generation, which can take up to a minute.
	// The status stream clears its own deadline through http.ResponseController.
	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 90 * time.Second,
		IdleTimeout:  120 * time.Second,
	}
	// Shutdown waits for handlers but never cancels them; close the
	// long-lived status streams so it can finish.
	srv.RegisterOnShutdown(public.CloseStreams)

	go housekeeping(ctx, pageStore, cfg.HousekeepingInterval)

	go func() {
		slog.Info("server starting", "addr", cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	slog.Info("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped gracefully")
}

// housekeeping flags pages whose expiry passed without anyone viewing them.
func housekeeping(ctx context.Context, pages handlers.PageExpirer, every time.Duration) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			n, err := pages.DeactivateExpired(ctx)
			if err != nil {
				slog.Error("deactivate expired pages", "error", err)
				continue
			}
			if n > 0 {
				slog.Info("expired pages deactivated", "count", n)
			}
		}
	}
}
