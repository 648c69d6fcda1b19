package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"github.com/crediario/crediario-api/internal/config"
	"github.com/crediario/crediario-api/internal/domain/access"
	"github.com/crediario/crediario-api/internal/domain/auth"
	"github.com/crediario/crediario-api/internal/domain/client"
	"github.com/crediario/crediario-api/internal/domain/dashboard"
	"github.com/crediario/crediario-api/internal/domain/ledger"
	"github.com/crediario/crediario-api/internal/domain/merchant"
	"github.com/crediario/crediario-api/internal/domain/user"
	"github.com/crediario/crediario-api/internal/middleware"
	"github.com/crediario/crediario-api/internal/pkg/jwt"
	"github.com/crediario/crediario-api/internal/pkg/logger"
	pkgresponse "github.com/crediario/crediario-api/internal/pkg/response"
)

func main() {
	cfg := config.Load()
	logger.Init(logger.Config{Level: cfg.LogLevel, Environment: cfg.Env})

	log.Info().
		Str("env", cfg.Env).
		Str("port", cfg.Port).
		Msg("Starting Crediário API")

	jwtService := jwt.NewService(cfg.JWTSecret, cfg.JWTAccessTTL)

	// ---------- Repositories ----------
	userRepo := user.NewRepository()
	merchantRepo := merchant.NewRepository()
	clientRepo := client.NewRepository()
	recordRepo := ledger.NewRepository()

	seeder := config.NewSeeder(cfg, userRepo, merchantRepo, clientRepo, recordRepo)
	if err := seeder.Run(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to seed demo data")
	}

	// ---------- Services ----------
	authService := auth.NewService(userRepo, jwtService)
	merchantService := merchant.NewService(merchantRepo)
	clientService := client.NewService(clientRepo)
	ledgerService := ledger.NewService(recordRepo, clientRepo)
	dashboardService := dashboard.NewService(merchantRepo, clientRepo)

	sweeper := ledger.NewSweeper(ledgerService, cfg.OverdueSweepSpec)
	if err := sweeper.Start(); err != nil {
		log.Fatal().Err(err).Msg("Failed to start overdue sweeper")
	}
	defer sweeper.Stop()

	// ---------- Handlers ----------
	authHandler := auth.NewHandler(authService)
	accessHandler := access.NewHandler(userRepo)
	merchantHandler := merchant.NewHandler(merchantService)
	clientHandler := client.NewHandler(clientService)
	ledgerHandler := ledger.NewHandler(ledgerService, clientService)
	dashboardHandler := dashboard.NewHandler(dashboardService)

	authMiddleware := middleware.Auth(jwtService)

	// ---------- Router ----------
	r := chi.NewRouter()

	r.Use(chimw.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recover)
	r.Use(middleware.CORSHandler(cfg.AllowedOrigins))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		pkgresponse.OK(w, map[string]string{
			"status":  "ok",
			"version": "1.0.0",
		})
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Mount("/auth", authHandler.Routes(authMiddleware))
		r.Mount("/access", accessHandler.Routes(authMiddleware))
		r.Mount("/merchants", merchantHandler.Routes(authMiddleware))
		r.Mount("/clients", clientHandler.Routes(authMiddleware))
		r.Mount("/pos", ledgerHandler.Routes(authMiddleware))
		r.Mount("/dashboard", dashboardHandler.Routes(authMiddleware))
	})

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info().Str("addr", server.Addr).Msg("HTTP server listening")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited properly")
}
