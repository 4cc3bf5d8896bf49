// @title GiftLink Backend API
// @version 1.0
// @description GiftLink Backend API for gifting household items a second life
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.url http://www.swagger.io/support
// @contact.email support@swagger.io

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:3060
// @BasePath /
// @schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/cors"
	"go.uber.org/zap"

	_ "github.com/giftlink/giftlink-backend/docs" // This is required for swagger
	"github.com/giftlink/giftlink-backend/internal/config"
	"github.com/giftlink/giftlink-backend/internal/db"
	"github.com/giftlink/giftlink-backend/internal/handlers"
	"github.com/giftlink/giftlink-backend/internal/middleware"
	"github.com/giftlink/giftlink-backend/internal/repository"
	"github.com/giftlink/giftlink-backend/internal/routes"
	"github.com/giftlink/giftlink-backend/internal/service"
	"github.com/giftlink/giftlink-backend/internal/token"
	"github.com/giftlink/giftlink-backend/internal/utils"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer logger.Sync()

	// Connect and ping once at boot; handlers receive the live database.
	database, err := db.Connect(context.Background(), cfg.Mongo)
	if err != nil {
		logger.Fatal("connect to mongo", zap.Error(err))
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		if err := database.Client().Disconnect(ctx); err != nil {
			logger.Warn("mongo disconnect", zap.Error(err))
		}
	}()

	userRepo := repository.NewUserRepository(database)
	giftRepo := repository.NewGiftRepository(database)
	resetRepo := repository.NewResetRepository(database)

	issuer := token.NewIssuer(cfg.JWT.Secret, cfg.JWT.AccessTokenTTL, cfg.JWT.ResetTokenTTL)

	var mailer service.ResetMailer
	if cfg.IsEmailConfigured() {
		mailer = utils.NewEmailService(cfg.Email)
	}

	authService := service.NewAuthService(userRepo, issuer, logger)
	giftService := service.NewGiftService(giftRepo)
	resetService := service.NewPasswordResetService(userRepo, resetRepo, issuer, mailer, logger)

	authHandler := handlers.NewAuthHandler(authService)
	giftHandler := handlers.NewGiftHandler(giftService)
	searchHandler := handlers.NewSearchHandler(giftService)
	googleHandler := handlers.NewGoogleAuthHandler(authService, cfg)
	forgotHandler := handlers.NewForgotPasswordHandler(resetService)
	healthHandler := handlers.NewHealthHandler(database)

	// Setup all routes
	routes.SetupRoutes(authHandler, giftHandler, searchHandler, googleHandler, forgotHandler, healthHandler, issuer)

	// Setup CORS
	c := cors.New(cors.Options{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowedMethods:   cfg.CORS.AllowedMethods,
		AllowedHeaders:   cfg.CORS.AllowedHeaders,
		AllowCredentials: cfg.CORS.AllowCredentials,
	})

	// Wrap the default mux with request logging and CORS
	handler := c.Handler(middleware.RequestLogger(logger, http.DefaultServeMux))

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		logger.Info("HTTP server listening", zap.String("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("listen and serve", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown", zap.Error(err))
	}
	logger.Info("server stopped")
}
