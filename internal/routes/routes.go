package routes

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/giftlink/giftlink-backend/internal/handlers"
	"github.com/giftlink/giftlink-backend/internal/middleware"
	"github.com/giftlink/giftlink-backend/internal/token"
)

// SetupRoutes configures all application routes
func SetupRoutes(
	authHandler *handlers.AuthHandler,
	giftHandler *handlers.GiftHandler,
	searchHandler *handlers.SearchHandler,
	googleHandler *handlers.GoogleAuthHandler,
	forgotHandler *handlers.ForgotPasswordHandler,
	healthHandler *handlers.HealthHandler,
	issuer *token.Issuer,
) {
	// Health check routes
	http.HandleFunc("/healthz", healthHandler.HealthCheck)
	http.HandleFunc("/livez", healthHandler.LivenessCheck)
	http.HandleFunc("/readyz", healthHandler.ReadinessCheck)

	// Authentication routes
	http.HandleFunc("/api/auth/register", authHandler.Register)
	http.HandleFunc("/api/auth/login", authHandler.Login)
	http.HandleFunc("/api/auth/update", middleware.AuthMiddleware(authHandler.Update, issuer))

	// Google OAuth routes
	http.HandleFunc("/api/auth/google/login", googleHandler.GoogleLogin)
	http.HandleFunc("/api/auth/google/callback", googleHandler.GoogleCallback)

	// Password recovery routes
	http.HandleFunc("/api/auth/forgot-password", forgotHandler.ForgotPassword)
	http.HandleFunc("/api/auth/verify-otp", forgotHandler.VerifyOTP)
	http.HandleFunc("/api/auth/reset-password", forgotHandler.ResetPassword)

	// Gift routes
	http.HandleFunc("/api/gifts", giftHandler.Gifts)
	http.HandleFunc("/api/gifts/{id}", giftHandler.GetByID)

	// Search route
	http.HandleFunc("/api/search", searchHandler.Search)

	// Swagger documentation
	http.HandleFunc("/swagger/", httpSwagger.WrapHandler)

	// Root route
	http.HandleFunc("/", rootHandler)
}

func rootHandler(w http.ResponseWriter, r *http.Request) {
	w.Write([]byte("GiftLink backend is running."))
}
