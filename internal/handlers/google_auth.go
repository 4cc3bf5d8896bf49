package handlers

import (
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	googleoauth2 "google.golang.org/api/oauth2/v2"
	"google.golang.org/api/option"

	"github.com/giftlink/giftlink-backend/internal/config"
	"github.com/giftlink/giftlink-backend/internal/dto"
	"github.com/giftlink/giftlink-backend/internal/service"
	"github.com/giftlink/giftlink-backend/internal/utils"
)

// GoogleAuthHandler handles Google OAuth sign-in
type GoogleAuthHandler struct {
	svc         service.AuthService
	oauthConfig *oauth2.Config
	frontendURL string
}

// NewGoogleAuthHandler creates a new GoogleAuthHandler instance
func NewGoogleAuthHandler(svc service.AuthService, cfg *config.Config) *GoogleAuthHandler {
	return &GoogleAuthHandler{
		svc: svc,
		oauthConfig: &oauth2.Config{
			ClientID:     cfg.GoogleOAuth.ClientID,
			ClientSecret: cfg.GoogleOAuth.ClientSecret,
			RedirectURL:  cfg.GoogleOAuth.RedirectURL,
			Scopes: []string{
				"https://www.googleapis.com/auth/userinfo.email",
				"https://www.googleapis.com/auth/userinfo.profile",
			},
			Endpoint: google.Endpoint,
		},
		frontendURL: cfg.GoogleOAuth.FrontendURL,
	}
}

// GoogleLogin starts the OAuth flow
// @Summary Start Google sign-in
// @Description Returns the Google consent URL and a state value for the client to follow
// @Tags authentication
// @Produce json
// @Success 200 {object} dto.GoogleLoginResponse "Authorization URL"
// @Router /api/auth/google/login [get]
func (h *GoogleAuthHandler) GoogleLogin(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	state := uuid.New().String()
	utils.WriteJSONResponse(w, http.StatusOK, dto.GoogleLoginResponse{
		AuthURL: h.oauthConfig.AuthCodeURL(state, oauth2.AccessTypeOffline),
		State:   state,
	})
}

// GoogleCallback completes the OAuth flow
// @Summary Google sign-in callback
// @Description Exchanges the authorization code, signs the user in and redirects to the frontend with a token
// @Tags authentication
// @Param code query string true "Authorization code"
// @Success 307 "Redirect to frontend"
// @Failure 400 {object} dto.ErrorResponse "Missing or invalid code"
// @Failure 401 {object} dto.ErrorResponse "Email not verified"
// @Router /api/auth/google/callback [get]
func (h *GoogleAuthHandler) GoogleCallback(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	code := r.URL.Query().Get("code")
	if code == "" {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Missing authorization code", "")
		return
	}

	tok, err := h.oauthConfig.Exchange(r.Context(), code)
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Failed to exchange authorization code", err.Error())
		return
	}

	oauthSvc, err := googleoauth2.NewService(r.Context(),
		option.WithTokenSource(h.oauthConfig.TokenSource(r.Context(), tok)))
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Internal server error", "")
		return
	}

	info, err := oauthSvc.Userinfo.Get().Do()
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusBadGateway, "Failed to fetch user info", "")
		return
	}
	if info.VerifiedEmail == nil || !*info.VerifiedEmail {
		utils.WriteErrorResponse(w, http.StatusUnauthorized, "Google email is not verified", "")
		return
	}

	res, err := h.svc.LoginWithGoogle(r.Context(), info.Email, info.GivenName, info.FamilyName)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	redirect := fmt.Sprintf("%s/auth/callback?token=%s&email=%s", h.frontendURL, res.Token, res.Email)
	http.Redirect(w, r, redirect, http.StatusTemporaryRedirect)
}
