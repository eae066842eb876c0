package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/jumptake/backend/apperror"
	"github.com/jumptake/backend/auth"
	"github.com/jumptake/backend/models"
	"github.com/jumptake/backend/resume"
	"github.com/jumptake/backend/storage"
)

// AuthHandler handles authentication requests
type AuthHandler struct {
	accounts   storage.AccountStore
	resumes    *resume.Service
	jwtService *auth.JWTService
	googleAuth *auth.GoogleAuthService
	logger     *zap.Logger
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(
	accounts storage.AccountStore,
	resumes *resume.Service,
	jwtService *auth.JWTService,
	googleAuth *auth.GoogleAuthService,
	log *zap.Logger,
) *AuthHandler {
	return &AuthHandler{
		accounts:   accounts,
		resumes:    resumes,
		jwtService: jwtService,
		googleAuth: googleAuth,
		logger:     log.Named("auth_handler"),
	}
}

func invalidCredentials() error {
	return apperror.New(apperror.Unauthorized, "Invalid email or password")
}

// Register handles user registration with email/password
// @Summary Register a new user
// @Description Register with email and password. When jobSeekerId is given, the parsed resume is linked to the new account after the token is issued.
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body models.RegisterRequest true "Registration request"
// @Success 201 {object} models.AuthResponse "Registration successful"
// @Failure 400 {object} models.ErrorResponse "Invalid request body or email taken"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body", err)
		return
	}

	role, ok := models.ParseRole(req.Role)
	if !ok {
		respondError(c, h.logger, apperror.Newf(apperror.Validation, "unknown role %q", req.Role))
		return
	}

	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		respondError(c, h.logger, apperror.Wrap(apperror.Internal, err, "Failed to process registration"))
		return
	}

	ctx := c.Request.Context()
	account := &models.Account{
		Email:                   req.Email,
		Password:                hashedPassword,
		Role:                    role,
		Provider:                models.ProviderEmail,
		NotificationPreferences: models.DefaultNotificationPreferences(),
	}
	if err := h.accounts.CreateAccount(ctx, account); err != nil {
		respondError(c, h.logger, err)
		return
	}

	token, err := h.jwtService.GenerateToken(account)
	if err != nil {
		respondError(c, h.logger, apperror.Wrap(apperror.Internal, err, "Failed to generate token"))
		return
	}

	resp := models.AuthResponse{
		Token:   token,
		User:    account,
		Message: "Registration successful",
	}

	if req.JobSeekerID != "" {
		if err := h.resumes.Link(ctx, account.ID, req.JobSeekerID); err != nil {
			h.logger.Warn("resume link after registration failed",
				zap.String("user_id", account.ID),
				zap.String("job_seeker_id", req.JobSeekerID),
				zap.Error(err),
			)
			resp.Message = "Registration successful, but the resume could not be linked: " + apperror.MessageOf(err)
		} else {
			account.JobSeekerID = &req.JobSeekerID
			resp.JobSeekerID = req.JobSeekerID
		}
	}

	h.logger.Info("user registered", zap.String("user_id", account.ID), zap.String("role", string(role)))
	c.JSON(http.StatusCreated, resp)
}

// Login handles user login with email/password
// @Summary Login user
// @Description Login with email and password to get JWT token
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body models.LoginRequest true "Login request"
// @Success 200 {object} models.AuthResponse "Login successful"
// @Failure 400 {object} models.ErrorResponse "Invalid request body"
// @Failure 401 {object} models.ErrorResponse "Invalid credentials"
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body", err)
		return
	}

	account, err := h.accounts.GetAccountByEmail(c.Request.Context(), req.Email)
	if err != nil {
		if apperror.Is(err, apperror.NotFound) {
			err = invalidCredentials()
		}
		respondError(c, h.logger, err)
		return
	}

	if account.Provider == models.ProviderGoogle && account.Password == "" {
		respondError(c, h.logger, apperror.New(apperror.Unauthorized, "This account uses Google Sign-In. Please login with Google."))
		return
	}

	if !auth.CheckPassword(req.Password, account.Password) {
		respondError(c, h.logger, invalidCredentials())
		return
	}

	h.issue(c, http.StatusOK, account, "Login successful")
}

// GoogleLogin handles Google SSO authentication
// @Summary Login with Google
// @Description Login or register using Google SSO ID token
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body models.GoogleAuthRequest true "Google auth request"
// @Success 200 {object} models.AuthResponse "Login successful"
// @Failure 400 {object} models.ErrorResponse "Invalid request body"
// @Failure 401 {object} models.ErrorResponse "Invalid Google token"
// @Failure 503 {object} models.ErrorResponse "Google Sign-In not configured"
// @Router /auth/google [post]
func (h *AuthHandler) GoogleLogin(c *gin.Context) {
	var req models.GoogleAuthRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body", err)
		return
	}

	role, ok := models.ParseRole(req.Role)
	if !ok {
		respondError(c, h.logger, apperror.Newf(apperror.Validation, "unknown role %q", req.Role))
		return
	}

	ctx := c.Request.Context()
	googleUser, err := h.googleAuth.VerifyIDToken(ctx, req.IDToken)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	account, err := h.googleAccount(ctx, googleUser, role)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	h.issue(c, http.StatusOK, account, "Login successful")
}

// googleAccount finds the account for a Google identity, linking an
// existing email account or creating a new one.
func (h *AuthHandler) googleAccount(ctx context.Context, user *auth.GoogleUserInfo, role models.Role) (*models.Account, error) {
	account, err := h.accounts.GetAccountByGoogleID(ctx, user.GoogleID)
	if err == nil {
		return account, nil
	}
	if !apperror.Is(err, apperror.NotFound) {
		return nil, err
	}

	account, err = h.accounts.GetAccountByEmail(ctx, user.Email)
	switch {
	case err == nil:
		if err := h.accounts.LinkGoogleAccount(ctx, account.ID, user.GoogleID); err != nil {
			return nil, err
		}
		account.GoogleID = user.GoogleID
		return account, nil
	case !apperror.Is(err, apperror.NotFound):
		return nil, err
	}

	account = &models.Account{
		Email:                   user.Email,
		Role:                    role,
		Provider:                models.ProviderGoogle,
		GoogleID:                user.GoogleID,
		NotificationPreferences: models.DefaultNotificationPreferences(),
	}
	if err := h.accounts.CreateAccount(ctx, account); err != nil {
		return nil, err
	}
	h.logger.Info("google user created", zap.String("user_id", account.ID))
	return account, nil
}

func (h *AuthHandler) issue(c *gin.Context, status int, account *models.Account, message string) {
	token, err := h.jwtService.GenerateToken(account)
	if err != nil {
		respondError(c, h.logger, apperror.Wrap(apperror.Internal, err, "Failed to generate token"))
		return
	}

	resp := models.AuthResponse{
		Token:   token,
		User:    account,
		Message: message,
	}
	if account.JobSeekerID != nil {
		resp.JobSeekerID = *account.JobSeekerID
	}
	c.JSON(status, resp)
}

// GetProfile retrieves the current user's account
// @Summary Get user profile
// @Description Get the authenticated user's account information
// @Tags Auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ProfileResponse "User profile"
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Failure 404 {object} models.ErrorResponse "User not found"
// @Router /auth/profile [get]
func (h *AuthHandler) GetProfile(c *gin.Context) {
	account, err := h.accounts.GetAccount(c.Request.Context(), callerID(c))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, models.ProfileResponse{
		User: account,
	})
}

// Refresh re-issues the caller's token with a fresh expiry
// @Summary Refresh token
// @Tags Auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.AuthResponse "New token"
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Router /auth/refresh [post]
func (h *AuthHandler) Refresh(c *gin.Context) {
	raw, _ := auth.BearerToken(c)
	token, err := h.jwtService.RefreshToken(raw)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	account, err := h.accounts.GetAccount(c.Request.Context(), callerID(c))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	resp := models.AuthResponse{Token: token, User: account}
	if account.JobSeekerID != nil {
		resp.JobSeekerID = *account.JobSeekerID
	}
	c.JSON(http.StatusOK, resp)
}

// GetNotificationPreferences returns the user's notification settings
// @Summary Get notification preferences
// @Tags Users
// @Produce json
// @Security BearerAuth
// @Param userId path string true "User ID"
// @Success 200 {object} models.NotificationPreferencesResponse "Preferences"
// @Failure 403 {object} models.ErrorResponse "Another user's preferences"
// @Failure 404 {object} models.ErrorResponse "User not found"
// @Router /users/{userId}/notification-preferences [get]
func (h *AuthHandler) GetNotificationPreferences(c *gin.Context) {
	account, err := h.accounts.GetAccount(c.Request.Context(), c.Param("userId"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, models.NotificationPreferencesResponse{
		NotificationPreferences: account.NotificationPreferences,
	})
}

// UpdateNotificationPreferences merges the given settings
// @Summary Update notification preferences
// @Tags Users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param userId path string true "User ID"
// @Param request body models.NotificationPreferencesRequest true "Preferences to change"
// @Success 200 {object} models.NotificationPreferencesResponse "Updated preferences"
// @Failure 400 {object} models.ErrorResponse "Invalid frequency"
// @Failure 403 {object} models.ErrorResponse "Another user's preferences"
// @Router /users/{userId}/notification-preferences [put]
func (h *AuthHandler) UpdateNotificationPreferences(c *gin.Context) {
	var req models.NotificationPreferencesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body", err)
		return
	}

	ctx := c.Request.Context()
	account, err := h.accounts.GetAccount(ctx, c.Param("userId"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	prefs, ok := req.Apply(account.NotificationPreferences)
	if !ok {
		respondError(c, h.logger, apperror.New(apperror.Validation, "recommendationFrequency must be daily, weekly or monthly"))
		return
	}

	if err := h.accounts.UpdateNotificationPreferences(ctx, account.ID, prefs); err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, models.NotificationPreferencesResponse{
		Message:                 "Notification preferences updated successfully",
		NotificationPreferences: prefs,
	})
}
