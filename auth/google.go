package auth

import (
	"context"

	"google.golang.org/api/idtoken"

	"github.com/jumptake/backend/apperror"
	"github.com/jumptake/backend/config"
)

// TokenValidator verifies a Google ID token for an audience.
type TokenValidator func(ctx context.Context, idToken, audience string) (*idtoken.Payload, error)

// GoogleAuthService handles Google SSO verification
type GoogleAuthService struct {
	clientID string
	validate TokenValidator
}

// GoogleUserInfo represents user info from Google token
type GoogleUserInfo struct {
	GoogleID string
	Email    string
	Name     string
}

// NewGoogleAuthService creates a new Google auth service
func NewGoogleAuthService(cfg *config.Config) *GoogleAuthService {
	return NewGoogleAuthServiceWithValidator(cfg.GoogleClientID, idtoken.Validate)
}

// NewGoogleAuthServiceWithValidator uses a custom validator, mainly in tests.
func NewGoogleAuthServiceWithValidator(clientID string, validate TokenValidator) *GoogleAuthService {
	return &GoogleAuthService{clientID: clientID, validate: validate}
}

// VerifyIDToken verifies a Google ID token and returns user info
func (s *GoogleAuthService) VerifyIDToken(ctx context.Context, idToken string) (*GoogleUserInfo, error) {
	if s.clientID == "" {
		return nil, &config.ConfigError{Field: "GOOGLE_CLIENT_ID", Message: "Google Client ID not configured"}
	}

	payload, err := s.validate(ctx, idToken, s.clientID)
	if err != nil {
		return nil, apperror.Wrap(apperror.Unauthorized, err, "Invalid Google token")
	}

	userInfo := &GoogleUserInfo{
		GoogleID: payload.Subject,
	}

	if email, ok := payload.Claims["email"].(string); ok {
		userInfo.Email = email
	}
	if name, ok := payload.Claims["name"].(string); ok {
		userInfo.Name = name
	}

	if userInfo.Email == "" {
		return nil, apperror.New(apperror.Unauthorized, "email not found in token")
	}
	if verified, ok := payload.Claims["email_verified"].(bool); ok && !verified {
		return nil, apperror.Newf(apperror.Unauthorized, "email %s is not verified", userInfo.Email)
	}

	return userInfo, nil
}
