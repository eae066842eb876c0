package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/jumptake/backend/apperror"
	"github.com/jumptake/backend/config"
	"github.com/jumptake/backend/models"
)

const issuer = "jumptake"

// JWTService issues and verifies HS256 session tokens.
type JWTService struct {
	secretKey []byte
	ttl       time.Duration
	now       func() time.Time
}

// Claims carries the account identity. The account id is also the subject.
type Claims struct {
	AccountID string      `json:"userId"`
	Email     string      `json:"email"`
	Role      models.Role `json:"role"`
	jwt.RegisteredClaims
}

func NewJWTService(cfg *config.Config) *JWTService {
	return &JWTService{
		secretKey: []byte(cfg.JWTSecret),
		ttl:       time.Duration(cfg.JWTExpiryHours) * time.Hour,
		now:       time.Now,
	}
}

// GenerateToken signs a token for the account.
func (s *JWTService) GenerateToken(account *models.Account) (string, error) {
	return s.sign(&Claims{
		AccountID: account.ID,
		Email:     account.Email,
		Role:      account.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject: account.ID,
			Issuer:  issuer,
		},
	})
}

// ValidateToken checks signature, issuer and expiry. Every failure is
// Unauthorized.
func (s *JWTService) ValidateToken(tokenString string) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, s.key,
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return nil, apperror.Wrap(apperror.Unauthorized, err, "Invalid or expired token")
	}
	if !token.Valid || claims.AccountID == "" {
		return nil, apperror.New(apperror.Unauthorized, "Invalid or expired token")
	}

	return claims, nil
}

// RefreshToken re-signs a still valid token with a fresh expiry.
func (s *JWTService) RefreshToken(tokenString string) (string, error) {
	claims, err := s.ValidateToken(tokenString)
	if err != nil {
		return "", err
	}
	return s.sign(claims)
}

func (s *JWTService) sign(claims *Claims) (string, error) {
	now := s.now()
	claims.IssuedAt = jwt.NewNumericDate(now)
	claims.ExpiresAt = jwt.NewNumericDate(now.Add(s.ttl))

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secretKey)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

func (s *JWTService) key(*jwt.Token) (interface{}, error) {
	return s.secretKey, nil
}
