package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/jumptake/backend/apperror"
	"github.com/jumptake/backend/models"
)

const (
	// AuthClaimsKey is the key used to store JWT claims in gin context
	AuthClaimsKey = "auth_claims"
)

func abort(c *gin.Context, status int, kind apperror.Kind, message, details string) {
	c.AbortWithStatusJSON(status, models.ErrorResponse{
		Error:   message,
		Code:    status,
		Type:    string(kind),
		Details: details,
	})
}

// BearerToken returns the token of an "Authorization: Bearer <token>" header.
func BearerToken(c *gin.Context) (string, bool) {
	parts := strings.SplitN(c.GetHeader("Authorization"), " ", 2)
	if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" || strings.TrimSpace(parts[1]) == "" {
		return "", false
	}
	return strings.TrimSpace(parts[1]), true
}

// AuthMiddleware creates a middleware for JWT authentication
func AuthMiddleware(jwtService *JWTService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			abort(c, http.StatusUnauthorized, apperror.Unauthorized, "Authorization header required", "")
			return
		}

		tokenString, ok := BearerToken(c)
		if !ok {
			abort(c, http.StatusUnauthorized, apperror.Unauthorized, "Invalid authorization header format", "")
			return
		}

		claims, err := jwtService.ValidateToken(tokenString)
		if err != nil {
			abort(c, http.StatusUnauthorized, apperror.Unauthorized, "Invalid or expired token", err.Error())
			return
		}

		c.Set(AuthClaimsKey, claims)
		c.Next()
	}
}

// OptionalAuthMiddleware adds claims to the context when a valid token is
// present and lets the request through either way.
func OptionalAuthMiddleware(jwtService *JWTService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if tokenString, ok := BearerToken(c); ok {
			if claims, err := jwtService.ValidateToken(tokenString); err == nil {
				c.Set(AuthClaimsKey, claims)
			}
		}
		c.Next()
	}
}

// RequireRole rejects authenticated callers whose role is not allowed.
// It must run after AuthMiddleware.
func RequireRole(roles ...models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := GetAuthClaims(c)
		if claims == nil {
			abort(c, http.StatusUnauthorized, apperror.Unauthorized, "Unauthorized", "")
			return
		}
		for _, r := range roles {
			if claims.Role == r {
				c.Next()
				return
			}
		}
		abort(c, http.StatusForbidden, apperror.Forbidden, "Insufficient permissions", "requires role "+joinRoles(roles))
	}
}

// RequireSelf rejects callers whose account id differs from the named path
// parameter.
func RequireSelf(param string) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := GetAuthClaims(c)
		if claims == nil {
			abort(c, http.StatusUnauthorized, apperror.Unauthorized, "Unauthorized", "")
			return
		}
		if claims.AccountID != c.Param(param) {
			abort(c, http.StatusForbidden, apperror.Forbidden, "You can only access your own data", "")
			return
		}
		c.Next()
	}
}

// GetAuthClaims retrieves auth claims from gin context
func GetAuthClaims(c *gin.Context) *Claims {
	claims, exists := c.Get(AuthClaimsKey)
	if !exists {
		return nil
	}
	return claims.(*Claims)
}

func joinRoles(roles []models.Role) string {
	names := make([]string, len(roles))
	for i, r := range roles {
		names[i] = string(r)
	}
	return strings.Join(names, " or ")
}
