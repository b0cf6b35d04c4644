package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/contentforge/backend/internal/infrastructure/auth"
	"github.com/contentforge/backend/internal/infrastructure/logger"
	"github.com/contentforge/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Context keys set by the auth middleware
const (
	OwnerIDKey    = "owner_id"
	OwnerTierKey  = "owner_tier"
	IdentityKey   = "identity"
	AuthHeaderKey = "Authorization"
	BearerPrefix  = "Bearer "
)

// Verifier validates a bearer token and resolves the caller
type Verifier interface {
	Verify(token string) (*auth.Identity, error)
}

// JWTMiddlewareConfig holds configuration for JWT middleware
type JWTMiddlewareConfig struct {
	Verifier Verifier
	// SkipPaths are paths that don't require authentication
	SkipPaths []string
	Logger    *zap.Logger
}

// DefaultJWTConfig returns default JWT middleware configuration
func DefaultJWTConfig(v Verifier) JWTMiddlewareConfig {
	return JWTMiddlewareConfig{
		Verifier:  v,
		SkipPaths: []string{"/health", "/api/v1/health"},
	}
}

// JWTAuthMiddleware creates JWT authentication middleware
func JWTAuthMiddleware(v Verifier) gin.HandlerFunc {
	return JWTAuthMiddlewareWithConfig(DefaultJWTConfig(v))
}

// JWTAuthMiddlewareWithConfig resolves the bearer token into an owner id and
// raw tier string stored on the gin context.
func JWTAuthMiddlewareWithConfig(cfg JWTMiddlewareConfig) gin.HandlerFunc {
	skip := make(map[string]struct{}, len(cfg.SkipPaths))
	for _, p := range cfg.SkipPaths {
		skip[p] = struct{}{}
	}

	return func(c *gin.Context) {
		if _, ok := skip[c.Request.URL.Path]; ok {
			c.Next()
			return
		}

		authHeader := c.GetHeader(AuthHeaderKey)
		if authHeader == "" {
			abortAuth(c, cfg, nil, "Missing authorization header")
			return
		}
		if !strings.HasPrefix(authHeader, BearerPrefix) {
			abortAuth(c, cfg, auth.ErrInvalidToken, "Invalid authorization header format")
			return
		}
		token := strings.TrimSpace(strings.TrimPrefix(authHeader, BearerPrefix))
		if token == "" {
			abortAuth(c, cfg, nil, "Missing token")
			return
		}

		identity, err := cfg.Verifier.Verify(token)
		if err != nil {
			abortAuth(c, cfg, err, "Token validation failed")
			return
		}

		c.Set(IdentityKey, identity)
		c.Set(OwnerIDKey, identity.OwnerID)
		c.Set(OwnerTierKey, identity.Tier)

		ctx := logger.WithOwnerID(c.Request.Context(), identity.OwnerID)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

func abortAuth(c *gin.Context, cfg JWTMiddlewareConfig, err error, message string) {
	if cfg.Logger != nil {
		cfg.Logger.Warn("JWT authentication failed",
			zap.Error(err),
			zap.String("message", message),
			zap.String("path", c.Request.URL.Path),
		)
	}

	code := dto.ErrCodeUnauthorized
	msg := "Authentication required"
	switch {
	case errors.Is(err, auth.ErrExpiredToken):
		code, msg = dto.ErrCodeTokenExpired, "Token has expired"
	case errors.Is(err, auth.ErrTokenNotYetValid):
		code, msg = dto.ErrCodeTokenInvalid, "Token is not yet valid"
	case errors.Is(err, auth.ErrMissingSubject):
		code, msg = dto.ErrCodeUnauthorized, "Token does not identify an owner"
	case err != nil:
		code, msg = dto.ErrCodeTokenInvalid, "Invalid token"
	}

	c.AbortWithStatusJSON(http.StatusUnauthorized,
		dto.NewErrorResponseWithRequestID(code, msg, GetRequestID(c)))
}

// GetOwnerID returns the authenticated owner, or "" when unauthenticated
func GetOwnerID(c *gin.Context) string {
	return c.GetString(OwnerIDKey)
}

// GetOwnerTier returns the raw tier claim; "" is treated as free downstream
func GetOwnerTier(c *gin.Context) string {
	return c.GetString(OwnerTierKey)
}

// GetIdentity returns the verified identity, or nil
func GetIdentity(c *gin.Context) *auth.Identity {
	if v, ok := c.Get(IdentityKey); ok {
		if id, ok := v.(*auth.Identity); ok {
			return id
		}
	}
	return nil
}
