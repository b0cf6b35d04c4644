// Package auth verifies bearer tokens issued by the identity provider.
package auth

import (
	"errors"
	"strings"
	"time"

	"github.com/contentforge/backend/internal/infrastructure/config"
	"github.com/golang-jwt/jwt/v5"
)

// DefaultTierClaim is the claim read when no tier claim is configured
const DefaultTierClaim = "subscription_tier"

const clockSkew = 30 * time.Second

// Common errors
var (
	ErrInvalidToken     = errors.New("invalid token")
	ErrExpiredToken     = errors.New("token has expired")
	ErrTokenNotYetValid = errors.New("token is not yet valid")
	ErrMissingSubject   = errors.New("missing sub in claims")
)

// Identity is the caller resolved from a verified token
type Identity struct {
	OwnerID   string
	Tier      string // raw, normalized later by the tier policy
	TokenID   string
	ExpiresAt time.Time
}

// TokenVerifier validates HMAC-signed bearer tokens
type TokenVerifier struct {
	secret    []byte
	tierClaim string
	parser    *jwt.Parser
}

// NewTokenVerifier creates a TokenVerifier
func NewTokenVerifier(cfg config.JWTConfig) *TokenVerifier {
	tierClaim := cfg.TierClaim
	if tierClaim == "" {
		tierClaim = DefaultTierClaim
	}
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{
			jwt.SigningMethodHS256.Alg(),
			jwt.SigningMethodHS384.Alg(),
			jwt.SigningMethodHS512.Alg(),
		}),
		jwt.WithLeeway(clockSkew),
	}
	if cfg.Issuer != "" {
		opts = append(opts, jwt.WithIssuer(cfg.Issuer))
	}
	return &TokenVerifier{
		secret:    []byte(cfg.Secret),
		tierClaim: tierClaim,
		parser:    jwt.NewParser(opts...),
	}
}

// Verify parses and validates a token. The sub claim becomes the owner.
// A missing or non-string tier claim yields an empty tier, which the
// policy treats as free.
func (v *TokenVerifier) Verify(tokenString string) (*Identity, error) {
	claims := jwt.MapClaims{}
	_, err := v.parser.ParseWithClaims(tokenString, claims, func(*jwt.Token) (interface{}, error) {
		return v.secret, nil
	})
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, ErrExpiredToken
		case errors.Is(err, jwt.ErrTokenNotValidYet):
			return nil, ErrTokenNotYetValid
		}
		return nil, ErrInvalidToken
	}

	sub, err := claims.GetSubject()
	if err != nil || strings.TrimSpace(sub) == "" {
		return nil, ErrMissingSubject
	}

	id := &Identity{OwnerID: sub}
	if t, ok := claims[v.tierClaim].(string); ok {
		id.Tier = t
	}
	if jti, ok := claims["jti"].(string); ok {
		id.TokenID = jti
	}
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		id.ExpiresAt = exp.Time
	}
	return id, nil
}
