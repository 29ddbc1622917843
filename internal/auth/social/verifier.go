// Package social validates third-party identity tokens (Google and Apple
// sign-in) against each provider's published JWKS and hands back the verified
// subject, email and name for downstream user lookup or creation.
package social

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/redis/go-redis/v9"
)

const (
	ProviderGoogle = "google"
	ProviderApple  = "apple"

	GoogleJWKSURL = "https://www.googleapis.com/oauth2/v3/certs"
	AppleJWKSURL  = "https://appleid.apple.com/auth/keys"

	appleIssuer = "https://appleid.apple.com"
)

// ErrUnknownProvider is a caller error (400), not a verification failure:
// an unrecognized provider is rejected outright rather than guessed at.
var ErrUnknownProvider = errors.New("unknown social provider")

// Claims is the verified identity attached to the request.
type Claims struct {
	Subject string
	Email   string
	Name    string
	Channel string
}

type Config struct {
	GoogleClientID string
	AppleClientID  string
	// JWKS endpoints are overridable for tests; empty means the provider
	// defaults.
	GoogleJWKSURL string
	AppleJWKSURL  string
	CacheTTL      time.Duration
	Redis         *redis.Client
}

type Verifier struct {
	googleKeys *KeySet
	appleKeys  *KeySet
	googleAud  string
	appleAud   string
}

func NewVerifier(cfg Config) *Verifier {
	googleURL := cfg.GoogleJWKSURL
	if googleURL == "" {
		googleURL = GoogleJWKSURL
	}
	appleURL := cfg.AppleJWKSURL
	if appleURL == "" {
		appleURL = AppleJWKSURL
	}
	ttl := cfg.CacheTTL
	if ttl <= 0 {
		ttl = 10 * time.Minute
	}
	return &Verifier{
		googleKeys: NewKeySet(googleURL, ttl, cfg.Redis),
		appleKeys:  NewKeySet(appleURL, ttl, cfg.Redis),
		googleAud:  cfg.GoogleClientID,
		appleAud:   cfg.AppleClientID,
	}
}

// Verify dispatches on provider and fails closed on any mismatch.
func (v *Verifier) Verify(ctx context.Context, provider, token string) (Claims, error) {
	switch strings.ToLower(strings.TrimSpace(provider)) {
	case ProviderGoogle:
		return v.verifyGoogle(ctx, token)
	case ProviderApple:
		return v.verifyApple(ctx, token)
	default:
		return Claims{}, fmt.Errorf("%w: %q", ErrUnknownProvider, provider)
	}
}

func audienceContains(audClaim any, expected string) bool {
	switch aud := audClaim.(type) {
	case string:
		return aud == expected
	case []any:
		for _, item := range aud {
			if s, ok := item.(string); ok && s == expected {
				return true
			}
		}
	case []string:
		for _, item := range aud {
			if item == expected {
				return true
			}
		}
	}
	return false
}

func stringClaim(claims jwt.MapClaims, key string) string {
	s, _ := claims[key].(string)
	return s
}
