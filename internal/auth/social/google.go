package social

import (
	"context"
	"errors"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

func (v *Verifier) verifyGoogle(ctx context.Context, tokenString string) (Claims, error) {
	parser := jwt.NewParser(jwt.WithValidMethods([]string{"RS256"}))
	claims := jwt.MapClaims{}

	token, err := parser.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		kid, ok := t.Header["kid"].(string)
		if !ok || strings.TrimSpace(kid) == "" {
			return nil, errors.New("missing kid in token header")
		}
		key, err := v.googleKeys.Key(ctx, kid)
		if err != nil {
			return nil, err
		}
		return key.RSAPublicKey()
	})
	if err != nil || !token.Valid {
		return Claims{}, errors.New("google token validation failed")
	}

	iss := stringClaim(claims, "iss")
	if iss != "accounts.google.com" && iss != "https://accounts.google.com" {
		return Claims{}, errors.New("google token issuer mismatch")
	}
	if v.googleAud != "" && !audienceContains(claims["aud"], v.googleAud) {
		return Claims{}, errors.New("google token audience mismatch")
	}

	sub := stringClaim(claims, "sub")
	if sub == "" {
		return Claims{}, errors.New("google token subject missing")
	}

	return Claims{
		Subject: sub,
		Email:   stringClaim(claims, "email"),
		Name:    stringClaim(claims, "name"),
		Channel: ProviderGoogle,
	}, nil
}
