// Package middleware carries the two authentication gates: first-party
// session tokens for established users and third-party social tokens for
// registration.
package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"bizlend-backend/internal/auth/social"
	"bizlend-backend/internal/domain/user"
	"bizlend-backend/internal/respond"
)

// Context keys set for downstream handlers.
const (
	CurrentUserKey  = "currentUser"
	SocialClaimsKey = "socialClaims"
)

// TokenVerifier checks a session token and returns the embedded user id.
type TokenVerifier interface {
	Verify(token string) (string, error)
}

// UserLoader resolves a live user; deleted or missing users fail auth.
type UserLoader interface {
	FindBySession(ctx context.Context, userID string) (*user.User, error)
}

// SocialVerifier validates a provider-issued identity token.
type SocialVerifier interface {
	Verify(ctx context.Context, provider, token string) (social.Claims, error)
}

func fail(c echo.Context, message string, code int) error {
	return c.JSON(code, map[string]any{
		"status":  code,
		"message": message,
		"data":    nil,
	})
}

// Session authenticates Bearer tokens and stashes the resolved user under
// CurrentUserKey.
func Session(tokens TokenVerifier, users UserLoader) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := strings.TrimSpace(c.Request().Header.Get("Authorization"))
			if header == "" {
				return fail(c, respond.MsgTokenMissing, http.StatusUnauthorized)
			}
			if !strings.HasPrefix(header, "Bearer ") {
				return fail(c, respond.MsgTokenMissing, http.StatusUnauthorized)
			}
			token := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
			if token == "" {
				return fail(c, respond.MsgTokenMissing, http.StatusUnauthorized)
			}
			userID, err := tokens.Verify(token)
			if err != nil {
				return fail(c, respond.MsgTokenInvalid, http.StatusUnauthorized)
			}
			u, err := users.FindBySession(c.Request().Context(), userID)
			if err != nil {
				return fail(c, respond.MsgUnauthorized, http.StatusUnauthorized)
			}
			c.Set(CurrentUserKey, u)
			return next(c)
		}
	}
}

// Social authenticates registration requests via X-Social-Provider and
// X-Social-Token and stashes the verified claims under SocialClaimsKey. An
// unrecognized provider is a client error, not a pass-through.
func Social(verifier SocialVerifier) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			provider := strings.ToLower(strings.TrimSpace(c.Request().Header.Get("X-Social-Provider")))
			if provider == "" {
				return fail(c, "Social provider not specified", http.StatusBadRequest)
			}
			token := strings.TrimSpace(c.Request().Header.Get("X-Social-Token"))
			if token == "" {
				return fail(c, respond.MsgTokenMissing, http.StatusUnauthorized)
			}
			claims, err := verifier.Verify(c.Request().Context(), provider, token)
			if err != nil {
				if errors.Is(err, social.ErrUnknownProvider) {
					return fail(c, "Unsupported social provider", http.StatusBadRequest)
				}
				return fail(c, respond.MsgTokenInvalid, http.StatusUnauthorized)
			}
			c.Set(SocialClaimsKey, claims)
			return next(c)
		}
	}
}

// CurrentUser pulls the authenticated user a Session middleware stored.
func CurrentUser(c echo.Context) (*user.User, bool) {
	u, ok := c.Get(CurrentUserKey).(*user.User)
	return u, ok
}

// VerifiedClaims pulls the social identity a Social middleware stored.
func VerifiedClaims(c echo.Context) (social.Claims, bool) {
	claims, ok := c.Get(SocialClaimsKey).(social.Claims)
	return claims, ok
}
