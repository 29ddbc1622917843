package social

import (
	"context"
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

func (v *Verifier) verifyApple(ctx context.Context, tokenString string) (Claims, error) {
	// Decode the header first: Apple keys are matched by kid and the token's
	// algorithm must agree with the fetched key's.
	header, err := decodeHeader(tokenString)
	if err != nil {
		return Claims{}, err
	}
	key, err := v.appleKeys.Key(ctx, header.Kid)
	if err != nil {
		return Claims{}, err
	}
	if key.Alg != "" && key.Alg != header.Alg {
		return Claims{}, fmt.Errorf("alg does not match the jwk configuration - alg: %s | expected: %s", header.Alg, key.Alg)
	}

	parser := jwt.NewParser(jwt.WithValidMethods([]string{header.Alg}))
	claims := jwt.MapClaims{}
	token, err := parser.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		return key.RSAPublicKey()
	})
	if err != nil || !token.Valid {
		return Claims{}, errors.New("apple token validation failed")
	}

	if iss := stringClaim(claims, "iss"); iss != appleIssuer {
		return Claims{}, fmt.Errorf("iss does not match the Apple URL - iss: %s | expected: %s", iss, appleIssuer)
	}
	if v.appleAud != "" && !audienceContains(claims["aud"], v.appleAud) {
		return Claims{}, fmt.Errorf("aud parameter does not include this client - is: %v | expected: %s", claims["aud"], v.appleAud)
	}

	sub := stringClaim(claims, "sub")
	if sub == "" {
		return Claims{}, errors.New("apple token subject missing")
	}

	return Claims{
		Subject: sub,
		Email:   stringClaim(claims, "email"),
		Name:    stringClaim(claims, "name"),
		Channel: ProviderApple,
	}, nil
}

type tokenHeader struct {
	Kid string
	Alg string
}

func decodeHeader(tokenString string) (tokenHeader, error) {
	token, _, err := jwt.NewParser().ParseUnverified(tokenString, jwt.MapClaims{})
	if err != nil {
		return tokenHeader{}, errors.New("malformed token")
	}
	kid, _ := token.Header["kid"].(string)
	alg, _ := token.Header["alg"].(string)
	if kid == "" || alg == "" {
		return tokenHeader{}, errors.New("token header missing kid or alg")
	}
	return tokenHeader{Kid: kid, Alg: alg}, nil
}
