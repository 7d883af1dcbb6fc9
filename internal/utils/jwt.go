// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils provides general-purpose helpers shared by the switcher's
// packages: HTTP client construction, identifier generation, and token
// inspection.
package utils

import (
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// ErrNotAJWT is returned when a token cannot be parsed as a JWT.
var ErrNotAJWT = errors.New("token is not a jwt")

// SubjectFromUnverifiedJWT returns the "sub" claim of tokenString without
// verifying its signature. Riot access tokens are signed by Riot; the
// switcher only reads the subject for log context and never trusts it.
func SubjectFromUnverifiedJWT(tokenString string) (string, error) {
	token, _, err := jwt.NewParser().ParseUnverified(tokenString, jwt.MapClaims{})
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrNotAJWT, err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", errors.New("invalid token claims")
	}

	sub, err := claims.GetSubject()
	if err != nil {
		return "", err
	}
	return sub, nil
}
