// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"errors"
	"strings"
)

// ErrMalformedAuthorization is returned for an Authorization header that is
// not of the form "Bearer <token>".
var ErrMalformedAuthorization = errors.New("invalid authorization header")

// ParseBearerToken extracts the token from an Authorization header value.
// The scheme is matched case-insensitively; the token must be a single
// non-empty field.
func ParseBearerToken(authorizationHeader string) (string, error) {
	parts := strings.Fields(authorizationHeader)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", ErrMalformedAuthorization
	}
	return parts[1], nil
}
