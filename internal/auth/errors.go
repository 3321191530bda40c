// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package auth

import "errors"

var (
	// ErrVerifierMisconfigured is returned at startup when issuer, audience
	// or JWKS URL is missing or malformed.
	ErrVerifierMisconfigured = errors.New("token verifier misconfigured")

	// ErrTokenInvalid covers every structural, cryptographic and claim-shape
	// failure of a bearer token.
	ErrTokenInvalid = errors.New("token invalid")

	// ErrRolesInvalid means the token is valid but none of its roles
	// survived normalization.
	ErrRolesInvalid = errors.New("token carries no permitted roles")

	// ErrKeySetUnavailable means the signing keys could not be fetched.
	// It is a system error, not a verdict on the token.
	ErrKeySetUnavailable = errors.New("key set unavailable")

	// ErrUnknownKey means no published key matches the token's "kid".
	ErrUnknownKey = errors.New("unknown signing key")
)
