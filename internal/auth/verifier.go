// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package auth

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/MKhiriev/go-tenant-gateway/internal/config"
	"github.com/MKhiriev/go-tenant-gateway/models"
	"github.com/golang-jwt/jwt/v5"
)

// clockLeeway tolerates clock skew on exp, nbf and iat.
const clockLeeway = 30 * time.Second

var validMethods = []string{"RS256", "RS384", "RS512", "ES256", "ES384"}

// tokenClaims is the claim set the gateway accepts: the registered claims
// plus the tenant the token was issued for and its raw roles.
type tokenClaims struct {
	jwt.RegisteredClaims

	TenantID string   `json:"tenant_id"`
	Roles    []string `json:"roles"`
}

// tokenVerifier is the concrete implementation of TokenVerifier.
type tokenVerifier struct {
	keys   KeySetProvider
	parser *jwt.Parser
}

// NewTokenVerifier validates cfg and returns a verifier that checks tokens
// against keys. Issuer, audience and an absolute http(s) JWKS URL are
// required; otherwise ErrVerifierMisconfigured is returned.
func NewTokenVerifier(cfg config.Auth, keys KeySetProvider) (TokenVerifier, error) {
	if err := validateAuthConfig(cfg); err != nil {
		return nil, err
	}
	if keys == nil {
		return nil, fmt.Errorf("%w: no key set provider", ErrVerifierMisconfigured)
	}

	return &tokenVerifier{
		keys: keys,
		parser: jwt.NewParser(
			jwt.WithValidMethods(validMethods),
			jwt.WithIssuer(cfg.Issuer),
			jwt.WithAudience(cfg.Audience),
			jwt.WithExpirationRequired(),
			jwt.WithIssuedAt(),
			jwt.WithLeeway(clockLeeway),
		),
	}, nil
}

func validateAuthConfig(cfg config.Auth) error {
	var errs []error
	if strings.TrimSpace(cfg.Issuer) == "" {
		errs = append(errs, errors.New("issuer is empty"))
	}
	if strings.TrimSpace(cfg.Audience) == "" {
		errs = append(errs, errors.New("audience is empty"))
	}

	if cfg.JWKSURL == "" {
		errs = append(errs, errors.New("JWKS URL is empty"))
	} else if u, err := url.Parse(cfg.JWKSURL); err != nil || !u.IsAbs() || u.Host == "" ||
		(u.Scheme != "http" && u.Scheme != "https") {
		errs = append(errs, fmt.Errorf("JWKS URL %q is not an absolute http(s) URL", cfg.JWKSURL))
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrVerifierMisconfigured, errors.Join(errs...))
	}
	return nil
}

// Verify parses token, checks its signature against the published key set
// and validates claim shape.
func (v *tokenVerifier) Verify(ctx context.Context, token string) (models.AuthClaims, error) {
	if token == "" {
		return models.AuthClaims{}, fmt.Errorf("%w: empty token", ErrTokenInvalid)
	}

	var keyErr error
	claims := new(tokenClaims)
	_, err := v.parser.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		key, err := v.keys.Key(ctx, t)
		if err != nil {
			keyErr = err
			return nil, err
		}
		return key, nil
	})

	// fetch failures are system errors, not a verdict on the token
	if errors.Is(keyErr, ErrKeySetUnavailable) {
		return models.AuthClaims{}, keyErr
	}
	if err != nil {
		return models.AuthClaims{}, fmt.Errorf("%w: %w", ErrTokenInvalid, err)
	}

	if strings.TrimSpace(claims.Subject) == "" {
		return models.AuthClaims{}, fmt.Errorf("%w: empty subject", ErrTokenInvalid)
	}
	if strings.TrimSpace(claims.TenantID) == "" {
		return models.AuthClaims{}, fmt.Errorf("%w: empty tenant_id", ErrTokenInvalid)
	}
	if len(claims.Roles) == 0 {
		return models.AuthClaims{}, fmt.Errorf("%w: roles claim missing or empty", ErrTokenInvalid)
	}

	roles := Normalize(claims.Roles)
	if len(roles) == 0 {
		return models.AuthClaims{}, ErrRolesInvalid
	}

	return models.AuthClaims{
		Subject:  claims.Subject,
		TenantID: claims.TenantID,
		Roles:    roles,
	}, nil
}
