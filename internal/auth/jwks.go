// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package auth

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/MicahParks/jwkset"
	"github.com/MicahParks/keyfunc/v3"
	"github.com/go-resty/resty/v2"
	"github.com/golang-jwt/jwt/v5"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"golang.org/x/time/rate"

	"github.com/MKhiriev/go-tenant-gateway/internal/logger"
)

// minRefreshInterval bounds how often an unknown kid can trigger a refetch.
const minRefreshInterval = 30 * time.Second

// JWKSProvider resolves token signing keys from the issuer's JSON Web Key
// Set. The set is refetched every ttl in the background, and a token naming
// an unknown kid triggers a refetch at most once per minRefreshInterval.
//
// Encryption keys are never returned.
type JWKSProvider struct {
	storage jwkset.Storage
	keyfunc keyfunc.Keyfunc
}

// NewJWKSProvider starts fetching the key set at url. Each fetch is bounded
// by timeout; the background refresh stops when ctx is done.
//
// A failed first fetch is logged, not returned: lookups fail with
// ErrKeySetUnavailable until a refetch succeeds.
func NewJWKSProvider(ctx context.Context, url string, ttl, timeout time.Duration, log *logger.Logger) (*JWKSProvider, error) {
	client := resty.New().
		SetTimeout(timeout).
		SetTransport(otelhttp.NewTransport(http.DefaultTransport))

	remote, err := jwkset.NewStorageFromHTTP(url, jwkset.HTTPClientStorageOptions{
		Client:                    client.GetClient(),
		Ctx:                       ctx,
		HTTPTimeout:               timeout,
		NoErrorReturnFirstHTTPReq: true,
		RefreshErrorHandler: func(ctx context.Context, err error) {
			log.Warn().Err(err).Str("url", url).Msg("failed to refresh key set")
		},
		RefreshInterval: ttl,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrVerifierMisconfigured, err)
	}

	// RateLimitWaitMax also bounds the refetch itself
	storage, err := jwkset.NewHTTPClient(jwkset.HTTPClientOptions{
		HTTPURLs:          map[string]jwkset.Storage{url: remote},
		RateLimitWaitMax:  timeout,
		RefreshUnknownKID: rate.NewLimiter(rate.Every(minRefreshInterval), 1),
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrVerifierMisconfigured, err)
	}

	kf, err := keyfunc.New(keyfunc.Options{
		Ctx:          ctx,
		Storage:      storage,
		UseWhitelist: []jwkset.USE{jwkset.UseSig, ""},
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrVerifierMisconfigured, err)
	}

	return &JWKSProvider{storage: storage, keyfunc: kf}, nil
}

// Key returns the public key that verifies token. A token without a kid
// gets every published key as a jwt.VerificationKeySet.
//
// Errors:
//   - ErrKeySetUnavailable if no key has been fetched yet;
//   - ErrUnknownKey if the set holds no usable key for the token.
func (p *JWKSProvider) Key(ctx context.Context, token *jwt.Token) (any, error) {
	key, err := p.keyfunc.KeyfuncCtx(ctx)(token)
	if err == nil {
		if set, ok := key.(jwt.VerificationKeySet); ok && len(set.Keys) == 0 {
			return nil, fmt.Errorf("%w: no keys fetched", ErrKeySetUnavailable)
		}
		return key, nil
	}

	if !p.loaded(ctx) {
		return nil, fmt.Errorf("%w: %w", ErrKeySetUnavailable, err)
	}

	kid, _ := token.Header[jwkset.HeaderKID].(string)
	return nil, fmt.Errorf("%w: kid %q: %w", ErrUnknownKey, kid, err)
}

// loaded reports whether at least one key has been fetched.
func (p *JWKSProvider) loaded(ctx context.Context) bool {
	keys, err := p.storage.KeyReadAll(ctx)
	return err == nil && len(keys) > 0
}
