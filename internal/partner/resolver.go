// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package partner resolves opaque partner credentials sent in the
// x-partner-token header.
package partner

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-tenant-gateway/internal/logger"
	"github.com/MKhiriev/go-tenant-gateway/models"
)

// ErrLookupFailed wraps storage failures during resolution.
var ErrLookupFailed = errors.New("partner token lookup failed")

// Digest returns the lowercase hex SHA-256 of a raw credential. It is
// unsalted so the same credential always maps to the same stored row and
// the same rate-limit identity.
func Digest(rawToken string) string {
	sum := sha256.Sum256([]byte(rawToken))
	return hex.EncodeToString(sum[:])
}

type resolver struct {
	tokens TokenStore
}

// NewResolver returns a TokenResolver over tokens.
func NewResolver(tokens TokenStore) TokenResolver {
	return &resolver{tokens: tokens}
}

// Resolve implements TokenResolver. Blank credentials are not looked up.
func (r *resolver) Resolve(ctx context.Context, rawToken string) (models.PartnerContext, bool, error) {
	if strings.TrimSpace(rawToken) == "" {
		return models.PartnerContext{}, false, nil
	}

	partner, found, err := r.tokens.FindActiveByDigest(ctx, Digest(rawToken))
	if err != nil {
		logger.FromContext(ctx).Err(err).Msg("partner token lookup failed")
		return models.PartnerContext{}, false, fmt.Errorf("%w: %w", ErrLookupFailed, err)
	}
	if !found {
		return models.PartnerContext{}, false, nil
	}

	return partner, true, nil
}
