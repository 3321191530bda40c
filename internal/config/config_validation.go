// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// validate checks that the merged [StructuredConfig] can start a gateway.
//
// Auth settings are checked where they are consumed: the token verifier
// refuses to construct without issuer, audience and a well-formed JWKS URL.
func (cfg *StructuredConfig) validate() error {
	var errs []error

	if cfg.Server.HTTPAddress == "" {
		errs = append(errs, ErrInvalidServerConfigs)
	}

	if cfg.Storage.DB.DSN == "" {
		errs = append(errs, ErrInvalidStorageConfigs)
	}

	if cfg.RateLimit.Limit <= 0 || cfg.RateLimit.Window <= 0 {
		errs = append(errs, ErrInvalidRateLimitConfigs)
	}

	return errors.Join(errs...)
}
