// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// ReasonCode is a stable identifier of a refusal. Values are part of the
// public wire contract and must not change between releases.
type ReasonCode string

// Refusal reasons.
const (
	// ReasonPartnerTokenInvalid covers an unknown token, an inactive token and
	// a token whose agency is inactive. The three are never distinguished.
	ReasonPartnerTokenInvalid ReasonCode = "PARTNER_TOKEN_INVALID"

	ReasonTenantNotFound        ReasonCode = "TENANT_NOT_FOUND"
	ReasonTenantContextMismatch ReasonCode = "TENANT_CONTEXT_MISMATCH"
	ReasonAppDisabled           ReasonCode = "APP_DISABLED"
	ReasonAuthRequired          ReasonCode = "AUTH_REQUIRED"
	ReasonForbiddenRole         ReasonCode = "FORBIDDEN_ROLE"
	ReasonRateLimited           ReasonCode = "RATE_LIMITED"
)

// Error codes carried by error envelopes.
const (
	CodeTokenInvalid       = "TOKEN_INVALID"
	CodeRolesInvalid       = "ROLES_INVALID"
	CodeKeySetUnavailable  = "KEYSET_UNAVAILABLE"
	CodeStorageUnavailable = "STORAGE_UNAVAILABLE"
	CodeInternalError      = "INTERNAL_ERROR"
	CodeNotFound           = "NOT_FOUND"
	CodeMethodNotAllowed   = "METHOD_NOT_ALLOWED"
)
