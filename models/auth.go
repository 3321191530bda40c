// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// AuthClaims is the verified content of a bearer token.
type AuthClaims struct {
	// Subject is the "sub" claim, the acting user.
	Subject string

	// TenantID is the tenant the token was issued for.
	TenantID string

	// Roles is the normalized role set. It may be empty when every raw role
	// was filtered out; callers treat that as an authorization failure.
	Roles RoleSet
}

// AuthContext is the identity of an authenticated user request. It is
// attached once per request and never modified afterwards.
type AuthContext struct {
	ActorID  string
	TenantID string
	Roles    RoleSet
}

// PartnerContext is the identity of a partner request established from an
// opaque partner token. A request carries either an AuthContext or a
// PartnerContext, never both.
type PartnerContext struct {
	TokenID         string
	TenantID        string
	PartnerAgencyID string
}
