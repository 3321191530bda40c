// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// TenantStatusActive is the only tenant status usable by the gateway.
const TenantStatusActive = "active"

// Tenant is a row of the tenant registry (platform.tenants).
type Tenant struct {
	ID     string
	Host   string
	Slug   string
	Status string
}

// IsActive reports whether the tenant may serve requests.
func (t Tenant) IsActive() bool {
	return t.Status == TenantStatusActive
}

// TenantContext is the tenant a request runs under, resolved after
// authentication.
type TenantContext struct {
	TenantID string `json:"tenant_id"`
	Host     string `json:"host"`
	Slug     string `json:"slug,omitempty"`
}
