// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tenant maps a request to the tenant it acts for.
package tenant

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strings"

	"github.com/MKhiriev/go-tenant-gateway/internal/logger"
	"github.com/MKhiriev/go-tenant-gateway/models"
)

// ErrRegistryUnavailable wraps tenant registry failures.
var ErrRegistryUnavailable = errors.New("tenant registry unavailable")

// Resolver produces the TenantContext of a request. It only reads the
// registry.
type Resolver struct {
	registry Registry
}

func NewResolver(registry Registry) *Resolver {
	return &Resolver{registry: registry}
}

// NormalizeHost lower-cases a Host header value and strips its port and a
// trailing dot.
func NormalizeHost(raw string) string {
	host := strings.ToLower(strings.TrimSpace(raw))
	if h, _, err := net.SplitHostPort(host); err == nil {
		host = h
	}
	return strings.TrimSuffix(host, ".")
}

// Resolve returns the tenant context for host given the identity already
// established for the request. At most one of auth and partner is non-nil.
//
// On refusal the returned reason is non-empty:
//   - partner requests use the partner's tenant; a host that resolves to a
//     different tenant is TENANT_CONTEXT_MISMATCH;
//   - user requests need the host to resolve to the token's tenant, so an
//     unresolved host is TENANT_NOT_FOUND and another tenant is
//     TENANT_CONTEXT_MISMATCH;
//   - anonymous requests resolve from the host alone.
func (r *Resolver) Resolve(ctx context.Context, host string, auth *models.AuthContext, partner *models.PartnerContext) (models.TenantContext, models.ReasonCode, error) {
	log := logger.FromContext(ctx)

	byHost, found, err := r.lookup(ctx, host)
	if err != nil {
		return models.TenantContext{}, "", err
	}

	switch {
	case partner != nil:
		if found && byHost.ID != partner.TenantID {
			log.Info().
				Str("host", host).
				Str("host_tenant_id", byHost.ID).
				Str("partner_tenant_id", partner.TenantID).
				Msg("partner tenant does not match host")
			return models.TenantContext{}, models.ReasonTenantContextMismatch, nil
		}
		if found {
			return contextOf(byHost, host), "", nil
		}
		return models.TenantContext{TenantID: partner.TenantID, Host: host}, "", nil

	case auth != nil:
		if !found {
			return models.TenantContext{}, models.ReasonTenantNotFound, nil
		}
		if byHost.ID != auth.TenantID {
			log.Info().
				Str("host", host).
				Str("host_tenant_id", byHost.ID).
				Str("token_tenant_id", auth.TenantID).
				Msg("token tenant does not match host")
			return models.TenantContext{}, models.ReasonTenantContextMismatch, nil
		}
		return contextOf(byHost, host), "", nil

	default:
		if !found {
			return models.TenantContext{}, models.ReasonTenantNotFound, nil
		}
		return contextOf(byHost, host), "", nil
	}
}

// AppEnabled reports whether appKey is switched on for tenantID.
func (r *Resolver) AppEnabled(ctx context.Context, tenantID, appKey string) (bool, error) {
	enabled, err := r.registry.IsAppEnabled(ctx, tenantID, appKey)
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrRegistryUnavailable, err)
	}
	return enabled, nil
}

func (r *Resolver) lookup(ctx context.Context, host string) (models.Tenant, bool, error) {
	if host == "" {
		return models.Tenant{}, false, nil
	}

	t, found, err := r.registry.ResolveByHost(ctx, host)
	if err != nil {
		return models.Tenant{}, false, fmt.Errorf("%w: %w", ErrRegistryUnavailable, err)
	}
	// the registry filters by status already; inactive rows are still refused
	if found && !t.IsActive() {
		return models.Tenant{}, false, nil
	}

	return t, found, nil
}

func contextOf(t models.Tenant, host string) models.TenantContext {
	return models.TenantContext{TenantID: t.ID, Host: host, Slug: t.Slug}
}
