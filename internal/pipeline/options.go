package pipeline

import (
	"github.com/MKhiriev/go-tenant-gateway/internal/auth"
	"github.com/MKhiriev/go-tenant-gateway/models"
)

// RouteOption configures the policy a route is served under.
type RouteOption func(*route)

type route struct {
	public          bool
	requireIdentity bool
	// restricted is set by RequireRoles even when none of the given roles
	// is on the allow-list, so such a route admits nobody.
	restricted bool
	roles      []models.Role
	appKey     string
}

func newRoute(opts []RouteOption) route {
	var r route
	for _, opt := range opts {
		opt(&r)
	}
	return r
}

// Public serves the route without a transaction, authentication or tenant
// resolution. Used for health checks.
func Public() RouteOption {
	return func(r *route) {
		r.public = true
	}
}

// RequireIdentity refuses anonymous requests with AUTH_REQUIRED.
func RequireIdentity() RouteOption {
	return func(r *route) {
		r.requireIdentity = true
	}
}

// RequireRoles admits user requests holding any of roles and refuses the
// rest with FORBIDDEN_ROLE. Partner requests carry no roles and are refused.
// It implies RequireIdentity.
func RequireRoles(roles ...models.Role) RouteOption {
	return func(r *route) {
		r.requireIdentity = true
		r.restricted = true
		for _, role := range roles {
			if auth.IsAllowed(role) {
				r.roles = append(r.roles, role)
			}
		}
	}
}

// RequireApp refuses requests of tenants that have appKey switched off with
// APP_DISABLED.
func RequireApp(appKey string) RouteOption {
	return func(r *route) {
		r.appKey = appKey
	}
}
