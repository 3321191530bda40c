// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package auth

import (
	"strings"

	"github.com/MKhiriev/go-tenant-gateway/models"
)

const (
	RoleAdmin   models.Role = "admin"
	RoleManager models.Role = "manager"
	RoleAgent   models.Role = "agent"
	RoleViewer  models.Role = "viewer"
	RoleAuditor models.Role = "auditor"
)

var allowedRoles = models.NewRoleSet(RoleAdmin, RoleManager, RoleAgent, RoleViewer, RoleAuditor)

// Normalize trims and lower-cases every raw role and keeps the ones on the
// allow-list. Unknown roles are dropped silently; nil input yields an empty set.
func Normalize(raw []string) models.RoleSet {
	roles := make(models.RoleSet, len(raw))
	for _, r := range raw {
		role := models.Role(strings.ToLower(strings.TrimSpace(r)))
		if IsAllowed(role) {
			roles[role] = struct{}{}
		}
	}

	return roles
}

// IsAllowed reports whether role is on the allow-list. The check is exact:
// callers normalize first.
func IsAllowed(role models.Role) bool {
	return allowedRoles.Has(role)
}
