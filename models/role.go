// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"slices"
)

// Role is a canonical (trimmed, lower-case) role drawn from the fixed
// allow-list in the auth package.
type Role string

// RoleSet is an unordered set of roles.
type RoleSet map[Role]struct{}

// NewRoleSet builds a set from roles.
func NewRoleSet(roles ...Role) RoleSet {
	set := make(RoleSet, len(roles))
	for _, role := range roles {
		set[role] = struct{}{}
	}
	return set
}

// Has reports whether role is in the set.
func (s RoleSet) Has(role Role) bool {
	_, ok := s[role]
	return ok
}

// HasAny reports whether at least one of roles is in the set.
func (s RoleSet) HasAny(roles ...Role) bool {
	for _, role := range roles {
		if s.Has(role) {
			return true
		}
	}
	return false
}

// Sorted returns the roles in lexical order.
func (s RoleSet) Sorted() []string {
	out := make([]string, 0, len(s))
	for role := range s {
		out = append(out, string(role))
	}
	slices.Sort(out)
	return out
}

// MarshalJSON writes the set as a sorted JSON array.
func (s RoleSet) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Sorted())
}
