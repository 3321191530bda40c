// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// AuditEvent is an append-only record of a significant actor action.
type AuditEvent struct {
	// ID is assigned by the audit writer (UUIDv7).
	ID string

	// TenantID is empty for platform-level events and stored as NULL.
	TenantID string

	// ActorID identifies who acted: a user subject or "partner:<token id>".
	ActorID string

	// EventType is a dotted event name, e.g. "auth.me.read".
	EventType string

	EntityID string
	Reason   string
	Metadata map[string]any

	// CreatedAt is assigned by the audit writer.
	CreatedAt time.Time
}
