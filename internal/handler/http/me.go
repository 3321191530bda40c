package http

import (
	"context"

	"github.com/MKhiriev/go-tenant-gateway/internal/audit"
	"github.com/MKhiriev/go-tenant-gateway/internal/pipeline"
	"github.com/MKhiriev/go-tenant-gateway/models"
)

type meResponse struct {
	TenantID string `json:"tenant_id"`
	Host     string `json:"host"`

	// user requests
	ActorID string         `json:"actor_id,omitempty"`
	Roles   models.RoleSet `json:"roles,omitempty"`

	// partner requests
	PartnerAgencyID string `json:"partner_agency_id,omitempty"`
}

func (h *Handler) health(context.Context, *pipeline.RequestContext) (*pipeline.Response, error) {
	return pipeline.OK(map[string]bool{"ok": true}), nil
}

// me describes the caller and records that it looked itself up.
func (h *Handler) me(ctx context.Context, rc *pipeline.RequestContext) (*pipeline.Response, error) {
	actorID := rc.ActorID()

	err := rc.Scope.Audit.Write(ctx, models.AuditEvent{
		TenantID:  rc.TenantID(),
		ActorID:   actorID,
		EventType: audit.EventMeRead,
		EntityID:  actorID,
	})
	if err != nil {
		return nil, err
	}

	body := meResponse{
		TenantID: rc.Tenant.TenantID,
		Host:     rc.Tenant.Host,
	}
	if rc.Partner != nil {
		body.PartnerAgencyID = rc.Partner.PartnerAgencyID
	} else {
		body.ActorID = rc.Auth.ActorID
		body.Roles = rc.Auth.Roles
	}

	return pipeline.OK(body), nil
}
