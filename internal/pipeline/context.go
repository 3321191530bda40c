package pipeline

import (
	"context"
	"net/http"
	"time"

	"github.com/MKhiriev/go-tenant-gateway/internal/audit"
	"github.com/MKhiriev/go-tenant-gateway/internal/logger"
	"github.com/MKhiriev/go-tenant-gateway/internal/ratelimit"
	"github.com/MKhiriev/go-tenant-gateway/internal/tenant"
	"github.com/MKhiriev/go-tenant-gateway/models"
)

type requestContextKey struct{}

// RequestContext is the state of one request. It is created once by the
// correlation middleware and passed explicitly to every stage and handler.
// Identity and tenant fields are set by their stages and never reset.
type RequestContext struct {
	// RequestID is the correlation identifier of the request.
	RequestID string

	Method string
	Path   string

	// Host is the normalized Host header: lower-case, no port.
	Host string

	Header    http.Header
	StartedAt time.Time
	Logger    *logger.Logger

	// Auth is set on the bearer path, Partner on the partner path. At most
	// one of them is non-nil.
	Auth    *models.AuthContext
	Partner *models.PartnerContext
	Tenant  *models.TenantContext

	// RateLimit holds the limiter decision of a partner request.
	RateLimit *ratelimit.Decision

	// Tx is the request transaction; nil on public routes.
	Tx *TxScope

	// Scope holds the collaborators bound to Tx.
	Scope Scope

	response *Response
}

// NewRequestContext captures the parts of r the pipeline reads.
func NewRequestContext(r *http.Request, requestID string, log *logger.Logger) *RequestContext {
	return &RequestContext{
		RequestID: requestID,
		Method:    r.Method,
		Path:      r.URL.Path,
		Host:      tenant.NormalizeHost(r.Host),
		Header:    r.Header,
		StartedAt: time.Now(),
		Logger:    log,
	}
}

// WithRequestContext attaches rc to ctx.
func WithRequestContext(ctx context.Context, rc *RequestContext) context.Context {
	return context.WithValue(ctx, requestContextKey{}, rc)
}

// FromContext returns the RequestContext attached to ctx, or nil.
func FromContext(ctx context.Context) *RequestContext {
	rc, _ := ctx.Value(requestContextKey{}).(*RequestContext)
	return rc
}

// TenantID returns the resolved tenant id, or "" before resolution.
func (rc *RequestContext) TenantID() string {
	if rc.Tenant == nil {
		return ""
	}
	return rc.Tenant.TenantID
}

// ActorID returns the user subject, "partner:<token id>" for partners, or
// "" for anonymous requests.
func (rc *RequestContext) ActorID() string {
	switch {
	case rc.Auth != nil:
		return rc.Auth.ActorID
	case rc.Partner != nil:
		return audit.PartnerActor(rc.Partner.TokenID)
	}
	return ""
}

// Response returns the response written for the request, or nil.
func (rc *RequestContext) Response() *Response {
	return rc.response
}

func (rc *RequestContext) log() *logger.Logger {
	if rc.Logger == nil {
		return logger.Nop()
	}
	return rc.Logger
}
