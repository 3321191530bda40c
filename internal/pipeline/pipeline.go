// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package pipeline

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/MKhiriev/go-tenant-gateway/internal/audit"
	"github.com/MKhiriev/go-tenant-gateway/internal/auth"
	"github.com/MKhiriev/go-tenant-gateway/internal/logger"
	"github.com/MKhiriev/go-tenant-gateway/internal/partner"
	"github.com/MKhiriev/go-tenant-gateway/internal/ratelimit"
	"github.com/MKhiriev/go-tenant-gateway/internal/store"
	"github.com/MKhiriev/go-tenant-gateway/internal/tenant"
	"github.com/MKhiriev/go-tenant-gateway/internal/utils"
	"github.com/MKhiriev/go-tenant-gateway/models"
)

// PartnerTokenHeader carries the opaque partner credential.
const PartnerTokenHeader = "X-Partner-Token"

var (
	ErrMissingDependency = errors.New("pipeline dependency is missing")
	ErrPanic             = errors.New("panic while handling request")
	ErrNoResponse        = errors.New("handler returned no response")
)

// RateLimiter is the keyed counter consulted for partner credentials.
type RateLimiter interface {
	Check(identity string, now time.Time) ratelimit.Decision
}

// Scope holds the collaborators of one request, bound to its transaction.
type Scope struct {
	Partners partner.TokenResolver
	Tenants  tenant.Registry
	Audit    audit.Sink
}

// Deps are the process-wide collaborators of the pipeline.
type Deps struct {
	DB       TxOpener
	Verifier auth.TokenVerifier
	Limiter  RateLimiter

	// Bind builds the request Scope on top of the request transaction.
	// Defaults to StoreBinder.
	Bind func(q store.Querier) Scope

	// Now defaults to time.Now.
	Now func() time.Time
}

// Handler serves a request once every stage has admitted it.
type Handler func(ctx context.Context, rc *RequestContext) (*Response, error)

// Stage is one step of the request pipeline. A non-nil response or error
// ends the request; (nil, nil) passes it to the next stage.
type Stage func(ctx context.Context, rc *RequestContext) (*Response, error)

// Pipeline runs requests through correlation, rate limiting, transaction,
// authentication, tenant resolution, route policies and the handler, then
// finalizes the transaction.
type Pipeline struct {
	deps Deps
	ids  *utils.UUIDGenerator
}

// New validates deps and returns a Pipeline.
func New(deps Deps) (*Pipeline, error) {
	var missing []string
	if deps.DB == nil {
		missing = append(missing, "db")
	}
	if deps.Verifier == nil {
		missing = append(missing, "verifier")
	}
	if deps.Limiter == nil {
		missing = append(missing, "limiter")
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrMissingDependency, strings.Join(missing, ", "))
	}

	if deps.Bind == nil {
		deps.Bind = StoreBinder
	}
	if deps.Now == nil {
		deps.Now = time.Now
	}

	return &Pipeline{deps: deps, ids: utils.NewUUIDGenerator()}, nil
}

// Route wraps h into an http.Handler served under opts.
func (p *Pipeline) Route(h Handler, opts ...RouteOption) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		rc := FromContext(ctx)
		if rc == nil {
			rc = NewRequestContext(r, p.ids.Generate(), logger.FromContext(ctx))
			ctx = WithRequestContext(ctx, rc)
		}

		resp := p.Run(ctx, rc, h, opts...)
		WriteResponse(w, rc, resp)
	})
}

// Run drives rc through the pipeline and returns the response to write.
// The request transaction, if one was opened, is finalized before Run
// returns.
func (p *Pipeline) Run(ctx context.Context, rc *RequestContext, h Handler, opts ...RouteOption) *Response {
	policy := newRoute(opts)

	if policy.public {
		resp, err := drive(ctx, rc, []Stage{handlerStage(h)})
		if err != nil {
			return p.fail(rc, err)
		}
		return resp
	}

	if resp := p.limitPartner(rc); resp != nil {
		return resp
	}

	// the transaction outlives a cancelled request so that finalize decides
	// its fate instead of the driver
	txCtx := context.WithoutCancel(ctx)
	tx, err := p.deps.DB.OpenTx(txCtx)
	if err != nil {
		return p.fail(rc, err)
	}
	rc.Tx = newTxScope(tx)
	rc.Scope = p.deps.Bind(rc.Tx.Querier())

	resp, err := drive(ctx, rc, []Stage{
		p.authenticate,
		policy.identityStage,
		resolveTenant,
		policy.rolesStage,
		policy.appStage,
		handlerStage(h),
	})

	if err == nil && ctx.Err() != nil {
		err = fmt.Errorf("request aborted: %w", ctx.Err())
	}

	if err != nil {
		rc.Tx.Rollback(txCtx)
		return p.fail(rc, err)
	}

	rc.Tx.Commit(txCtx)
	return resp
}

// drive runs stages in order until one of them ends the request. A panic
// in a stage is returned as an error wrapping ErrPanic.
func drive(ctx context.Context, rc *RequestContext, stages []Stage) (resp *Response, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			resp, err = nil, fmt.Errorf("%w: %v", ErrPanic, rec)
		}
	}()

	for _, stage := range stages {
		resp, err = stage(ctx, rc)
		if err != nil || resp != nil {
			return resp, err
		}
	}

	return nil, ErrNoResponse
}

func handlerStage(h Handler) Stage {
	return func(ctx context.Context, rc *RequestContext) (*Response, error) {
		resp, err := h(ctx, rc)
		if err == nil && resp == nil {
			return nil, ErrNoResponse
		}
		return resp, err
	}
}

func (p *Pipeline) fail(rc *RequestContext, err error) *Response {
	rc.log().Err(err).
		Str("method", rc.Method).
		Str("path", rc.Path).
		Msg("request failed")
	return FromError(err)
}

// limitPartner consults the limiter for a partner credential before any
// storage work. The slot of an admitted request is never returned.
func (p *Pipeline) limitPartner(rc *RequestContext) *Response {
	raw, ok := partnerToken(rc.Header)
	if !ok || raw == "" {
		return nil
	}

	decision := p.deps.Limiter.Check(partner.Digest(raw), p.deps.Now())
	rc.RateLimit = &decision
	if decision.Allowed {
		return nil
	}

	rc.log().Info().
		Int("limit", decision.Limit).
		Int("retry_after_seconds", decision.RetryAfterSeconds).
		Msg("partner rate limit exceeded")
	return RateLimited(decision.RetryAfterSeconds)
}

// partnerToken reports whether the partner header is present at all and
// returns its trimmed value.
func partnerToken(h http.Header) (string, bool) {
	values, ok := h[http.CanonicalHeaderKey(PartnerTokenHeader)]
	if !ok {
		return "", false
	}
	if len(values) == 0 {
		return "", true
	}
	return strings.TrimSpace(values[0]), true
}

// authenticate establishes the request identity. The partner header, when
// present, is the only credential considered.
func (p *Pipeline) authenticate(ctx context.Context, rc *RequestContext) (*Response, error) {
	if raw, ok := partnerToken(rc.Header); ok {
		pc, found, err := rc.Scope.Partners.Resolve(ctx, raw)
		if err != nil {
			return nil, err
		}
		if !found {
			return Refuse(models.ReasonPartnerTokenInvalid, nil), nil
		}
		rc.Partner = &pc
		return nil, nil
	}

	header := rc.Header.Get("Authorization")
	if header == "" {
		return nil, nil
	}

	token, err := utils.ParseBearerToken(header)
	if err != nil {
		rc.log().Warn().Err(err).Str("reason", models.CodeTokenInvalid).Msg("bearer token rejected")
		return Fail(http.StatusUnauthorized, models.CodeTokenInvalid, "invalid token"), nil
	}

	claims, err := p.deps.Verifier.Verify(ctx, token)
	switch {
	case err == nil:
	case errors.Is(err, auth.ErrRolesInvalid):
		rc.log().Warn().Err(err).Str("reason", models.CodeRolesInvalid).Msg("bearer token rejected")
		return Fail(http.StatusUnauthorized, models.CodeRolesInvalid, "token carries no permitted roles"), nil
	case errors.Is(err, auth.ErrTokenInvalid):
		rc.log().Warn().Err(err).Str("reason", models.CodeTokenInvalid).Msg("bearer token rejected")
		return Fail(http.StatusUnauthorized, models.CodeTokenInvalid, "invalid token"), nil
	case errors.Is(err, auth.ErrKeySetUnavailable):
		return nil, &models.AppError{
			Status:  http.StatusInternalServerError,
			Code:    models.CodeKeySetUnavailable,
			Message: "signing keys are unavailable",
			Err:     err,
		}
	default:
		return nil, err
	}

	rc.Auth = &models.AuthContext{
		ActorID:  claims.Subject,
		TenantID: claims.TenantID,
		Roles:    claims.Roles,
	}
	return nil, nil
}

func resolveTenant(ctx context.Context, rc *RequestContext) (*Response, error) {
	tc, reason, err := tenant.NewResolver(rc.Scope.Tenants).Resolve(ctx, rc.Host, rc.Auth, rc.Partner)
	if err != nil {
		return nil, err
	}
	if reason != "" {
		return Refuse(reason, nil), nil
	}

	rc.Tenant = &tc
	return nil, nil
}

func (r route) identityStage(_ context.Context, rc *RequestContext) (*Response, error) {
	if r.requireIdentity && rc.Auth == nil && rc.Partner == nil {
		return Refuse(models.ReasonAuthRequired, nil), nil
	}
	return nil, nil
}

func (r route) rolesStage(_ context.Context, rc *RequestContext) (*Response, error) {
	if !r.restricted {
		return nil, nil
	}
	if rc.Auth != nil && rc.Auth.Roles.HasAny(r.roles...) {
		return nil, nil
	}
	return Refuse(models.ReasonForbiddenRole, nil), nil
}

func (r route) appStage(ctx context.Context, rc *RequestContext) (*Response, error) {
	if r.appKey == "" {
		return nil, nil
	}

	enabled, err := tenant.NewResolver(rc.Scope.Tenants).AppEnabled(ctx, rc.TenantID(), r.appKey)
	if err != nil {
		return nil, err
	}
	if !enabled {
		return Refuse(models.ReasonAppDisabled, map[string]any{"app": r.appKey}), nil
	}
	return nil, nil
}
