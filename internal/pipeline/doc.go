// Package pipeline runs every gateway request through a fixed sequence of
// stages around a route handler.
//
// Per request the order is:
//
//	correlation stamping (HTTP layer, builds the RequestContext)
//	partner rate limit      (before any storage work)
//	transaction open
//	authentication          (partner token or bearer JWT)
//	tenant resolution
//	route policies          (identity, roles, app enablement)
//	handler
//	finalize                (commit or rollback, exactly once)
//	envelope write          (refusal log, correlation_id default)
//	outcome log             (HTTP layer)
//
// A stage either returns nil to continue or a terminal *Response that stops
// the run. Stage and handler errors become error envelopes and roll back.
package pipeline
