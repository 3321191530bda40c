package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/go-tenant-gateway/internal/logger"
	"github.com/MKhiriev/go-tenant-gateway/internal/pipeline"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// withOutcomeLogging emits one "request outcome" line per classified
// response. Errors log at error level, successes and refusals at info.
// Responses that are not envelopes and carry a status below 400 are not
// logged.
func (h *Handler) withOutcomeLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		uri := r.RequestURI
		method := r.Method

		lw := &responseWriter{
			ResponseWriter: w,
		}

		next.ServeHTTP(lw, r)

		status := lw.statusCode()
		outcome, ok := pipeline.Classify(status, lw.body)
		if !ok {
			return
		}

		var tenantID, correlationID string
		if rc := pipeline.FromContext(r.Context()); rc != nil {
			tenantID = rc.TenantID()
			correlationID = rc.RequestID
		}

		log := logger.FromRequest(r)
		var event *zerolog.Event
		if outcome.Kind == pipeline.OutcomeError {
			event = log.Error()
		} else {
			event = log.Info()
		}

		event = event.Str("outcome", string(outcome.Kind))
		switch outcome.Kind {
		case pipeline.OutcomeRefusal:
			event = event.Str("reason", outcome.Reason)
		case pipeline.OutcomeError:
			event = event.Str("code", outcome.Code)
		}
		if tenantID != "" {
			event = event.Str("tenant_id", tenantID)
		}

		event.
			Int("status", status).
			Str("method", method).
			Str("uri", uri).
			Dur("duration", time.Since(start)).
			Msg("request outcome")

		span := trace.SpanFromContext(r.Context())
		span.SetAttributes(
			attribute.String("correlation_id", correlationID),
			attribute.String("outcome", string(outcome.Kind)),
		)
		if tenantID != "" {
			span.SetAttributes(attribute.String("tenant_id", tenantID))
		}
	})
}
