package http

import (
	"net/http"
	"regexp"

	"github.com/MKhiriev/go-tenant-gateway/internal/pipeline"
)

const correlationIDHeader = "X-Correlation-ID"

// inbound correlation ids outside this alphabet are replaced
var correlationIDPattern = regexp.MustCompile(`^[A-Za-z0-9._:-]{1,128}$`)

// withCorrelationID reuses a well-formed inbound correlation id or issues a
// new UUIDv7, then builds the RequestContext and the request logger around
// it. The id is echoed in the response header.
func (h *Handler) withCorrelationID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		correlationID := r.Header.Get(correlationIDHeader)
		if !correlationIDPattern.MatchString(correlationID) {
			correlationID = h.ids.Generate()
		}

		l := h.logger.WithCorrelationID(correlationID)
		rc := pipeline.NewRequestContext(r, correlationID, l)

		ctx := l.WithContext(r.Context())
		ctx = pipeline.WithRequestContext(ctx, rc)

		w.Header().Set(correlationIDHeader, correlationID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
