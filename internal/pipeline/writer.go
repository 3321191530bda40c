package pipeline

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-tenant-gateway/internal/utils"
	"github.com/MKhiriev/go-tenant-gateway/models"
)

// Response headers set by the writer.
const (
	HeaderRateLimitLimit     = "X-RateLimit-Limit"
	HeaderRateLimitRemaining = "X-RateLimit-Remaining"
)

// WriteResponse stamps the correlation id on resp's envelope and writes it.
// A missing envelope, or one that is none of success, refusal or error, is
// replaced by an INTERNAL_ERROR. Refusals are logged here with the identity
// known at this point, separately from the outcome log written by the HTTP
// layer.
func WriteResponse(w http.ResponseWriter, rc *RequestContext, resp *Response) {
	if resp == nil || resp.Envelope == nil || !resp.Envelope.Valid() {
		rc.log().Err(ErrNoResponse).Msg("no valid response envelope to write")
		resp = FromError(ErrNoResponse)
	}
	rc.response = resp

	envelope := resp.Envelope
	if envelope.CorrelationID == "" {
		envelope.CorrelationID = rc.RequestID
	}

	if envelope.IsRefusal() {
		logRefusal(rc, envelope.Reason)
	}

	for key, values := range resp.Header {
		for _, v := range values {
			w.Header().Add(key, v)
		}
	}
	if rc.RateLimit != nil && rc.RateLimit.Allowed {
		w.Header().Set(HeaderRateLimitLimit, strconv.Itoa(rc.RateLimit.Limit))
		w.Header().Set(HeaderRateLimitRemaining, strconv.Itoa(rc.RateLimit.Remaining))
	}

	_, err := utils.WriteJSON(w, envelope, resp.Status)
	switch {
	case err == nil:
	case errors.Is(err, utils.ErrEncodingJSON):
		rc.log().Err(err).Msg("error encoding response envelope")

		fallback := models.Failure(models.CodeInternalError, internalErrorMessage)
		fallback.CorrelationID = rc.RequestID
		rc.response = &Response{Status: http.StatusInternalServerError, Envelope: fallback}
		_, _ = utils.WriteJSON(w, fallback, http.StatusInternalServerError)
	default:
		// the status line is already out; the client went away
		rc.log().Warn().Err(err).Msg("error writing response envelope")
	}
}

func logRefusal(rc *RequestContext, reason models.ReasonCode) {
	event := rc.log().Info().Str("reason", string(reason))
	if actorID := rc.ActorID(); actorID != "" {
		event = event.Str("actor_id", actorID)
	}
	if rc.Partner != nil {
		event = event.Str("partner_token_id", rc.Partner.TokenID)
	}
	if tenantID := rc.TenantID(); tenantID != "" {
		event = event.Str("tenant_id", tenantID)
	}
	event.Msg("request refused")
}
