// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-tenant-gateway/internal/pipeline"
	"github.com/MKhiriev/go-tenant-gateway/models"
)

// methodNotAllowed is registered as the router's MethodNotAllowed handler.
//
// Chi answers 405 when a path matches but its method is not handled. The
// gateway answers 404 instead so that callers using an unsupported method
// cannot tell the route exists.
func (h *Handler) methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	h.writeEnvelope(w, r, pipeline.Fail(http.StatusNotFound, models.CodeMethodNotAllowed, "route not found"))
}

// notFound answers unknown paths with a NOT_FOUND error envelope.
func (h *Handler) notFound(w http.ResponseWriter, r *http.Request) {
	h.writeEnvelope(w, r, pipeline.Fail(http.StatusNotFound, models.CodeNotFound, "route not found"))
}

func (h *Handler) writeEnvelope(w http.ResponseWriter, r *http.Request, resp *pipeline.Response) {
	rc := pipeline.FromContext(r.Context())
	if rc == nil {
		rc = pipeline.NewRequestContext(r, h.ids.Generate(), h.logger)
	}
	pipeline.WriteResponse(w, rc, resp)
}
