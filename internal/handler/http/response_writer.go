// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "net/http"

// maxCapturedBody bounds how much of a response body is kept for outcome
// classification. Envelopes are far smaller.
const maxCapturedBody = 64 << 10

// responseWriter is a thin decorator around [http.ResponseWriter] that
// records the status code and a copy of the body so the outcome middleware
// can classify the response after the handler returns.
//
// WriteHeader is forwarded to the underlying writer exactly once.
type responseWriter struct {
	http.ResponseWriter

	// status is zero until WriteHeader, explicit or implicit, is called.
	status      int
	wroteHeader bool

	// size is the total number of bytes written to the body.
	size int

	// body holds the first maxCapturedBody bytes of the body.
	body []byte
}

// WriteHeader records statusCode and forwards it on the first call only.
func (w *responseWriter) WriteHeader(statusCode int) {
	if w.wroteHeader {
		return
	}
	w.status = statusCode
	w.wroteHeader = true
	w.ResponseWriter.WriteHeader(statusCode)
}

// Write writes b, implicitly sending 200 OK first if no status was set.
func (w *responseWriter) Write(b []byte) (int, error) {
	if !w.wroteHeader {
		w.WriteHeader(http.StatusOK)
	}
	n, err := w.ResponseWriter.Write(b)
	w.size += n

	if room := maxCapturedBody - len(w.body); room > 0 {
		w.body = append(w.body, b[:min(n, room)]...)
	}
	return n, err
}

// Unwrap exposes the underlying writer to http.ResponseController.
func (w *responseWriter) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}

// statusCode returns the recorded status, 200 if nothing was written.
func (w *responseWriter) statusCode() int {
	if w.status == 0 {
		return http.StatusOK
	}
	return w.status
}
