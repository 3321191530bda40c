package http

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newResponseWriter(rr *httptest.ResponseRecorder) *responseWriter {
	return &responseWriter{ResponseWriter: rr}
}

func TestResponseWriter_WriteHeader_FirstWins(t *testing.T) {
	tests := []struct {
		name           string
		statusCodes    []int
		expectedStatus int
	}{
		{name: "200 OK", statusCodes: []int{http.StatusOK}, expectedStatus: http.StatusOK},
		{name: "401", statusCodes: []int{http.StatusUnauthorized}, expectedStatus: http.StatusUnauthorized},
		{name: "429", statusCodes: []int{http.StatusTooManyRequests}, expectedStatus: http.StatusTooManyRequests},
		{
			name:           "double call, first wins",
			statusCodes:    []int{http.StatusOK, http.StatusGatewayTimeout},
			expectedStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			w := newResponseWriter(rr)

			for _, code := range tt.statusCodes {
				w.WriteHeader(code)
			}

			assert.Equal(t, tt.expectedStatus, w.status)
			assert.Equal(t, tt.expectedStatus, rr.Code)
			assert.True(t, w.wroteHeader)
		})
	}
}

func TestResponseWriter_Write(t *testing.T) {
	tests := []struct {
		name         string
		writes       []string
		explicitCode int
		wantStatus   int
		wantBody     string
	}{
		{
			name:       "single write, implicit 200",
			writes:     []string{`{"success":true}`},
			wantStatus: http.StatusOK,
			wantBody:   `{"success":true}`,
		},
		{
			name:       "multiple writes are concatenated",
			writes:     []string{`{"success":`, `false,`, `"reason":"X"}`},
			wantStatus: http.StatusOK,
			wantBody:   `{"success":false,"reason":"X"}`,
		},
		{
			name:         "explicit status kept",
			writes:       []string{"not found"},
			explicitCode: http.StatusNotFound,
			wantStatus:   http.StatusNotFound,
			wantBody:     "not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			w := newResponseWriter(rr)

			if tt.explicitCode != 0 {
				w.WriteHeader(tt.explicitCode)
			}
			for _, data := range tt.writes {
				_, err := w.Write([]byte(data))
				require.NoError(t, err)
			}

			assert.Equal(t, tt.wantStatus, w.statusCode())
			assert.Equal(t, tt.wantBody, string(w.body))
			assert.Equal(t, len(tt.wantBody), w.size)
			assert.Equal(t, tt.wantBody, rr.Body.String())
		})
	}
}

func TestResponseWriter_CapturesBoundedBody(t *testing.T) {
	rr := httptest.NewRecorder()
	w := newResponseWriter(rr)

	big := bytes.Repeat([]byte("a"), maxCapturedBody+100)
	_, err := w.Write(big)
	require.NoError(t, err)
	_, err = w.Write([]byte("tail"))
	require.NoError(t, err)

	assert.Len(t, w.body, maxCapturedBody)
	assert.Equal(t, maxCapturedBody+104, w.size)
	assert.Equal(t, maxCapturedBody+104, rr.Body.Len())
}

func TestResponseWriter_NothingWritten(t *testing.T) {
	w := newResponseWriter(httptest.NewRecorder())

	assert.Equal(t, 0, w.status)
	assert.Equal(t, http.StatusOK, w.statusCode())
	assert.Nil(t, w.body)
}

func TestResponseWriter_ProxiesHeaders(t *testing.T) {
	rr := httptest.NewRecorder()
	w := newResponseWriter(rr)

	w.Header().Set("X-Custom", "value")
	w.WriteHeader(http.StatusTeapot)

	assert.Equal(t, "value", rr.Header().Get("X-Custom"))
	assert.Equal(t, http.StatusTeapot, rr.Code)
	assert.Same(t, rr, w.Unwrap())
}
