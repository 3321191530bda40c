// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package pipeline

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-tenant-gateway/internal/store"
	"github.com/MKhiriev/go-tenant-gateway/models"
)

const (
	internalErrorMessage      = "internal server error"
	storageUnavailableMessage = "storage temporarily unavailable"
)

// Response is what a stage or handler hands back to the driver.
type Response struct {
	Status   int
	Envelope *models.Envelope
	Header   http.Header
}

// OK wraps data in a success envelope.
func OK(data any) *Response {
	return &Response{Status: http.StatusOK, Envelope: models.Success(data)}
}

// Refuse returns a refusal. Refusals travel with a success-range status.
func Refuse(reason models.ReasonCode, details map[string]any) *Response {
	return &Response{Status: http.StatusOK, Envelope: models.Refusal(reason, details)}
}

// Fail returns an error envelope with the given status.
func Fail(status int, code, message string) *Response {
	return &Response{Status: status, Envelope: models.Failure(code, message)}
}

// RateLimited is the refusal for a partner over its window budget.
func RateLimited(retryAfterSeconds int) *Response {
	resp := Refuse(models.ReasonRateLimited, map[string]any{"retry_after_seconds": retryAfterSeconds})
	resp.Status = http.StatusTooManyRequests
	resp.Header = http.Header{"Retry-After": []string{strconv.Itoa(retryAfterSeconds)}}
	return resp
}

// FromError converts err into an error envelope. Only *models.AppError
// messages reach the client. A transient storage failure is a 503; anything
// else is an opaque 500.
func FromError(err error) *Response {
	var appErr *models.AppError
	if errors.As(err, &appErr) {
		status := appErr.Status
		if status == 0 {
			status = http.StatusInternalServerError
		}
		return Fail(status, appErr.Code, appErr.Message)
	}
	if errors.Is(err, store.ErrUnavailable) {
		return Fail(http.StatusServiceUnavailable, models.CodeStorageUnavailable, storageUnavailableMessage)
	}
	return Fail(http.StatusInternalServerError, models.CodeInternalError, internalErrorMessage)
}
