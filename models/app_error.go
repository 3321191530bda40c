// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "fmt"

// AppError is an error whose Code and Message are safe to show to a client.
// Any other error reaching the pipeline boundary is reported with a generic
// message instead.
type AppError struct {
	// Status is the HTTP status code written with the error envelope.
	Status int

	// Code is the stable machine-readable error code.
	Code string

	// Message is the client-facing description.
	Message string

	// Err is the underlying cause, never serialized.
	Err error
}

// NewAppError constructs an [AppError] without a cause.
func NewAppError(status int, code, message string) *AppError {
	return &AppError{Status: status, Code: code, Message: message}
}

// Error implements the error interface.
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause.
func (e *AppError) Unwrap() error {
	return e.Err
}
