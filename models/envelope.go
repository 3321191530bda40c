// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "encoding/json"

// Envelope is the only response shape the gateway writes. It is one of three
// variants, selected by which field is populated:
//   - success: Success == true, Data carries the payload;
//   - refusal: Reason is set, an expected policy-level negative outcome;
//   - error:   Error is set, an unexpected or system-level failure.
//
// CorrelationID is always present on the wire. The pipeline fills it with the
// request identifier when the handler leaves it empty.
type Envelope struct {
	// Success reports whether the request produced a data payload.
	Success bool

	// Data is the handler payload of a success envelope.
	Data any

	// Reason is the refusal code of a refusal envelope.
	Reason ReasonCode

	// Details carries optional refusal context (e.g. retry_after_seconds).
	Details map[string]any

	// Error describes a failure of an error envelope.
	Error *EnvelopeError

	// CorrelationID ties the response to the log lines of the request.
	CorrelationID string
}

// EnvelopeError is the body of an error envelope.
type EnvelopeError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Success builds a success envelope around data.
func Success(data any) *Envelope {
	return &Envelope{Success: true, Data: data}
}

// Refusal builds a refusal envelope. details may be nil.
func Refusal(reason ReasonCode, details map[string]any) *Envelope {
	return &Envelope{Reason: reason, Details: details}
}

// Failure builds an error envelope.
func Failure(code, message string) *Envelope {
	return &Envelope{Error: &EnvelopeError{Code: code, Message: message}}
}

// IsRefusal reports whether e is a refusal envelope.
func (e *Envelope) IsRefusal() bool {
	return !e.Success && e.Error == nil && e.Reason != ""
}

// Valid reports whether e is exactly one of a success, a refusal or an
// error.
func (e *Envelope) Valid() bool {
	switch {
	case e.Success:
		return e.Error == nil && e.Reason == ""
	case e.Error != nil:
		return e.Reason == ""
	default:
		return e.Reason != ""
	}
}

type successWire struct {
	Success       bool   `json:"success"`
	Data          any    `json:"data"`
	CorrelationID string `json:"correlation_id"`
}

type refusalWire struct {
	Success       bool           `json:"success"`
	Reason        ReasonCode     `json:"reason"`
	Details       map[string]any `json:"details,omitempty"`
	CorrelationID string         `json:"correlation_id"`
}

type errorWire struct {
	Success       bool           `json:"success"`
	Error         *EnvelopeError `json:"error"`
	CorrelationID string         `json:"correlation_id"`
}

// MarshalJSON writes exactly one of data, reason or error next to success and
// correlation_id.
func (e Envelope) MarshalJSON() ([]byte, error) {
	switch {
	case e.Success:
		return json.Marshal(successWire{Success: true, Data: e.Data, CorrelationID: e.CorrelationID})
	case e.Error != nil:
		return json.Marshal(errorWire{Error: e.Error, CorrelationID: e.CorrelationID})
	default:
		return json.Marshal(refusalWire{Reason: e.Reason, Details: e.Details, CorrelationID: e.CorrelationID})
	}
}
