// Package server runs the gateway's HTTP server.
//
// It wraps the router with OpenTelemetry instrumentation, starts serving,
// waits for a stop signal and shuts the server down gracefully.
package server
