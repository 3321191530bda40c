// Package http implements the HTTP transport of the gateway.
//
// It wires the chi router, stamps every request with a correlation id,
// logs one outcome line per classified response and serves the gateway's
// own routes through the request pipeline.
package http
