// Package client talks to the userdb HTTP API.
//
// Client is the transport-agnostic contract used by the CLI; HTTPClient
// implements it over net/http with JSON bodies.
//
// # Error Handling
//
// A response with a non-2xx status becomes *APIError carrying the status code
// and the server's "detail" text. Failures to reach the server at all wrap
// ErrUnavailable, so callers can tell the two apart with errors.Is / errors.As.
package client
