// Package http implements the REST transport of the notes server.
// It provides middleware, route handlers and error mapping. Authentication,
// tracing, logging and request timeouts are handled at this layer before
// requests are forwarded to the service layer.
package http
