// Package server runs the notes transports.
//
// The HTTP API and the gRPC health endpoint are bound at construction and
// served until SIGINT, SIGTERM or SIGQUIT. On shutdown the health status
// flips to NOT_SERVING first, then both servers drain within the configured
// shutdown timeout.
package server
