// Package http implements the HTTP transport layer of the application.
//
// It exposes route wiring, request handlers, and middleware for the two
// inbound surfaces: the terminal polling endpoint (/iclock/getrequest), which
// speaks the plain-text firmware protocol, and the /api/version endpoint used
// by fleet tooling. Cross-cutting concerns such as request tracing, access
// logging, and request timeouts are handled here before requests are
// delegated to the service layer.
package http
