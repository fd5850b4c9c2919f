// Package http implements the HTTP transport layer of the restaurants API.
// It provides the route table, request handlers, validation and middleware
// for authentication, logging and tracing. Requests are validated at this
// layer before being forwarded to the service layer; validation failures
// enumerate every failing field and never produce partial side effects.
package http
