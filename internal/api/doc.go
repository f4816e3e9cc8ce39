// Package api exposes the generation gateway over HTTP. It decodes the
// operation input, runs it through the gateway, and maps the gateway's
// error taxonomy onto status codes. It also serves the audit history and
// a health check.
package api
