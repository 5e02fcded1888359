// Package http implements the HTTP transport layer of the application.
//
// It exposes route wiring, request handlers, and middleware used by the
// editor-facing API: per-collection tiddler CRUD, change listings, and sync
// status/trigger endpoints. Cross-cutting concerns such as request tracing
// and access logging are handled in this package before requests are
// delegated to the service layer.
package http
