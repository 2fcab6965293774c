// Package http implements the JSON API of the portal server.
//
// It exposes route wiring, request handlers, and middleware. Cross-cutting
// concerns such as session authentication, request tracing, access logging,
// metrics, and response compression are handled in this package before
// requests are delegated to the service layer.
package http
