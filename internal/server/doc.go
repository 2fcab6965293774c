// Package server runs the portal's HTTP server.
//
// It owns the server lifecycle: startup, signal handling and graceful
// shutdown, including the background workers that live as long as the
// server does.
package server
