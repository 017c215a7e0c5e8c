// Package server runs the HTTP transport of the dashcam catalogue.
//
// It owns the listener lifecycle: startup, signal handling and graceful
// shutdown that lets in-flight requests finish.
package server
