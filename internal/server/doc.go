// Package server runs the HTTP listener of the record service, including
// signal handling and graceful shutdown.
package server
