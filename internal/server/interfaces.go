package server

// Server defines the lifecycle contract of the transport server.
//
// [RunServer] blocks until a termination signal arrives and the server has
// drained; [Shutdown] stops it from another goroutine.
type Server interface {
	// RunServer starts serving requests and blocks until the server stops.
	RunServer() error

	// Shutdown gracefully stops the server and frees associated resources.
	Shutdown()
}
