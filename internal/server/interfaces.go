package server

// Server is the lifecycle contract of the transport serving the editor
// surface.
//
// Implementations block in [RunServer] until a stop signal arrives and
// release the listener in [Shutdown]; in-flight editor requests are given
// the chance to finish.
type Server interface {
	// RunServer starts serving requests and blocks until the server stops.
	RunServer()

	// Shutdown gracefully stops the server and frees associated resources.
	Shutdown()
}
