package server

// Server is the lifecycle of the process-wide transport set.
type Server interface {
	// RunServer blocks until a stop signal arrives and the transports
	// have shut down.
	RunServer()

	// Shutdown stops every transport. It is safe to call once serving
	// has started.
	Shutdown()
}
