package server

// Server defines the lifecycle of the application server.
//
// RunServer blocks until a stop signal arrives or the listener fails.
// Shutdown stops accepting connections and waits for in-flight requests.
type Server interface {
	RunServer()
	Shutdown()
}
