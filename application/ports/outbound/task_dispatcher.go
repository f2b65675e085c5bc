package outbound

// TaskDispatcher is the slice of the worker pool the services need. It is
// satisfied directly by *ants.Pool.
type TaskDispatcher interface {
	Submit(task func()) error
}
