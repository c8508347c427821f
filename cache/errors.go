package cache

import "errors"

// Error taxonomy. NotFound is deliberately not a sentinel error: Get
// reports a miss via its Found return, not via Err, so a miss never has
// to be distinguished from a real failure with errors.Is.
var (
	// ErrAlreadyHeld means the cache root's pidfile is held by another
	// live process.
	ErrAlreadyHeld = errors.New("cache: root already held by another process")

	// ErrWorkerGone means the worker assigned to a job terminated
	// abnormally before delivering a reply.
	ErrWorkerGone = errors.New("cache: worker terminated before replying")

	// ErrShutdown means the dispatcher was closed before the job could
	// be accepted.
	ErrShutdown = errors.New("cache: dispatcher is shut down")

	// ErrInvalidConfig means a construction parameter was rejected.
	ErrInvalidConfig = errors.New("cache: invalid configuration")
)
