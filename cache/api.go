package cache

import "time"

// Dispatcher is the reply-sink-returning surface every adapter builds
// on. It is satisfied by *Keeper; adapters depend on this interface
// rather than *Keeper directly so they can be tested against a fake.
//
// Each method returns a channel satisfying the engine's reply-sink
// contract: exactly one Result is ever sent on it, and it is never
// closed. A caller that stops receiving before the send does not
// cancel the underlying job.
type Dispatcher interface {
	SetCh(key string, value []byte, ttl time.Duration) <-chan Result
	GetCh(key string) <-chan Result
	RemoveCh(key string) <-chan Result
	ClearCh() <-chan Result
	CleanupCh() <-chan Result
	Close() error
}

var _ Dispatcher = (*Keeper)(nil)
