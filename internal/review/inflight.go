package review

import (
	"errors"
	"sync"
)

// ErrInFlight is returned when a record already has a pending mutation.
var ErrInFlight = errors.New("record has a mutation in flight")

// Inflight tracks which record ids currently have a remote write pending.
// One record can carry at most one pending operation; unrelated records are
// never blocked by each other.
type Inflight struct {
	mu  sync.Mutex
	ops map[string]string // record id -> operation name
}

func NewInflight() *Inflight {
	return &Inflight{ops: make(map[string]string)}
}

// Claim marks id as having op in flight. It fails with ErrInFlight if a
// previous claim on the same id has not been released yet.
func (f *Inflight) Claim(id, op string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, busy := f.ops[id]; busy {
		return ErrInFlight
	}
	f.ops[id] = op
	return nil
}

// Release clears the claim on id. Releasing an unclaimed id is a no-op.
func (f *Inflight) Release(id string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.ops, id)
}

// Pending returns the operation in flight for id, if any.
func (f *Inflight) Pending(id string) (string, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	op, ok := f.ops[id]
	return op, ok
}
