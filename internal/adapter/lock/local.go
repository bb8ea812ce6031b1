// Package lock provides non-blocking keyed locks used to keep per-user
// maintenance runs from overlapping.
package lock

import (
	"context"
	"sync"
)

// Local is an in-process keyed lock. It only serializes callers inside one
// process; use Redis when several replicas share a database.
type Local struct {
	mu   sync.Mutex
	held map[string]struct{}
}

// NewLocal creates an empty Local lock set.
func NewLocal() *Local {
	return &Local{held: make(map[string]struct{})}
}

// TryLock acquires key without waiting. When the key is already held it
// returns acquired=false and a nil release.
func (l *Local) TryLock(_ context.Context, key string) (release func(), acquired bool, err error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if _, busy := l.held[key]; busy {
		return nil, false, nil
	}
	l.held[key] = struct{}{}

	var once sync.Once
	return func() {
		once.Do(func() {
			l.mu.Lock()
			delete(l.held, key)
			l.mu.Unlock()
		})
	}, true, nil
}
