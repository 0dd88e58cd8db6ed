// Package keylock serialises work per key with a fixed set of mutexes.
package keylock

import (
	"hash/fnv"
	"sync"
)

// DefaultStripes is used when New is given a non-positive size.
const DefaultStripes = 64

// Striped maps keys onto a bounded pool of mutexes. Two keys may share a
// mutex; one key always maps to the same mutex.
type Striped struct {
	locks []sync.Mutex
}

// New creates a Striped lock with n mutexes.
func New(n int) *Striped {
	if n <= 0 {
		n = DefaultStripes
	}
	return &Striped{locks: make([]sync.Mutex, n)}
}

// Lock acquires the mutex for key and returns its unlock func.
func (s *Striped) Lock(key string) func() {
	mu := s.of(key)
	mu.Lock()
	return mu.Unlock
}

func (s *Striped) of(key string) *sync.Mutex {
	h := fnv.New32a()
	h.Write([]byte(key))
	return &s.locks[h.Sum32()%uint32(len(s.locks))]
}
