package core

import (
	"sort"
	"sync"
	"time"
)

// KeySet is an immutable snapshot of the keys held during one tick.
// Keys are identified by their literal names ("a", "k", "space", ...).
type KeySet map[string]struct{}

// NewKeySet creates a key set holding the given keys.
func NewKeySet(keys ...string) KeySet {
	ks := make(KeySet, len(keys))
	for _, k := range keys {
		ks[k] = struct{}{}
	}
	return ks
}

// Has returns true if the key is held in this snapshot.
func (ks KeySet) Has(key string) bool {
	_, ok := ks[key]
	return ok
}

// Keys returns the held keys in sorted order.
func (ks KeySet) Keys() []string {
	out := make([]string, 0, len(ks))
	for k := range ks {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// InputState collects key events as they arrive and hands out one KeySet
// per tick. It is safe for concurrent use: the input reader may call Press
// and Release while the game loop calls Snapshot.
//
// Terminals report presses and auto-repeats but no releases, so with a
// positive hold window a key counts as held until that long after its last
// press. A zero hold window keeps keys held until Release is called.
type InputState struct {
	mu       sync.Mutex
	hold     time.Duration
	lastSeen map[string]time.Time
}

// NewInputState creates an input holder with the given hold window.
func NewInputState(hold time.Duration) *InputState {
	return &InputState{
		hold:     hold,
		lastSeen: make(map[string]time.Time),
	}
}

// Press records that key was pressed or auto-repeated at the given time.
func (s *InputState) Press(key string, at time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastSeen[key] = at
}

// Release marks key as no longer held.
func (s *InputState) Release(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.lastSeen, key)
}

// Reset releases every key.
func (s *InputState) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	clear(s.lastSeen)
}

// Snapshot returns the keys held at now. Keys whose hold window has
// elapsed are forgotten.
func (s *InputState) Snapshot(now time.Time) KeySet {
	s.mu.Lock()
	defer s.mu.Unlock()

	ks := make(KeySet, len(s.lastSeen))
	for k, at := range s.lastSeen {
		if s.hold > 0 && now.Sub(at) > s.hold {
			delete(s.lastSeen, k)
			continue
		}
		ks[k] = struct{}{}
	}
	return ks
}
