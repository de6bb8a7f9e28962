// SPDX-License-Identifier: Unlicense OR MIT

package event

import "errors"

var (
	// ErrTracked is reported when an event is tracked twice without
	// an intervening release.
	ErrTracked = errors.New("event: already tracked")
	// ErrNotTracked is reported when releasing an event the registry
	// has never seen, or one released more often than tracked.
	ErrNotTracked = errors.New("event: release of untracked event")
)

// Registry records the set of live events owned by a backend. It is a
// debugging aid for catching release-after-release and stray releases;
// a memory-safe queue does not need it for correctness, so backends
// only maintain one when configured to.
//
// Identity is the event value. Two equal events share an entry, which
// the registry handles by counting.
type Registry struct {
	live map[Event]int
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{live: make(map[Event]int)}
}

// Track records e as live.
func (r *Registry) Track(e Event) error {
	if e == nil {
		return ErrNotTracked
	}
	r.live[e]++
	if r.live[e] > 1 {
		return ErrTracked
	}
	return nil
}

// Release removes e from the live set.
func (r *Registry) Release(e Event) error {
	if e == nil {
		return ErrNotTracked
	}
	n, ok := r.live[e]
	if !ok {
		return ErrNotTracked
	}
	if n <= 1 {
		delete(r.live, e)
	} else {
		r.live[e] = n - 1
	}
	return nil
}

// Live returns the number of tracked events.
func (r *Registry) Live() int {
	n := 0
	for _, c := range r.live {
		n += c
	}
	return n
}
