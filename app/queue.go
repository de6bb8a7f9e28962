// SPDX-License-Identifier: Unlicense OR MIT

package app

import "stagekit.org/io/event"

// eventQueue is a double-ended queue of canonical events. Push
// inserts at the head, pop and peek work on the tail, so events come
// out strictly first-in first-out. The zero value is an empty queue.
type eventQueue struct {
	events []event.Event
	// head is the index of the most recently pushed event.
	head int
	n    int
}

func (q *eventQueue) push(e event.Event) {
	if q.n == len(q.events) {
		q.grow()
	}
	q.head--
	if q.head < 0 {
		q.head = len(q.events) - 1
	}
	q.events[q.head] = e
	q.n++
}

func (q *eventQueue) pop() event.Event {
	if q.n == 0 {
		return nil
	}
	tail := (q.head + q.n - 1) % len(q.events)
	e := q.events[tail]
	q.events[tail] = nil
	q.n--
	if q.n == 0 {
		q.head = 0
	}
	return e
}

func (q *eventQueue) peek() event.Event {
	if q.n == 0 {
		return nil
	}
	return q.events[(q.head+q.n-1)%len(q.events)]
}

func (q *eventQueue) pending() bool {
	return q.n > 0
}

func (q *eventQueue) grow() {
	grown := make([]event.Event, 2*len(q.events)+1)
	for i := 0; i < q.n; i++ {
		grown[i] = q.events[(q.head+i)%len(q.events)]
	}
	q.events = grown
	q.head = 0
}
