// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package input

import (
	"sync"
	"sync/atomic"

	"github.com/gogpu/gpucontext"
)

// DefaultCapacity is the queue capacity used when none is given.
// Sized so that even a polling-rate gaming mouse cannot fill it
// between frames at interactive frame rates.
const DefaultCapacity = 2048

// Queue is the bounded FIFO of input events shared between the input
// loop (producers) and the frame loop (consumer), plus the input
// state derived from pushed events.
//
// Push never fails from the caller's perspective: when the queue is
// full the event is dropped and a sticky overflow flag is set instead,
// because losing a low-priority input event is preferable to crashing
// the input loop. The flag stays set until CheckAndClearOverflow.
//
// All methods are safe for concurrent use.
type Queue struct {
	mu     sync.Mutex
	events []Event
	head   int
	count  int
	state  *State

	oom atomic.Bool
}

// NewQueue creates a queue with the given capacity. A capacity ≤ 0
// selects DefaultCapacity.
func NewQueue(capacity int) *Queue {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Queue{
		events: make([]Event, capacity),
		state:  newState(),
	}
}

// Push appends an event and folds it into the derived input state.
// The state is updated even when the queue is full, so the snapshot
// stays truthful under overflow.
func (q *Queue) Push(ev Event) {
	q.mu.Lock()
	q.state.apply(ev)
	if q.count == len(q.events) {
		q.mu.Unlock()
		q.oom.Store(true)
		return
	}
	q.events[(q.head+q.count)%len(q.events)] = ev
	q.count++
	q.mu.Unlock()
}

// Pop removes and returns the oldest event. ok is false when the
// queue is empty. Consumers must pop until ok is false on every tick
// to keep the queue from staying full.
func (q *Queue) Pop() (ev Event, ok bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.count == 0 {
		return Event{}, false
	}
	ev = q.events[q.head]
	q.head = (q.head + 1) % len(q.events)
	q.count--
	return ev, true
}

// CheckAndClearOverflow reports whether any push overflowed since the
// last call, and clears the flag. Multiple overflows between calls are
// reported as a single true: the flag is level-triggered, not counted.
func (q *Queue) CheckAndClearOverflow() bool {
	return q.oom.Swap(false)
}

// Len returns the number of buffered events.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.count
}

// Cap returns the queue capacity.
func (q *Queue) Cap() int {
	return len(q.events)
}

// Release drops the queue's storage and derived state. The queue must
// not be used afterwards. Called by the host as the final step of
// teardown.
func (q *Queue) Release() {
	q.mu.Lock()
	q.events = nil
	q.head = 0
	q.count = 0
	q.state = newState()
	q.mu.Unlock()
}

// KeyPressed reports whether key is currently held down.
func (q *Queue) KeyPressed(key gpucontext.Key) bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.state.KeyPressed(key)
}

// MousePressed reports whether the pointer button is currently held.
func (q *Queue) MousePressed(btn MouseButton) bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.state.MousePressed(btn)
}

// MousePosition returns the last known pointer position.
func (q *Queue) MousePosition() (x, y float64) {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.state.MousePosition()
}
