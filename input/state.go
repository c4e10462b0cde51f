// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package input

import "github.com/gogpu/gpucontext"

// State is the input snapshot derived from pushed events: the set of
// currently pressed keys, the set of pressed pointer buttons, and the
// last known pointer position.
//
// State is mutated only as a side effect of Queue.Push and is never
// reconstructed from the queue's contents. It carries no lock of its
// own; Queue serializes access.
type State struct {
	keys     map[gpucontext.Key]struct{}
	buttons  uint8
	mouseX   float64
	mouseY   float64
}

func newState() *State {
	return &State{
		keys: make(map[gpucontext.Key]struct{}),
	}
}

// apply folds one event into the snapshot. Kinds that carry no state
// are no-ops.
func (s *State) apply(ev Event) {
	switch ev.Kind {
	case KindKeyPress:
		s.keys[ev.Key] = struct{}{}
	case KindKeyRelease:
		delete(s.keys, ev.Key)
	case KindMousePress:
		s.buttons |= 1 << ev.Button
		s.mouseX, s.mouseY = ev.X, ev.Y
	case KindMouseRelease:
		s.buttons &^= 1 << ev.Button
		s.mouseX, s.mouseY = ev.X, ev.Y
	case KindMouseMotion:
		s.mouseX, s.mouseY = ev.X, ev.Y
	case KindFocusLost:
		// Key and button releases cannot be observed while
		// unfocused; drop everything rather than leave stuck bits.
		clear(s.keys)
		s.buttons = 0
	}
}

// KeyPressed reports whether key is currently held down.
func (s *State) KeyPressed(key gpucontext.Key) bool {
	_, ok := s.keys[key]
	return ok
}

// MousePressed reports whether the pointer button is currently held.
func (s *State) MousePressed(btn MouseButton) bool {
	return s.buttons&(1<<btn) != 0
}

// MousePosition returns the last known pointer position.
func (s *State) MousePosition() (x, y float64) {
	return s.mouseX, s.mouseY
}

// pressedCount returns the number of held keys, for tests.
func (s *State) pressedCount() int {
	return len(s.keys)
}
