// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package apphost

// State is the host's lifecycle state. The host starts in
// StateRunning and ends in StateExited; transitions only ever move
// forward and happen on the frame context.
type State uint8

const (
	// StateRunning means the host is ticking frames.
	StateRunning State = iota

	// StateExiting means exit was requested; the frame in flight
	// still gets to present cleanly before teardown begins.
	StateExiting

	// StateDeinitializing means the exit callback has been scheduled
	// and the host is waiting for the application's teardown-complete
	// signal (Deinitialized).
	StateDeinitializing

	// StateExited is terminal: all owned resources are released and
	// the frame loop is stopped. Advancing a frame past this state is
	// a contract violation.
	StateExited
)

// String returns the state's name for diagnostics.
func (s State) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StateExiting:
		return "exiting"
	case StateDeinitializing:
		return "deinitializing"
	case StateExited:
		return "exited"
	default:
		return "unknown"
	}
}
