// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package apphost

import "sync"

// Signal names a schedulable step in the dispatch substrate. The host
// consumes the first five and emits the last two as interrupt-style
// notifications.
type Signal string

const (
	// SignalStart begins scheduling ticks. Dispatch it once after New.
	SignalStart Signal = "start"

	// SignalUpdate is a no-op hook point between frames.
	SignalUpdate Signal = "update"

	// SignalPresentFrame advances one frame.
	SignalPresentFrame Signal = "present-frame"

	// SignalExit requests shutdown. The in-flight frame still
	// presents before teardown begins.
	SignalExit Signal = "exit"

	// SignalDeinit runs the registered exit callback.
	SignalDeinit Signal = "deinit"

	// SignalStarted is emitted once after the first tick is
	// scheduled. Emitted only, never consumed.
	SignalStarted Signal = "started"

	// SignalFrameFinished is emitted after every completed frame.
	// Emitted only, never consumed.
	SignalFrameFinished Signal = "frame-finished"
)

// Scheduler is the external dispatch substrate the host schedules
// signals into. The substrate is expected to deliver consumed signals
// back to App.HandleSignal in order; emitted signals (SignalStarted,
// SignalFrameFinished) are notifications the substrate may fan out to
// other systems.
type Scheduler interface {
	Schedule(Signal)
}

// fifoScheduler is the in-process scheduler used when the caller
// supplies none. It only buffers; the host's own loop drains it.
type fifoScheduler struct {
	mu      sync.Mutex
	pending []Signal
}

func (s *fifoScheduler) Schedule(sig Signal) {
	s.mu.Lock()
	s.pending = append(s.pending, sig)
	s.mu.Unlock()
}

func (s *fifoScheduler) next() (Signal, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.pending) == 0 {
		return "", false
	}
	sig := s.pending[0]
	s.pending = s.pending[1:]
	return sig, true
}
