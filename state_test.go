// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package apphost

import "testing"

func TestStateString(t *testing.T) {
	tests := []struct {
		state State
		want  string
	}{
		{StateRunning, "running"},
		{StateExiting, "exiting"},
		{StateDeinitializing, "deinitializing"},
		{StateExited, "exited"},
		{State(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.state.String(); got != tt.want {
			t.Errorf("State(%d).String() = %q, want %q", tt.state, got, tt.want)
		}
	}
}

func TestFIFOSchedulerOrder(t *testing.T) {
	s := &fifoScheduler{}
	s.Schedule(SignalStart)
	s.Schedule(SignalPresentFrame)
	s.Schedule(SignalDeinit)

	want := []Signal{SignalStart, SignalPresentFrame, SignalDeinit}
	for i, w := range want {
		got, ok := s.next()
		if !ok || got != w {
			t.Errorf("next() #%d = %q, %v, want %q, true", i, got, ok, w)
		}
	}
	if _, ok := s.next(); ok {
		t.Error("next() on a drained scheduler returned a signal")
	}
}
