// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package apphost

import (
	"testing"

	"github.com/gogpu/apphost/gpu/headless"
	"github.com/gogpu/apphost/input"
)

// drainTick is the minimal conforming tick callback: it pops the
// queue until empty so host reactions (resize, close) run.
func drainTick(a *App) {
	for {
		if _, ok := a.PollEvent(); !ok {
			break
		}
	}
}

// newTestApp creates a host on a fresh headless backend in
// non-blocking mode.
func newTestApp(t *testing.T, mut func(*Config)) (*App, *headless.Backend) {
	t.Helper()
	b := headless.New()
	cfg := Config{
		Title:   "test",
		Backend: b,
		OnTick:  drainTick,
		OnExit:  func(a *App) { a.Deinitialized() },
	}
	if mut != nil {
		mut(&cfg)
	}
	return New(cfg), b
}

// runToExited drives the non-blocking host until StateExited.
func runToExited(t *testing.T, a *App) {
	t.Helper()
	a.HandleSignal(SignalStart)
	a.RequestExit()
	for i := 0; i < 100; i++ {
		if a.Step() == StateExited {
			return
		}
	}
	t.Fatalf("host did not reach exited; state = %v", a.State())
}

func TestNewRequiresCallbacks(t *testing.T) {
	for _, tc := range []struct {
		name string
		cfg  Config
	}{
		{"missing OnTick", Config{OnExit: func(*App) {}}},
		{"missing OnExit", Config{OnTick: func(*App) {}}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Error("New() did not panic, want fatal configuration error")
				}
			}()
			New(tc.cfg)
		})
	}
}

func TestLifecycleExitSequence(t *testing.T) {
	a, _ := newTestApp(t, nil)

	if got := a.State(); got != StateRunning {
		t.Fatalf("State() = %v after New, want running", got)
	}

	a.HandleSignal(SignalStart)
	a.RequestExit()
	if got := a.State(); got != StateRunning {
		t.Errorf("State() = %v after RequestExit, want running (unchanged until the frame completes)", got)
	}

	a.Step() // frame completes; exit observed
	if got := a.State(); got != StateExiting {
		t.Errorf("State() = %v after first frame, want exiting", got)
	}

	a.Step() // in-flight frame presents
	if got := a.State(); got != StateDeinitializing {
		t.Errorf("State() = %v after second frame, want deinitializing", got)
	}

	a.Step() // deinit signal runs the exit callback
	if got := a.State(); got != StateExited {
		t.Errorf("State() = %v after deinit, want exited", got)
	}
}

func TestPresentAfterExitedPanics(t *testing.T) {
	a, _ := newTestApp(t, nil)
	runToExited(t, a)

	defer func() {
		if recover() == nil {
			t.Error("HandleSignal(present-frame) after exited did not panic, want contract violation")
		}
	}()
	a.HandleSignal(SignalPresentFrame)
}

func TestDeinitializedOutsideDeinitializingPanics(t *testing.T) {
	a, _ := newTestApp(t, nil)

	defer func() {
		if recover() == nil {
			t.Error("Deinitialized() in running state did not panic, want contract violation")
		}
	}()
	a.Deinitialized()
}

func TestTeardownReleaseOrder(t *testing.T) {
	a, b := newTestApp(t, nil)
	runToExited(t, a)

	want := []string{"swapchain", "queue", "device", "surface", "adapter", "instance"}
	got := b.Releases()
	if len(got) != len(want) {
		t.Fatalf("Releases() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Releases()[%d] = %q, want %q", i, got[i], want[i])
		}
	}

	// Platform and event storage are released after the GPU handles.
	if title := a.Window().Title(); title != "" {
		t.Errorf("window title = %q after teardown, want freed", title)
	}
	if c := a.Input().Cap(); c != 0 {
		t.Errorf("event queue capacity = %d after teardown, want 0 (storage released)", c)
	}
}

func TestExitCallbackRunsAfterFinalPresent(t *testing.T) {
	var presentsAtExit int
	var b *headless.Backend

	a, backend := newTestApp(t, func(cfg *Config) {
		cfg.OnExit = func(a *App) {
			presentsAtExit = b.Presents()
			a.Deinitialized()
		}
	})
	b = backend

	runToExited(t, a)

	// The frame in flight when exit was requested presented before
	// the exit callback observed the drained host.
	if presentsAtExit < 2 {
		t.Errorf("presents at exit callback = %d, want ≥ 2 (exit deferred by one frame)", presentsAtExit)
	}
}

func TestBlockingRun(t *testing.T) {
	frames := 0
	b := headless.New()
	a := New(Config{
		Title:    "test",
		Backend:  b,
		Blocking: true,
		OnTick: func(a *App) {
			drainTick(a)
			frames++
			if frames == 3 {
				a.RequestExit()
			}
		},
		OnExit: func(a *App) { a.Deinitialized() },
	})

	a.Run()

	if got := a.State(); got != StateExited {
		t.Errorf("State() = %v after Run, want exited", got)
	}
	// Frame 3 requests exit; frame 4 is the in-flight present.
	if frames != 4 {
		t.Errorf("ticked %d frames, want 4", frames)
	}
	if b.Presents() != 4 {
		t.Errorf("Presents() = %d, want 4", b.Presents())
	}
}

func TestRunRequiresBlocking(t *testing.T) {
	a, _ := newTestApp(t, nil)

	defer func() {
		if recover() == nil {
			t.Error("Run() with Blocking=false did not panic")
		}
	}()
	a.Run()
}

// recordingScheduler captures scheduled signals for inspection.
type recordingScheduler struct {
	signals []Signal
}

func (s *recordingScheduler) Schedule(sig Signal) {
	s.signals = append(s.signals, sig)
}

func (s *recordingScheduler) has(sig Signal) bool {
	for _, got := range s.signals {
		if got == sig {
			return true
		}
	}
	return false
}

func TestSignalsEmittedToExternalScheduler(t *testing.T) {
	sched := &recordingScheduler{}
	b := headless.New()
	a := New(Config{
		Title:     "test",
		Backend:   b,
		Scheduler: sched,
		OnTick:    drainTick,
		OnExit:    func(a *App) { a.Deinitialized() },
	})

	a.HandleSignal(SignalStart)
	if !sched.has(SignalStarted) {
		t.Errorf("signals = %v, missing %q interrupt", sched.signals, SignalStarted)
	}
	if !sched.has(SignalPresentFrame) {
		t.Errorf("signals = %v, missing scheduled %q", sched.signals, SignalPresentFrame)
	}

	a.HandleSignal(SignalPresentFrame)
	if !sched.has(SignalFrameFinished) {
		t.Errorf("signals = %v, missing %q interrupt", sched.signals, SignalFrameFinished)
	}
}

func TestExternalSchedulerRequiresNonBlocking(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("New() with Blocking=true and external Scheduler did not panic")
		}
	}()
	New(Config{
		Backend:   headless.New(),
		Blocking:  true,
		Scheduler: &recordingScheduler{},
		OnTick:    drainTick,
		OnExit:    func(a *App) { a.Deinitialized() },
	})
}

// stubSource pushes a fixed set of events on the first poll.
type stubSource struct {
	events []input.Event
	polled bool
}

func (s *stubSource) Poll(push func(input.Event)) {
	if s.polled {
		return
	}
	s.polled = true
	for _, ev := range s.events {
		push(ev)
	}
}

func TestStepPollsEventSourceCooperatively(t *testing.T) {
	src := &stubSource{events: []input.Event{{Kind: input.KindCloseRequest}}}
	a, _ := newTestApp(t, func(cfg *Config) {
		cfg.EventSource = src
	})

	a.HandleSignal(SignalStart)
	for i := 0; i < 100; i++ {
		if a.Step() == StateExited {
			break
		}
	}

	if !src.polled {
		t.Error("event source was never polled in cooperative mode")
	}
	if got := a.State(); got != StateExited {
		t.Errorf("State() = %v, want exited (close request drives shutdown)", got)
	}
}

func TestUpdateSignalIsNoOp(t *testing.T) {
	a, _ := newTestApp(t, nil)
	a.HandleSignal(SignalUpdate)
	if got := a.State(); got != StateRunning {
		t.Errorf("State() = %v after update signal, want running", got)
	}
}

func TestMultipleTitledWindowsPanicAtPresent(t *testing.T) {
	a, _ := newTestApp(t, nil)
	a.AddWindow().SetTitlef("second %s", "window")
	a.HandleSignal(SignalStart)

	defer func() {
		if recover() == nil {
			t.Error("present with two titled windows did not panic")
		}
	}()
	a.Step()
}

func TestTitlelessAuxWindowAllowed(t *testing.T) {
	a, _ := newTestApp(t, nil)
	a.AddWindow() // no title: does not count against the invariant
	a.HandleSignal(SignalStart)
	a.Step()

	if got := a.State(); got != StateRunning {
		t.Errorf("State() = %v, want running", got)
	}
}
