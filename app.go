// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package apphost

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/gogpu/apphost/gpu"
	"github.com/gogpu/apphost/input"
	"github.com/gogpu/apphost/pace"
)

// App is the application host. It owns the lifecycle state machine,
// the frame and input loops, the event queue, and the GPU handles.
//
// All lifecycle transitions, surface mutations and GPU calls happen on
// the frame context: either the goroutine inside Run (blocking mode)
// or whichever goroutine drives Step/HandleSignal (non-blocking mode).
// The input context only pushes events.
type App struct {
	cfg   Config
	sched Scheduler
	fifo  *fifoScheduler

	state         State
	exitRequested atomic.Bool

	window  *Window
	windows []*Window

	queue *input.Queue

	frameGov   *pace.Governor
	framePacer *pace.Pacer
	inputGov   *pace.Governor
	inputPacer *pace.Pacer

	backend    gpu.Backend
	instance   gpu.Instance
	gpuSurface gpu.Surface
	adapter    gpu.Adapter
	device     gpu.Device
	gpuQueue   gpu.Queue
	swapchain  gpu.Swapchain

	surfaceDesc  SurfaceDescriptor
	surfaceDirty bool
	syncMode     SyncMode

	inputCtx    context.Context
	inputCancel context.CancelFunc
	inputDone   chan struct{}
}

// New creates a host, acquires the GPU, and leaves it in StateRunning
// awaiting the start signal. Missing callbacks, an unrecognized
// APPHOST_BACKEND, or any acquisition failure is fatal.
func New(cfg Config) *App {
	if cfg.OnTick == nil {
		panic("apphost: OnTick callback is required")
	}
	if cfg.OnExit == nil {
		panic("apphost: OnExit callback is required")
	}
	if cfg.Blocking && cfg.Scheduler != nil {
		panic("apphost: blocking mode drives its own dispatch loop; an external Scheduler requires Blocking=false")
	}
	cfg = cfg.withDefaults()

	backend := selectBackend(&cfg)
	Logger().Info("graphics backend selected", "backend", backend.Name())

	a := &App{
		cfg:      cfg,
		state:    StateRunning,
		syncMode: cfg.SyncMode,
		queue:    input.NewQueue(cfg.QueueCapacity),
		backend:  backend,
	}

	a.window = &Window{
		title:      cfg.Title,
		width:      cfg.Width,
		height:     cfg.Height,
		fullscreen: cfg.Fullscreen,
	}
	a.windows = []*Window{a.window}

	target := cfg.SyncMode.frameTarget(cfg.DisplayRefreshRate)
	a.frameGov = pace.NewGovernor(target)
	a.framePacer = pace.NewPacer(target)
	a.inputGov = pace.NewGovernor(cfg.InputRate)
	a.inputPacer = pace.NewPacer(cfg.InputRate)

	if cfg.Scheduler != nil {
		a.sched = cfg.Scheduler
	} else {
		a.fifo = &fifoScheduler{}
		a.sched = a.fifo
	}

	a.inputCtx, a.inputCancel = context.WithCancel(context.Background())

	a.acquire(backend)
	return a
}

// State returns the current lifecycle state.
func (a *App) State() State {
	return a.state
}

// Window returns the host's window.
func (a *App) Window() *Window {
	return a.window
}

// AddWindow creates an additional window entity. Multiple windows are
// unsupported: presenting with more than one title-bearing window is
// a fatal invariant violation. The entity exists so that titleless
// auxiliary entities (e.g. offscreen targets) can share the window
// bookkeeping.
func (a *App) AddWindow() *Window {
	w := &Window{}
	a.windows = append(a.windows, w)
	return w
}

// FrameRate returns the frame loop's measured iterations in the last
// completed second.
func (a *App) FrameRate() uint32 {
	return a.frameGov.Rate()
}

// InputRate returns the input loop's measured iterations in the last
// completed second.
func (a *App) InputRate() uint32 {
	return a.inputGov.Rate()
}

// PushEvent pushes an input event. Safe to call from the input
// context; never fails (overflow sets the queue's sticky flag).
func (a *App) PushEvent(ev input.Event) {
	a.queue.Push(ev)
}

// PollEvent pops the next buffered event in FIFO order. The host
// reacts to resize, sync-mode and close events as they are drained,
// so the frame callback must poll until ok is false every tick.
func (a *App) PollEvent() (ev input.Event, ok bool) {
	ev, ok = a.queue.Pop()
	if !ok {
		return ev, false
	}
	switch ev.Kind {
	case input.KindFramebufferResize:
		a.window.width = ev.Width
		a.window.height = ev.Height
		a.surfaceDirty = true
	case input.KindSyncModeChange:
		a.SetSyncMode(SyncMode(ev.SyncMode))
	case input.KindCloseRequest:
		a.RequestExit()
	}
	return ev, true
}

// Input returns the event queue, whose derived state answers
// key/button/pointer queries.
func (a *App) Input() *input.Queue {
	return a.queue
}

// RequestExit asks the host to shut down. Safe from any goroutine.
// The state does not change until the current frame completes; the
// frame in flight still presents.
func (a *App) RequestExit() {
	a.exitRequested.Store(true)
}

// Deinitialized is the application's teardown-complete signal. The
// host releases all owned resources in a fixed order and reaches
// StateExited. Calling it outside StateDeinitializing is a contract
// violation.
func (a *App) Deinitialized() {
	if a.state != StateDeinitializing {
		panic(fmt.Sprintf("apphost: Deinitialized called in state %v", a.state))
	}
	a.teardown()
	a.state = StateExited
	Logger().Info("teardown complete")
}

// HandleSignal dispatches one scheduler signal on the frame context.
// External dispatch substrates deliver consumed signals here.
func (a *App) HandleSignal(sig Signal) {
	switch sig {
	case SignalStart:
		a.start()
	case SignalUpdate:
		// Hook point; nothing to do between frames.
	case SignalPresentFrame:
		a.stepFrame()
	case SignalExit:
		a.RequestExit()
	case SignalDeinit:
		a.cfg.OnExit(a)
	default:
		Logger().Debug("ignoring unknown signal", "signal", sig)
	}
}

// Run drives the host in blocking mode: it starts the input loop,
// dispatches signals until StateExited, and paces frames to the
// governor's target. Requires Blocking=true.
func (a *App) Run() {
	if !a.cfg.Blocking {
		panic("apphost: Run requires Blocking=true; use Step for external drivers")
	}

	a.startInputLoop()
	a.HandleSignal(SignalStart)

	for a.state != StateExited {
		sig, ok := a.fifo.next()
		if !ok {
			// Nothing scheduled and not exited: the application
			// missed its Deinitialized call or unscheduled the tick
			// chain. Either way the loop cannot make progress.
			panic(fmt.Sprintf("apphost: dispatch queue empty in state %v", a.state))
		}
		a.HandleSignal(sig)
		if sig == SignalPresentFrame && a.frameGov.Target() > 0 {
			_ = a.framePacer.Wait(a.inputCtx)
		}
	}
}

// Step advances the host by one signal in non-blocking mode and
// returns the resulting state; the external driver loops until
// StateExited. When no EventSource goroutine is running, Step also
// polls input once, collapsing both contexts into one cooperative
// loop. Requires the internal scheduler (Config.Scheduler == nil).
func (a *App) Step() State {
	if a.fifo == nil {
		panic("apphost: Step requires the internal scheduler; dispatch via HandleSignal instead")
	}
	if a.inputDone == nil && a.cfg.EventSource != nil {
		a.cfg.EventSource.Poll(a.queue.Push)
		a.inputGov.Tick()
	}
	if sig, ok := a.fifo.next(); ok {
		a.HandleSignal(sig)
	}
	return a.state
}

// start begins scheduling ticks: it resets the frame governor's
// measurement window, schedules the first frame, and emits the
// started interrupt.
func (a *App) start() {
	a.frameGov.Start()
	a.sched.Schedule(SignalPresentFrame)
	a.emit(SignalStarted)
}

// stepFrame advances one frame: tick callback, presentation, surface
// reconciliation, rate measurement, then the frame-completed
// lifecycle transition.
func (a *App) stepFrame() {
	switch a.state {
	case StateExited:
		panic("apphost: frame advanced past exited state")
	case StateDeinitializing:
		panic("apphost: presenting while tearing down")
	}

	a.cfg.OnTick(a)

	if a.queue.CheckAndClearOverflow() {
		Logger().Warn("input events may have been dropped")
	}

	a.present()
	a.reconcileSurface()
	a.frameGov.Tick()

	// Frame completed: advance the lifecycle.
	switch a.state {
	case StateRunning:
		if a.exitRequested.Load() {
			a.state = StateExiting
			Logger().Info("exit requested", "state", a.state)
		}
		a.sched.Schedule(SignalPresentFrame)
	case StateExiting:
		// The in-flight frame has presented; hand over to the exit
		// callback instead of scheduling another tick.
		a.state = StateDeinitializing
		a.sched.Schedule(SignalDeinit)
	}
	a.emit(SignalFrameFinished)
}

// present submits the current frame to the display.
func (a *App) present() {
	titled := 0
	for _, w := range a.windows {
		if w.title != "" {
			titled++
		}
	}
	if titled > 1 {
		panic(fmt.Sprintf("apphost: %d title-bearing windows at presentation; multiple windows are unsupported", titled))
	}

	if a.swapchain == nil {
		return
	}
	if err := a.swapchain.Present(); err != nil {
		Logger().Warn("present failed", "err", err)
	}
}

// startInputLoop spawns the input context when an event source is
// configured.
func (a *App) startInputLoop() {
	if a.cfg.EventSource == nil {
		return
	}
	a.inputDone = make(chan struct{})
	go a.inputLoop()
}

// inputLoop is the input context: it polls the platform event source
// into the queue at the input rate until canceled. It touches nothing
// but the queue and its own governor and pacer.
func (a *App) inputLoop() {
	defer close(a.inputDone)

	a.inputGov.Start()
	for {
		select {
		case <-a.inputCtx.Done():
			return
		default:
		}
		a.cfg.EventSource.Poll(a.queue.Push)
		a.inputGov.Tick()
		if a.inputPacer.Target() > 0 {
			if err := a.inputPacer.Wait(a.inputCtx); err != nil {
				return
			}
		}
	}
}

// teardown releases everything the host owns. Order is strict: GPU
// handles first (innermost out), then platform resources, then event
// storage. Releasing the backend after the window would let it try to
// present to a destroyed surface; this order removes that race.
func (a *App) teardown() {
	// Stop the input context before releasing what it feeds.
	a.inputCancel()
	if a.inputDone != nil {
		<-a.inputDone
	}

	if a.swapchain != nil {
		a.swapchain.Release()
		a.swapchain = nil
	}
	if a.gpuQueue != nil {
		a.gpuQueue.Release()
		a.gpuQueue = nil
	}
	if a.device != nil {
		a.device.Release()
		a.device = nil
	}
	if a.gpuSurface != nil {
		a.gpuSurface.Release()
		a.gpuSurface = nil
	}
	if a.adapter != nil {
		a.adapter.Release()
		a.adapter = nil
	}
	if a.instance != nil {
		a.instance.Release()
		a.instance = nil
	}
	for _, w := range a.windows {
		w.release()
	}
	a.queue.Release()
}

// emit sends an interrupt-only signal to the external substrate, if
// one is configured. The internal FIFO never receives interrupts: the
// host does not consume them.
func (a *App) emit(sig Signal) {
	if a.cfg.Scheduler != nil {
		a.cfg.Scheduler.Schedule(sig)
	}
}
