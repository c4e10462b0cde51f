// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package apphost

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"

	"github.com/gogpu/apphost/gpu"
	"github.com/gogpu/apphost/input"
)

// Callback is an application hook invoked with the host.
type Callback func(*App)

// EventSource is the platform collaborator the input context polls.
// Poll drains pending native events into push; it must not retain
// push beyond the call.
type EventSource interface {
	Poll(push func(input.Event))
}

// Config configures a host. OnTick and OnExit are required; omitting
// either is a fatal configuration error at New.
type Config struct {
	// Title is the initial window title.
	Title string

	// Width, Height is the initial logical window size in pixels.
	// Zero selects 800x600.
	Width, Height uint32

	// Fullscreen is the initial fullscreen flag.
	Fullscreen bool

	// SyncMode is the initial presentation sync mode.
	SyncMode SyncMode

	// DisplayRefreshRate is the display's refresh rate in Hz, used to
	// derive the frame target under triple buffering. Zero selects 60.
	DisplayRefreshRate uint32

	// InputRate is the input loop's target polls per second. Zero
	// selects 240.
	InputRate uint32

	// QueueCapacity is the event queue capacity. Zero selects
	// input.DefaultCapacity.
	QueueCapacity int

	// Blocking selects who drives the frame context: true means Run
	// owns an internal dispatch loop until exit; false means an
	// external driver invokes Step (or HandleSignal) repeatedly.
	Blocking bool

	// OnTick runs once per frame before presentation. Required.
	OnTick Callback

	// OnExit runs when the exit callback is dispatched, after the
	// final frame presented. Required. It (or the driver) must call
	// Deinitialized to complete teardown.
	OnExit Callback

	// Scheduler is the external dispatch substrate. Nil selects an
	// internal FIFO, which Blocking mode requires.
	Scheduler Scheduler

	// EventSource is the platform event collaborator. Nil means no
	// input polling; events may still be pushed via PushEvent.
	EventSource EventSource

	// PlatformHandle is the native window handle passed through to
	// the graphics backend. Zero means headless presentation.
	PlatformHandle gpu.PlatformHandle

	// Backend overrides graphics backend selection. Nil consults
	// APPHOST_BACKEND and then the registry's priority order.
	Backend gpu.Backend
}

// envConfig is the environment-driven part of the configuration.
type envConfig struct {
	// Backend is the graphics backend name, one of the registered
	// set. Empty falls back to the registry's priority default.
	Backend string `envconfig:"APPHOST_BACKEND"`
}

// selectBackend resolves the graphics backend: explicit config first,
// then APPHOST_BACKEND, then registry priority. An unrecognized name
// is fatal: there is no degraded mode to fall back to.
func selectBackend(cfg *Config) gpu.Backend {
	if cfg.Backend != nil {
		return cfg.Backend
	}

	var env envConfig
	if err := envconfig.Process("", &env); err != nil {
		panic(fmt.Sprintf("apphost: reading environment: %v", err))
	}
	if env.Backend == "" {
		b := gpu.Default()
		if b == nil {
			panic("apphost: no graphics backend registered")
		}
		return b
	}

	b := gpu.Get(env.Backend)
	if b == nil {
		panic(fmt.Sprintf("apphost: unrecognized backend %q in APPHOST_BACKEND (registered: %v)",
			env.Backend, gpu.Available()))
	}
	return b
}

// withDefaults fills in the zero-value defaults.
func (c Config) withDefaults() Config {
	if c.Width == 0 {
		c.Width = 800
	}
	if c.Height == 0 {
		c.Height = 600
	}
	if c.DisplayRefreshRate == 0 {
		c.DisplayRefreshRate = 60
	}
	if c.InputRate == 0 {
		c.InputRate = 240
	}
	return c
}
