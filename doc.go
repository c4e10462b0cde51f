// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package apphost is the runtime core of an interactive application
// host. It owns the application lifecycle, paces frame production
// against the display, buffers input events, and keeps the
// presentation swapchain reconciled with window and sync-mode changes.
//
// The host does not render, create windows, or parse configuration:
// the graphics API, the platform event source, and the dispatch
// substrate are collaborators reached through the gpu.Backend,
// EventSource and Scheduler interfaces.
//
// A minimal application:
//
//	app := apphost.New(apphost.Config{
//	    Title:    "demo",
//	    Width:    800,
//	    Height:   600,
//	    Blocking: true,
//	    OnTick: func(a *apphost.App) {
//	        for {
//	            ev, ok := a.PollEvent()
//	            if !ok {
//	                break
//	            }
//	            _ = ev
//	        }
//	    },
//	    OnExit: func(a *apphost.App) {
//	        a.Deinitialized()
//	    },
//	})
//	app.Run()
//
// Startup and backend failures are fatal by design: the host panics
// with a diagnostic rather than continuing in a degraded mode.
package apphost
