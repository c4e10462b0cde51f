// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package apphost

import (
	"fmt"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/apphost/gpu"
)

// SyncMode selects the presentation synchronization policy. It maps
// onto a backend present mode and a frame target in the reconciler.
type SyncMode uint8

const (
	// SyncModeNone presents immediately; may tear, lowest latency.
	SyncModeNone SyncMode = iota

	// SyncModeDouble is classic vsync: one frame queued per vertical
	// blank.
	SyncModeDouble

	// SyncModeTriple keeps one replaceable pending frame and pins the
	// frame target to twice the display refresh rate.
	SyncModeTriple
)

// String returns the sync mode's name for diagnostics.
func (m SyncMode) String() string {
	switch m {
	case SyncModeNone:
		return "none"
	case SyncModeDouble:
		return "double"
	case SyncModeTriple:
		return "triple"
	default:
		return "unknown"
	}
}

// presentMode maps the sync mode to the backend presentation policy.
func (m SyncMode) presentMode() gpu.PresentMode {
	switch m {
	case SyncModeDouble:
		return gpu.PresentModeFifo
	case SyncModeTriple:
		return gpu.PresentModeMailbox
	default:
		return gpu.PresentModeImmediate
	}
}

// frameTarget derives the frame governor target for the sync mode:
// triple buffering pins it to twice the refresh rate so the mailbox
// always holds a fresh frame; every other mode runs unlimited.
func (m SyncMode) frameTarget(refreshRate uint32) uint32 {
	if m == SyncModeTriple {
		return 2 * refreshRate
	}
	return 0
}

// SurfaceDescriptor mirrors the live swapchain's configuration. It is
// owned by the frame context, mutated only by the reconciler, and
// read by the presentation step.
type SurfaceDescriptor struct {
	Width       uint32
	Height      uint32
	Format      gputypes.TextureFormat
	PresentMode gpu.PresentMode
	Usage       gputypes.TextureUsage
}

// SetSyncMode changes the presentation sync mode and flags the
// surface for reconciliation after the next present. Frame context
// only.
func (a *App) SetSyncMode(mode SyncMode) {
	if mode == a.syncMode {
		return
	}
	a.syncMode = mode
	a.surfaceDirty = true
}

// SyncMode returns the current presentation sync mode.
func (a *App) SyncMode() SyncMode {
	return a.syncMode
}

// Surface returns the descriptor mirroring the live swapchain.
func (a *App) Surface() SurfaceDescriptor {
	return a.surfaceDesc
}

// reconcileSurface rebuilds the swapchain when a resize or sync-mode
// change flagged it. Runs once per frame, after presentation, on the
// frame context.
//
// The rebuild is skipped while the window size is degenerate (width
// or height zero, e.g. minimized): backends treat a zero-sized
// swapchain as an error, so the stale swapchain stays in place until
// a usable size is observed.
func (a *App) reconcileSurface() {
	if !a.surfaceDirty {
		return
	}
	a.surfaceDirty = false

	mode := a.syncMode.presentMode()
	target := a.syncMode.frameTarget(a.cfg.DisplayRefreshRate)
	a.frameGov.SetTarget(target)
	a.framePacer.SetTarget(target)

	w := a.window
	if w.width == 0 || w.height == 0 {
		Logger().Debug("surface reconcile deferred", "width", w.width, "height", w.height)
		return
	}

	if a.swapchain != nil {
		a.swapchain.Release()
		a.swapchain = nil
	}
	desc := &gpu.SwapchainDescriptor{
		Width:       w.width,
		Height:      w.height,
		Format:      a.surfaceDesc.Format,
		PresentMode: mode,
		Usage:       a.surfaceDesc.Usage,
	}
	sc, err := a.device.CreateSwapchain(a.gpuSurface, desc)
	if err != nil {
		panic(fmt.Sprintf("apphost: swapchain rebuild failed: %v", err))
	}
	a.swapchain = sc

	a.surfaceDesc.Width = desc.Width
	a.surfaceDesc.Height = desc.Height
	a.surfaceDesc.PresentMode = desc.PresentMode
	w.fbWidth = desc.Width
	w.fbHeight = desc.Height
	w.fbFormat = desc.Format

	Logger().Debug("swapchain rebuilt",
		"width", desc.Width, "height", desc.Height, "mode", desc.PresentMode)
}
