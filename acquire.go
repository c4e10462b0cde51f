// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package apphost

import (
	"fmt"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/apphost/gpu"
)

// acquire runs the one-shot GPU acquisition sequence before the frame
// loop starts: instance → surface → adapter → device → queue →
// swapchain. Every failure here is fatal: there is no degraded mode
// without a usable GPU backend.
//
// The adapter request is the only asynchronous step. Its one-shot
// completion callback is collapsed into a synchronous startup barrier
// by blocking on a buffered channel until the callback fires.
func (a *App) acquire(backend gpu.Backend) {
	// Step 1: create the instance.
	inst, err := backend.CreateInstance()
	if err != nil {
		panic(fmt.Sprintf("apphost: backend %q: %v", backend.Name(), err))
	}
	a.instance = inst

	// Step 2: create the surface from the platform handle.
	surf, err := inst.CreateSurface(a.cfg.PlatformHandle)
	if err != nil {
		panic(fmt.Sprintf("apphost: surface creation failed: %v", err))
	}
	a.gpuSurface = surf

	// Step 3: request an adapter compatible with the surface and
	// block until the completion callback fires.
	type result struct {
		adapter gpu.Adapter
		err     error
	}
	done := make(chan result, 1)
	inst.RequestAdapter(surf, func(ad gpu.Adapter, err error) {
		done <- result{adapter: ad, err: err}
	})
	res := <-done
	if res.err != nil {
		panic(fmt.Sprintf("apphost: adapter request failed: %v", res.err))
	}
	info := res.adapter.Info()
	if info.Backend == "" {
		panic("apphost: adapter reports no usable backend")
	}
	a.adapter = res.adapter
	Logger().Info("gpu adapter selected",
		"name", info.Name, "vendor", info.Vendor, "backend", info.Backend)

	// Step 4: create the device. Device loss is fatal by design:
	// this layer has no asset re-upload path to recover with.
	dev, err := res.adapter.RequestDevice(&gpu.DeviceDescriptor{
		Label: "apphost-device",
		OnLost: func(reason string) {
			panic(fmt.Sprintf("apphost: device lost: %s", reason))
		},
	})
	if err != nil {
		panic(fmt.Sprintf("apphost: device creation failed: %v", err))
	}
	a.device = dev

	// Step 5: obtain the queue.
	q, err := dev.Queue()
	if err != nil {
		panic(fmt.Sprintf("apphost: queue retrieval failed: %v", err))
	}
	a.gpuQueue = q

	// Step 6: initial surface descriptor and swapchain.
	a.surfaceDesc = SurfaceDescriptor{
		Width:       a.window.width,
		Height:      a.window.height,
		Format:      surf.PreferredFormat(),
		PresentMode: a.syncMode.presentMode(),
		Usage:       gputypes.TextureUsageRenderAttachment,
	}
	sc, err := dev.CreateSwapchain(surf, &gpu.SwapchainDescriptor{
		Width:       a.surfaceDesc.Width,
		Height:      a.surfaceDesc.Height,
		Format:      a.surfaceDesc.Format,
		PresentMode: a.surfaceDesc.PresentMode,
		Usage:       a.surfaceDesc.Usage,
	})
	if err != nil {
		panic(fmt.Sprintf("apphost: swapchain creation failed: %v", err))
	}
	a.swapchain = sc
	a.window.fbWidth = a.surfaceDesc.Width
	a.window.fbHeight = a.surfaceDesc.Height
	a.window.fbFormat = a.surfaceDesc.Format
}
