// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package headless provides an in-memory gpu backend with no display.
//
// It exists as the guaranteed-available fallback and as the test
// double for the host's lifecycle: every Release call is recorded in
// creation-independent order, so teardown ordering can be asserted.
package headless

import (
	"sync"

	"github.com/gogpu/apphost/gpu"
	"github.com/gogpu/gputypes"
)

func init() {
	gpu.Register(gpu.BackendHeadless, func() gpu.Backend { return New() })
}

// Backend is the in-memory backend. All handles created from it share
// one release recorder.
type Backend struct {
	mu       sync.Mutex
	releases []string
	presents int
}

// New creates a headless backend.
func New() *Backend {
	return &Backend{}
}

// Name returns the backend identifier.
func (b *Backend) Name() string { return gpu.BackendHeadless }

// CreateInstance creates the root object.
func (b *Backend) CreateInstance() (gpu.Instance, error) {
	return &instance{backend: b}, nil
}

// Releases returns the names of released handles in release order:
// one of "swapchain", "queue", "device", "surface", "adapter",
// "instance" per Release call.
func (b *Backend) Releases() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]string, len(b.releases))
	copy(out, b.releases)
	return out
}

// Presents returns the number of Present calls across all swapchains.
func (b *Backend) Presents() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.presents
}

func (b *Backend) record(what string) {
	b.mu.Lock()
	b.releases = append(b.releases, what)
	b.mu.Unlock()
}

type instance struct {
	backend *Backend
}

func (i *instance) CreateSurface(handle gpu.PlatformHandle) (gpu.Surface, error) {
	return &surface{backend: i.backend}, nil
}

func (i *instance) RequestAdapter(s gpu.Surface, done func(gpu.Adapter, error)) {
	// Completion is synchronous in memory but still delivered through
	// the callback, preserving the one-shot contract.
	done(&adapter{backend: i.backend}, nil)
}

func (i *instance) Release() { i.backend.record("instance") }

type surface struct {
	backend *Backend
}

func (s *surface) PreferredFormat() gputypes.TextureFormat {
	return gputypes.TextureFormatBGRA8Unorm
}

func (s *surface) Release() { s.backend.record("surface") }

type adapter struct {
	backend *Backend
}

func (a *adapter) Info() gpu.AdapterInfo {
	return gpu.AdapterInfo{
		Name:    "headless",
		Vendor:  "gogpu",
		Backend: "cpu",
	}
}

func (a *adapter) RequestDevice(desc *gpu.DeviceDescriptor) (gpu.Device, error) {
	return &device{backend: a.backend}, nil
}

func (a *adapter) Release() { a.backend.record("adapter") }

type device struct {
	backend *Backend
}

func (d *device) Queue() (gpu.Queue, error) {
	return &queue{backend: d.backend}, nil
}

func (d *device) CreateSwapchain(s gpu.Surface, desc *gpu.SwapchainDescriptor) (gpu.Swapchain, error) {
	if desc.Width == 0 || desc.Height == 0 {
		return nil, gpu.ErrZeroSizeSwapchain
	}
	return &swapchain{backend: d.backend, desc: *desc}, nil
}

func (d *device) Release() { d.backend.record("device") }

type queue struct {
	backend *Backend
}

func (q *queue) Release() { q.backend.record("queue") }

type swapchain struct {
	backend *Backend
	desc    gpu.SwapchainDescriptor
}

func (s *swapchain) Descriptor() gpu.SwapchainDescriptor { return s.desc }

func (s *swapchain) Present() error {
	s.backend.mu.Lock()
	s.backend.presents++
	s.backend.mu.Unlock()
	return nil
}

func (s *swapchain) Release() { s.backend.record("swapchain") }

var _ gpu.Backend = (*Backend)(nil)
