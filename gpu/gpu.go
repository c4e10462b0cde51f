// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package gpu

import "github.com/gogpu/gputypes"

// PlatformHandle is an opaque native window handle supplied by the
// platform layer. The host passes it through to the backend untouched;
// a zero handle means headless presentation.
type PlatformHandle uintptr

// PresentMode is the backend policy for queuing completed frames to
// the display.
type PresentMode uint8

const (
	// PresentModeImmediate presents without waiting for vertical
	// blank. Lowest latency, may tear.
	PresentModeImmediate PresentMode = iota

	// PresentModeFifo queues frames and presents one per vertical
	// blank. Never tears; caps the frame rate at the refresh rate.
	PresentModeFifo

	// PresentModeMailbox keeps a single pending frame that newer
	// frames replace. Never tears and never blocks the producer.
	PresentModeMailbox
)

// String returns the present mode's name for diagnostics.
func (m PresentMode) String() string {
	switch m {
	case PresentModeImmediate:
		return "immediate"
	case PresentModeFifo:
		return "fifo"
	case PresentModeMailbox:
		return "mailbox"
	default:
		return "unknown"
	}
}

// AdapterInfo describes the physical GPU behind an adapter.
type AdapterInfo struct {
	// Name is the GPU name (e.g. "NVIDIA GeForce RTX 3080").
	Name string

	// Vendor is the GPU vendor.
	Vendor string

	// Driver is the driver version string, if known.
	Driver string

	// Backend is the graphics API in use (Vulkan, Metal, DX12, ...).
	// Empty means the adapter has no usable backend; the host treats
	// that as a fatal startup condition.
	Backend string
}

// DeviceDescriptor carries the caller's device requirements.
type DeviceDescriptor struct {
	// Label is an optional debug label.
	Label string

	// OnLost is invoked at most once if the device is lost after
	// creation. The host installs a callback that terminates the
	// process: this layer has no asset re-upload path, so a lost
	// device is unrecoverable.
	OnLost func(reason string)
}

// SwapchainDescriptor configures a swapchain's rotating presentation
// buffers.
type SwapchainDescriptor struct {
	// Width, Height are the buffer dimensions in pixels. Backends
	// reject zero dimensions.
	Width, Height uint32

	// Format is the buffer pixel format.
	Format gputypes.TextureFormat

	// PresentMode is the presentation policy.
	PresentMode PresentMode

	// Usage are the texture usage flags for the buffers.
	Usage gputypes.TextureUsage
}

// Backend creates instances for one graphics implementation. Backends
// are registered by name via Register.
type Backend interface {
	// Name returns the backend identifier (e.g. "wgpu", "headless").
	Name() string

	// CreateInstance creates the root API object.
	CreateInstance() (Instance, error)
}

// Instance is the root graphics object. It creates surfaces and
// requests adapters.
type Instance interface {
	// CreateSurface wraps a native window handle in a presentation
	// surface.
	CreateSurface(handle PlatformHandle) (Surface, error)

	// RequestAdapter asynchronously requests an adapter compatible
	// with the surface. done is invoked exactly once, with either a
	// non-nil adapter or an error, possibly before RequestAdapter
	// returns.
	RequestAdapter(surface Surface, done func(Adapter, error))

	// Release destroys the instance.
	Release()
}

// Adapter is a handle to a physical GPU.
type Adapter interface {
	// Info describes the GPU.
	Info() AdapterInfo

	// RequestDevice creates a logical device.
	RequestDevice(desc *DeviceDescriptor) (Device, error)

	// Release destroys the adapter handle.
	Release()
}

// Device is a logical GPU context.
type Device interface {
	// Queue returns the device's command-submission queue.
	Queue() (Queue, error)

	// CreateSwapchain creates a swapchain presenting to surface.
	CreateSwapchain(surface Surface, desc *SwapchainDescriptor) (Swapchain, error)

	// Release destroys the device. The caller releases the device's
	// queue first.
	Release()
}

// Queue is a command-submission channel.
type Queue interface {
	// Release drops the queue handle. Most implementations release
	// the underlying queue together with the device.
	Release()
}

// Surface is a presentation target created from a platform handle.
type Surface interface {
	// PreferredFormat returns the texture format the surface prefers
	// for its swapchain.
	PreferredFormat() gputypes.TextureFormat

	// Release destroys the surface.
	Release()
}

// Swapchain is the set of rotating presentation buffers.
type Swapchain interface {
	// Descriptor returns the configuration the swapchain was created
	// with.
	Descriptor() SwapchainDescriptor

	// Present queues the current buffer for display.
	Present() error

	// Release destroys the swapchain.
	Release()
}
