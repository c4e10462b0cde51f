//go:build !nogpu

package wgpu

import (
	"fmt"

	"github.com/gogpu/apphost/gpu"
	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/core"
)

func init() {
	gpu.Register(gpu.BackendWGPU, func() gpu.Backend { return &Backend{} })
}

// Backend creates wgpu-backed instances.
type Backend struct{}

// Name returns the backend identifier.
func (*Backend) Name() string { return gpu.BackendWGPU }

// CreateInstance creates a wgpu instance over the primary native APIs
// (Vulkan, Metal, DX12).
func (*Backend) CreateInstance() (gpu.Instance, error) {
	desc := &gputypes.InstanceDescriptor{
		Backends: gputypes.BackendsPrimary,
		Flags:    0,
	}
	inst := core.NewInstance(desc)
	if inst == nil {
		return nil, fmt.Errorf("wgpu: instance creation failed")
	}
	return &instance{inst: inst}, nil
}

type instance struct {
	inst *core.Instance
}

func (i *instance) CreateSurface(handle gpu.PlatformHandle) (gpu.Surface, error) {
	// The pure Go port has no windowing surface yet; the handle is
	// kept so the platform layer above can blit when support lands.
	return &surface{handle: handle}, nil
}

func (i *instance) RequestAdapter(s gpu.Surface, done func(gpu.Adapter, error)) {
	adapterID, err := i.inst.RequestAdapter(&gputypes.RequestAdapterOptions{
		PowerPreference: gputypes.PowerPreferenceHighPerformance,
	})
	if err != nil {
		done(nil, fmt.Errorf("wgpu: no compatible adapter: %w", err))
		return
	}
	done(&adapter{id: adapterID}, nil)
}

func (i *instance) Release() {
	// The instance needs no explicit cleanup in the current core API.
	i.inst = nil
}

type surface struct {
	handle gpu.PlatformHandle
}

func (s *surface) PreferredFormat() gputypes.TextureFormat {
	return gputypes.TextureFormatBGRA8Unorm
}

func (s *surface) Release() {
	s.handle = 0
}

type adapter struct {
	id core.AdapterID
}

func (a *adapter) Info() gpu.AdapterInfo {
	info, err := core.GetAdapterInfo(a.id)
	if err != nil {
		return gpu.AdapterInfo{}
	}
	return gpu.AdapterInfo{
		Name:    info.Name,
		Vendor:  info.Vendor,
		Driver:  info.Driver,
		Backend: fmt.Sprintf("%v", info.Backend),
	}
}

func (a *adapter) RequestDevice(desc *gpu.DeviceDescriptor) (gpu.Device, error) {
	deviceID, err := core.RequestDevice(a.id, &gputypes.DeviceDescriptor{
		Label:            desc.Label,
		RequiredFeatures: nil,
		RequiredLimits:   gputypes.DefaultLimits(),
	})
	if err != nil {
		return nil, fmt.Errorf("wgpu: device creation failed: %w", err)
	}
	// The in-process port cannot lose its device, so desc.OnLost is
	// never invoked here.
	return &device{id: deviceID}, nil
}

func (a *adapter) Release() {
	if a.id.IsZero() {
		return
	}
	_ = core.AdapterDrop(a.id)
	a.id = core.AdapterID{}
}

type device struct {
	id core.DeviceID
}

func (d *device) Queue() (gpu.Queue, error) {
	queueID, err := core.GetDeviceQueue(d.id)
	if err != nil {
		return nil, fmt.Errorf("wgpu: queue retrieval failed: %w", err)
	}
	return &queue{id: queueID}, nil
}

func (d *device) CreateSwapchain(s gpu.Surface, desc *gpu.SwapchainDescriptor) (gpu.Swapchain, error) {
	if desc.Width == 0 || desc.Height == 0 {
		return nil, gpu.ErrZeroSizeSwapchain
	}
	return &swapchain{desc: *desc}, nil
}

func (d *device) Release() {
	if d.id.IsZero() {
		return
	}
	_ = core.DeviceDrop(d.id)
	d.id = core.DeviceID{}
}

type queue struct {
	id core.QueueID
}

func (q *queue) Release() {
	// The queue is released together with its device.
	q.id = core.QueueID{}
}

type swapchain struct {
	desc gpu.SwapchainDescriptor
}

func (s *swapchain) Descriptor() gpu.SwapchainDescriptor { return s.desc }

func (s *swapchain) Present() error {
	// No windowing swapchain in the port yet; nothing to queue.
	return nil
}

func (s *swapchain) Release() {}

var _ gpu.Backend = (*Backend)(nil)
