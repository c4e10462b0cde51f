// Package wgpu provides the gpu backend for the pure Go WebGPU port
// (github.com/gogpu/wgpu).
//
// The backend drives real adapter and device acquisition through the
// wgpu core API. The port has no windowing swapchain yet, so surfaces
// and swapchains are configuration-tracking handles and Present is a
// flush point only; presentation to a native window arrives with
// surface support in wgpu.
//
// Build with -tags nogpu to exclude this backend.
package wgpu
