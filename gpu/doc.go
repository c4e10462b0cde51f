// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package gpu defines the graphics-API collaborator interfaces the
// host sequences calls into, and a registry of named backend
// implementations.
//
// The host never talks to a graphics library directly: it acquires an
// Instance, Adapter, Device, Queue, Surface and Swapchain through
// these interfaces and releases them in a fixed order at teardown.
// Backends register themselves from init() functions (typically behind
// build tags) and are selected by name via Get or by priority via
// Default. The APPHOST_BACKEND environment variable, read by the host,
// maps onto these names.
package gpu
