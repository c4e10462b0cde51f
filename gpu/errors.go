// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package gpu

import "errors"

// Common backend errors.
var (
	// ErrBackendNotAvailable is returned when no registered backend
	// can be used.
	ErrBackendNotAvailable = errors.New("gpu: no backend available")

	// ErrZeroSizeSwapchain is returned when a swapchain is requested
	// with a zero width or height. Graphics backends treat zero-sized
	// swapchains as an error, so the request is rejected up front.
	ErrZeroSizeSwapchain = errors.New("gpu: zero-sized swapchain")
)
