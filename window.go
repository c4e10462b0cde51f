// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package apphost

import (
	"fmt"

	"github.com/gogpu/gputypes"
)

// Window holds the window-visible attributes the host owns: the
// title, the logical size, the fullscreen flag, and the framebuffer
// format and size mirrored from the live swapchain.
//
// Exactly one window is supported. Window is owned by the frame
// context; the input context must not touch it.
type Window struct {
	title      string
	width      uint32
	height     uint32
	fullscreen bool

	fbFormat gputypes.TextureFormat
	fbWidth  uint32
	fbHeight uint32
}

// Title returns the current title. The returned string is a copy the
// caller may keep; the backing buffer stays owned by the host.
func (w *Window) Title() string {
	return w.title
}

// SetTitlef formats into the host-owned title, replacing the previous
// one.
func (w *Window) SetTitlef(format string, args ...any) {
	w.title = fmt.Sprintf(format, args...)
}

// Size returns the logical window size.
func (w *Window) Size() (width, height uint32) {
	return w.width, w.height
}

// Fullscreen reports the fullscreen flag.
func (w *Window) Fullscreen() bool {
	return w.fullscreen
}

// SetFullscreen sets the fullscreen flag.
func (w *Window) SetFullscreen(on bool) {
	w.fullscreen = on
}

// FramebufferFormat returns the live swapchain's pixel format.
func (w *Window) FramebufferFormat() gputypes.TextureFormat {
	return w.fbFormat
}

// FramebufferSize returns the live swapchain's dimensions. It can lag
// the logical size while a resize is pending reconciliation.
func (w *Window) FramebufferSize() (width, height uint32) {
	return w.fbWidth, w.fbHeight
}

// release frees the window's owned storage at teardown.
func (w *Window) release() {
	w.title = ""
	w.width = 0
	w.height = 0
	w.fbWidth = 0
	w.fbHeight = 0
	w.fbFormat = gputypes.TextureFormatUndefined
}
