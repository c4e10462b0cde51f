// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package input

import "github.com/gogpu/gpucontext"

// Kind identifies the type of an input event.
type Kind uint8

const (
	// KindKeyPress is sent when a key goes down.
	KindKeyPress Kind = iota

	// KindKeyRelease is sent when a key comes back up.
	KindKeyRelease

	// KindMousePress is sent when a pointer button goes down.
	KindMousePress

	// KindMouseRelease is sent when a pointer button comes back up.
	KindMouseRelease

	// KindMouseMotion reports the pointer's new position.
	KindMouseMotion

	// KindMouseScroll reports scroll wheel or trackpad deltas.
	KindMouseScroll

	// KindFocusGained is sent when the window gains input focus.
	KindFocusGained

	// KindFocusLost is sent when the window loses input focus.
	// Releases cannot be observed while unfocused, so the derived
	// state drops all pressed keys and buttons.
	KindFocusLost

	// KindFramebufferResize reports a new framebuffer size. The frame
	// loop reacts by flagging the surface for reconciliation.
	KindFramebufferResize

	// KindSyncModeChange reports a requested presentation sync mode.
	KindSyncModeChange

	// KindCloseRequest is sent when the user asks to close the window.
	KindCloseRequest
)

// String returns the kind's name for diagnostics.
func (k Kind) String() string {
	switch k {
	case KindKeyPress:
		return "key-press"
	case KindKeyRelease:
		return "key-release"
	case KindMousePress:
		return "mouse-press"
	case KindMouseRelease:
		return "mouse-release"
	case KindMouseMotion:
		return "mouse-motion"
	case KindMouseScroll:
		return "mouse-scroll"
	case KindFocusGained:
		return "focus-gained"
	case KindFocusLost:
		return "focus-lost"
	case KindFramebufferResize:
		return "framebuffer-resize"
	case KindSyncModeChange:
		return "sync-mode-change"
	case KindCloseRequest:
		return "close-request"
	default:
		return "unknown"
	}
}

// MouseButton identifies a pointer button.
type MouseButton uint8

const (
	MouseButtonLeft MouseButton = iota
	MouseButtonRight
	MouseButtonMiddle
)

// Event is a single input record. Only the fields relevant to the
// event's Kind are meaningful; the rest are zero.
type Event struct {
	// Kind is the event type.
	Kind Kind

	// Key is set for key press/release events.
	Key gpucontext.Key

	// Mods carries the modifier state for key and button events.
	Mods gpucontext.Modifiers

	// Button is set for mouse press/release events.
	Button MouseButton

	// X, Y is the pointer position for motion and button events.
	X, Y float64

	// ScrollX, ScrollY are the scroll deltas for scroll events.
	ScrollX, ScrollY float64

	// Width, Height is the new framebuffer size for resize events.
	Width, Height uint32

	// SyncMode is the requested mode for sync-mode-change events,
	// encoded by the host (see apphost.SyncMode).
	SyncMode uint8
}
