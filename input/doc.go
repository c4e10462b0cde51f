// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package input provides the host's bounded event queue and the input
// state derived from it.
//
// Platform event sources push events from the input loop; the frame
// loop pops them. The queue and the derived state are the only data
// shared between the two loops, and both are serialized behind one
// internal lock. Overflow never fails the producer: a full queue sets
// a sticky flag the consumer observes through CheckAndClearOverflow.
//
// Key and modifier vocabulary comes from gpucontext so event handlers
// interoperate with the rest of the gogpu stack.
package input
