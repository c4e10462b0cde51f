// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package pace provides frequency measurement and pacing for the
// host's frame and input loops.
//
// A Governor measures how many iterations a loop completed in the last
// second and carries the loop's desired target rate. It never blocks.
// The blocking side lives in Pacer, which the owning loop waits on
// between iterations when a target is set. Splitting measurement from
// blocking keeps the governor unaware of goroutines, so the frame loop
// and the input loop can be paced independently with one Governor and
// one Pacer each.
package pace
