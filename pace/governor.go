// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package pace

import "time"

// Governor measures the iteration rate of a single loop and advertises
// the loop's desired target rate.
//
// A Governor belongs to exactly one loop and is mutated every
// iteration by that loop; it is not safe for concurrent use. It never
// blocks: sleeping between iterations is the owning loop's job (see
// [Pacer]).
type Governor struct {
	target uint32
	rate   uint32

	count       uint32
	windowStart time.Time

	// now is the clock source, replaceable in tests.
	now func() time.Time
}

// NewGovernor creates a governor with the given target rate in
// iterations per second. A target of 0 means unlimited: the owning
// loop must not block between iterations.
func NewGovernor(target uint32) *Governor {
	return &Governor{
		target: target,
		now:    time.Now,
	}
}

// SetClock replaces the governor's clock source. Pass nil to restore
// time.Now. Intended for tests that simulate elapsed time.
func (g *Governor) SetClock(now func() time.Time) {
	if now == nil {
		now = time.Now
	}
	g.now = now
}

// Start resets the measurement window. Call once before the loop's
// first iteration. The previously measured rate is discarded.
func (g *Governor) Start() {
	g.count = 0
	g.rate = 0
	g.windowStart = g.now()
}

// Tick records one completed iteration. Once at least one second has
// elapsed since the window start, the iteration count is published as
// the measured rate and the window start advances by whole seconds
// rather than jumping to "now", so measurement error does not
// accumulate across windows.
func (g *Governor) Tick() {
	g.count++

	elapsed := g.now().Sub(g.windowStart)
	if elapsed < time.Second {
		return
	}

	g.rate = g.count
	g.count = 0
	g.windowStart = g.windowStart.Add(elapsed.Truncate(time.Second))
}

// Rate returns the number of iterations measured in the last completed
// one-second window. Zero until the first window completes.
func (g *Governor) Rate() uint32 {
	return g.rate
}

// Target returns the desired iterations per second, 0 for unlimited.
func (g *Governor) Target() uint32 {
	return g.target
}

// SetTarget changes the desired rate. The new target takes effect on
// the owning loop's next iteration; the measured rate is not reset.
func (g *Governor) SetTarget(target uint32) {
	g.target = target
}

// Interval returns the ideal time per iteration for the current
// target, or 0 when the target is unlimited.
func (g *Governor) Interval() time.Duration {
	if g.target == 0 {
		return 0
	}
	return time.Second / time.Duration(g.target)
}
