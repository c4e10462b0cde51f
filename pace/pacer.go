// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package pace

import (
	"context"

	"golang.org/x/time/rate"
)

// Pacer blocks a loop between iterations to approximate its governor's
// target rate. It is the blocking counterpart to [Governor]: the
// governor measures, the pacer waits.
//
// A Pacer belongs to exactly one loop, like its governor.
type Pacer struct {
	limiter *rate.Limiter
	target  uint32
}

// NewPacer creates a pacer for the given target rate in iterations per
// second. A target of 0 means unlimited: Wait returns immediately.
func NewPacer(target uint32) *Pacer {
	p := &Pacer{
		limiter: rate.NewLimiter(rate.Inf, 1),
	}
	p.SetTarget(target)
	return p
}

// SetTarget retargets the pacer. Takes effect on the next Wait; an
// iteration already admitted is not recalled.
func (p *Pacer) SetTarget(target uint32) {
	p.target = target
	if target == 0 {
		p.limiter.SetLimit(rate.Inf)
		return
	}
	p.limiter.SetLimit(rate.Limit(target))
}

// Target returns the current target rate, 0 for unlimited.
func (p *Pacer) Target() uint32 {
	return p.target
}

// Wait blocks until the next iteration may begin. When the target is
// unlimited it returns immediately. Returns the context's error if the
// context is canceled while waiting.
func (p *Pacer) Wait(ctx context.Context) error {
	if p.target == 0 {
		return nil
	}
	return p.limiter.Wait(ctx)
}
