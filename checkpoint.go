// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package concore

import "sync/atomic"

// ThreadSuspension is a single-writer/single-reader cell holding at
// most one [Continuation] handle at a time — the handoff slot a
// rescuing worker exposes so the task it is waiting on can later tell
// it what to resume. Each spawn frame owns exactly one (see
// spawnframe.go's rescue field); there is no per-pool-worker instance,
// since a rescuer has no worker identity of its own to be addressed by.
type ThreadSuspension struct {
	slot atomic.Pointer[Continuation]
}

// Store deposits c for whoever next calls InversionCheckpoint on this
// slot. Release-ordered with respect to the store of any data the
// resumed side needs to observe.
func (s *ThreadSuspension) Store(c *Continuation) {
	s.slot.Store(c)
}

// take clears and returns the deposited continuation, if any.
func (s *ThreadSuspension) take() *Continuation {
	return s.slot.Swap(nil)
}

// InversionCheckpoint is called at the top of every iteration of a
// rescuing worker's dispatch loop ([Pool.assist]). If another goroutine
// has deposited a continuation in slot — meaning this rescuer has been
// designated the target of a thread inversion — it resumes that
// continuation and returns true; the caller's dispatch loop should stop
// in that case, since this goroutine's identity has just been handed to
// the resumed flow. Otherwise it returns false and the loop continues
// as normal.
func InversionCheckpoint(slot *ThreadSuspension) bool {
	c := slot.take()
	if c == nil {
		return false
	}
	c.deliver(nil)
	return true
}
