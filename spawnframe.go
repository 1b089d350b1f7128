// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package concore

import (
	"runtime"
	"sync/atomic"

	"code.hybscloud.com/atomix"
)

// fetchAddInt32 performs an atomic fetch-and-add on a, returning the
// value a held immediately before the add.
func fetchAddInt32(a *atomix.Int32, delta int32) int32 {
	return a.Add(delta) - delta
}

// spawnFrame holds everything one spawn/await pair needs: the task
// enqueued on the pool, the rendezvous state machine deciding who runs
// the user function and who performs the thread inversion, and the
// result cell.
//
// syncState starts at 0. The worker side adds 1 when the spawned task
// finishes; the originator side adds 2 when it reaches await. Reading
// the value the add returned (the value immediately before it) tells
// each side which race it is in:
//
//   - worker sees 0: the originator has not reached await yet — resume
//     the worker's own paused dispatch loop, nothing else to do.
//   - worker sees 2: the originator is already parked — perform the
//     thread inversion.
//   - originator sees 1: the worker already finished — read the result.
//   - originator sees 0: arrived first — try to steal the task outright,
//     or park and temporarily assist the pool until handed the worker's
//     dispatch loop back.
//
// Both races settle the state at a terminal value: 2 if the originator
// won outright (the task is removed from its line and the worker side
// never runs), 3 if both sides actually ran (either order).
type spawnFrame[R any] struct {
	id         FrameID
	pool       *Pool
	task       taskNode
	syncState  atomix.Int32
	originator atomic.Pointer[Continuation]
	rescue     ThreadSuspension
	fn         func() R
	result     R
}

func newSpawnFrame[R any](pool *Pool, fn func() R) *spawnFrame[R] {
	f := &spawnFrame[R]{id: nextFrameID(), pool: pool, fn: fn}
	f.task.fn = f.executeOnWorker
	pool.enqueueTask(&f.task)
	return f
}

// executeOnWorker is the task body a worker runs when it pops this
// frame's task off a work line. It captures the worker's own dispatch
// continuation via Callcc, runs the user function on the resulting
// fresh stack, and hands the outcome to onAsyncComplete.
func (f *spawnFrame[R]) executeOnWorker(int) {
	defer zone("execute_spawn_task")()
	Callcc(DefaultAllocator{}, func(caller *Continuation) Transfer {
		f.result = f.fn()
		return f.onAsyncComplete(caller)
	})
}

func (f *spawnFrame[R]) onAsyncComplete(caller *Continuation) Transfer {
	defer zone("on_async_complete")()
	switch fetchAddInt32(&f.syncState, 1) {
	case 0:
		// Originator has not reached await yet: resume our own paused
		// dispatch loop unchanged.
		return Transfer{Target: caller}
	case 2:
		// Originator is parked. Hand it the dispatch-loop continuation
		// to pass back to the rescuing assist loop, then wake it.
		oc := f.originator.Load()
		for oc == nil {
			runtime.Gosched()
			oc = f.originator.Load()
		}
		f.rescue.Store(caller)
		oc.deliver(nil)
		return Transfer{}
	default:
		panic("concore: spawn task executed twice")
	}
}

// await implements the originator's side of the rendezvous.
func (f *spawnFrame[R]) await() R {
	defer zone("await")()
	switch fetchAddInt32(&f.syncState, 2) {
	case 1:
		// Worker already finished; result is visible thanks to the
		// acquire half of the fetch-add above.
	case 0:
		if f.pool.ExtractTask(&f.task) {
			// Won the race outright: run the work ourselves, inline.
			f.result = f.fn()
			break
		}
		// The worker already has the task. Park, and temporarily join
		// the pool as a rescuing worker until handed its dispatch loop.
		Callcc(DefaultAllocator{}, func(caller *Continuation) Transfer {
			f.originator.Store(caller)
			f.pool.assist(&f.rescue)
			return Transfer{}
		})
	default:
		panic("concore: await called twice on the same spawn")
	}
	return f.result
}
