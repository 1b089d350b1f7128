// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package concore

// Future is the handle returned by [Spawn]. Its zero value is not
// usable; a Future must not be copied after [Future.Await] has been
// called on it, and Await must be called exactly once.
type Future[R any] struct {
	frame *spawnFrame[R]
}

// Spawn asynchronously runs fn on [GlobalPool] and returns a handle for
// its eventual result. fn runs exactly once, either on a pool worker or
// (if the caller reaches [Future.Await] first) inline on the caller.
func Spawn[R any](fn func() R) Future[R] {
	return SpawnOn(GlobalPool(), fn)
}

// SpawnOn is [Spawn] against an explicit pool, for callers that do not
// want to share [GlobalPool].
func SpawnOn[R any](pool *Pool, fn func() R) Future[R] {
	return Future[R]{frame: newSpawnFrame(pool, fn)}
}

// Await blocks until fn has run, returning its result. If the spawned
// work has not finished yet, the calling goroutine either steals and
// runs it directly or parks and temporarily joins the pool as a
// rescuing worker — the thread inversion this package is named for.
// Calling Await twice on the same Future panics.
func (f Future[R]) Await() R {
	if f.frame == nil {
		panic("concore: Await called on a zero-value Future")
	}
	return f.frame.await()
}

// ID returns the [FrameID] identifying this spawn, for logging and
// tests.
func (f Future[R]) ID() FrameID {
	return f.frame.id
}

// EscapingFuture is the heap-allocated, freely copyable counterpart to
// [Future], returned by [EscapingSpawn]. In Go both are ordinary
// pointers managed by the garbage collector, so the distinction
// carried over from the original design (stack-owned vs shared
// ownership) is nominal here; EscapingFuture exists so callers that
// want to pass a future across goroutines or store it in a struct have
// a type that says so.
type EscapingFuture[R any] struct {
	frame *spawnFrame[R]
}

// EscapingSpawn is [Spawn], returning a handle that may be freely
// copied, stored, and passed to other goroutines. The caller is
// responsible for calling Await exactly once.
func EscapingSpawn[R any](fn func() R) *EscapingFuture[R] {
	return EscapingSpawnOn(GlobalPool(), fn)
}

// EscapingSpawnOn is [EscapingSpawn] against an explicit pool.
func EscapingSpawnOn[R any](pool *Pool, fn func() R) *EscapingFuture[R] {
	return &EscapingFuture[R]{frame: newSpawnFrame(pool, fn)}
}

func (f *EscapingFuture[R]) Await() R {
	return f.frame.await()
}

// ID returns the [FrameID] identifying this spawn, for logging and
// tests.
func (f *EscapingFuture[R]) ID() FrameID {
	return f.frame.id
}
