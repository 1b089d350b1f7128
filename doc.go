// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package concore provides a spawn/await primitive for structured
// concurrency, built on stackful coroutines and a worker pool that
// performs thread inversion at the await point.
//
// [Spawn] starts a function concurrently on the default pool and
// returns a [Future]. [Future.Await] blocks until the result is ready.
// If the caller reaches Await before the spawned function finishes, the
// two sides swap which logical flow each is advancing instead of one
// side blocking idle: the awaiting goroutine either steals the queued
// task and runs it directly, or parks and temporarily joins the pool as
// a rescuing worker while the original worker's dispatch loop is handed
// back to the caller's own continuation.
//
// # Architecture
//
//   - Continuations: [Callcc] and [Resume] implement symmetric transfer
//     between stackful coroutines as goroutines parked on one-shot
//     channels — the Go analogue of the asymmetric-fcontext jump this
//     design is built around elsewhere, since Go's scheduler already
//     multiplexes parked goroutines onto OS threads for us.
//   - Atomics: [code.hybscloud.com/atomix] backs every shared counter —
//     the spawn/await rendezvous state, the per-worker wake-request
//     count, the live task count, and the round-robin enqueue cursor.
//   - Wakeup: [code.hybscloud.com/lfq]'s single-producer/single-consumer
//     queue backs each worker's one-shot wakeup token;
//     [code.hybscloud.com/iox]'s adaptive backoff drives the retry loop
//     around it and around cooperative task stealing.
//   - Work lines: per-worker LIFO task lists guarded by a
//     try-lockable [sync.Mutex], scanned round-robin on enqueue and
//     dequeue so no single line is a bottleneck.
//
// # Surface
//
//   - [Spawn], [EscapingSpawn]: start work, returning a [Future] or
//     [EscapingFuture].
//   - [Future.Await], [EscapingFuture.Await]: block for the result,
//     racing the worker pool via thread inversion.
//   - [GlobalPool]: the process-wide [*Pool]; [NewPool] builds a
//     private one.
//   - [CONCORE_MAX_CONCURRENCY]: the environment variable controlling
//     default pool size.
package concore
