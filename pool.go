// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package concore

import (
	"sync"

	"code.hybscloud.com/atomix"
	"code.hybscloud.com/iox"
)

// workerRecord is the per-worker bookkeeping the pool keeps: just its
// wake gate, so an enqueuer can nudge it awake. A real worker's
// dispatch loop is never itself the target of a thread inversion —
// every inversion hands off through the spawn frame's own
// [ThreadSuspension] (see spawnframe.go's rescue field), which a
// rescuing goroutine checks in [Pool.assist] regardless of whether the
// task it picked up happened to be running on a pool worker or on
// another rescuer.
type workerRecord struct {
	index int
	gate  *wakeGate
}

// Pool is a fixed-size worker pool whose dispatch loops back the
// spawn/await protocol in spawnframe.go. Construct one with [NewPool],
// or use the process-wide instance via [GlobalPool].
type Pool struct {
	workers       []*workerRecord
	lines         []workLine
	roundRobin    atomix.Uint32
	numTasks      atomix.Int32
	stopRequested atomix.Uint32
	wg            sync.WaitGroup
}

// NewPool starts size workers, each with its own work line. size must
// be positive.
func NewPool(size int) *Pool {
	if size <= 0 {
		panic("concore: pool size must be positive")
	}
	p := &Pool{
		workers: make([]*workerRecord, size),
		lines:   make([]workLine, size),
	}
	for i := range p.workers {
		p.workers[i] = &workerRecord{index: i, gate: newWakeGate()}
	}
	p.wg.Add(size)
	for i := range p.workers {
		go p.threadMain(i)
	}
	return p
}

func (p *Pool) lineCount() int { return len(p.lines) }

// Enqueue schedules fn to run on some worker, passing that worker's
// index. It never blocks the caller on task execution, only (rarely) on
// the brief critical section of a contended work line.
func (p *Pool) Enqueue(fn func(workerIndex int)) {
	p.enqueueTask(&taskNode{fn: fn})
}

func (p *Pool) enqueueTask(t *taskNode) {
	if p.stopRequested.Load() != 0 {
		panic("concore: enqueue on a closed pool")
	}
	n := len(p.lines)
	start := int(p.roundRobin.Add(1)) % n
	for i := 0; i < n; i++ {
		if p.lines[(start+i)%n].tryPush(t) {
			p.notifyOne()
			return
		}
	}
	p.lines[start].push(t)
	p.notifyOne()
}

// notifyOne accounts for one freshly queued task and wakes a single
// idle worker, if one is likely sleeping.
func (p *Pool) notifyOne() {
	n := p.numTasks.Add(1)
	if int(n) > len(p.workers) {
		return
	}
	for _, w := range p.workers {
		if w.gate.tryNotify() {
			return
		}
	}
}

// stealAny scans up to two full passes over the lines, starting at
// startLine, looking for any task to run. Two passes smooth over
// transient TryLock contention without a worker giving up on work that
// is genuinely there.
func (p *Pool) stealAny(startLine int) *taskNode {
	n := len(p.lines)
	for i := 0; i < 2*n; i++ {
		idx := (startLine + i) % n
		if t := p.lines[idx].tryPop(); t != nil {
			p.numTasks.Add(-1)
			return t
		}
	}
	return nil
}

// ExtractTask removes a specific, previously enqueued task before any
// worker has picked it up, returning true if it won that race. Used by
// an awaiting caller to run the spawned work itself instead of parking.
func (p *Pool) ExtractTask(t *taskNode) bool {
	if extractTask(t) {
		p.numTasks.Add(-1)
		return true
	}
	return false
}

// Clear drops every task still queued on every line without running
// it, for use during an orderly shutdown that intentionally discards
// pending work.
func (p *Pool) Clear() {
	for i := range p.lines {
		for {
			t := p.lines[i].tryPop()
			if t == nil {
				break
			}
			p.numTasks.Add(-1)
		}
	}
}

// Close requests every worker to stop once no task remains queued on
// any line, then waits for them to exit. It panics if tasks remain queued when all
// workers have stopped, the idiomatic analogue of the original
// library's terminate-on-nonempty-destroy behavior — call [Pool.Clear]
// first if discarding pending work is intended.
func (p *Pool) Close() {
	p.stopRequested.Store(1)
	for _, w := range p.workers {
		w.gate.tryNotify()
	}
	p.wg.Wait()
	if p.numTasks.Load() != 0 {
		panic("concore: pool closed with tasks still queued")
	}
}

func (p *Pool) threadMain(idx int) {
	w := p.workers[idx]
	snap := takeSnapshot(idx)
	defer p.wg.Done()
	defer zone("thread_main")()
	for {
		if p.stopRequested.Load() != 0 && p.numTasks.Load() == 0 {
			snap.Revert(idx)
			return
		}
		t := p.stealAny(idx)
		if t == nil {
			w.gate.sleep()
			continue
		}
		t.fn(idx)
	}
}

// assist lets the calling goroutine temporarily join the pool as a
// rescuing worker: it drains tasks like a real worker until
// InversionCheckpoint finds a continuation deposited in suspension, at
// which point it resumes that continuation and returns. Used by
// [Future.Await] when it parks rather than winning the race outright.
func (p *Pool) assist(suspension *ThreadSuspension) {
	var b iox.Backoff
	for {
		if InversionCheckpoint(suspension) {
			return
		}
		if t := p.stealAny(0); t != nil {
			b.Reset()
			t.fn(-1)
			continue
		}
		b.Wait()
	}
}

var globalPool = sync.OnceValue(func() *Pool {
	return NewPool(defaultConcurrency())
})

// GlobalPool returns the process-wide default pool, sized from
// [CONCORE_MAX_CONCURRENCY] (or [runtime.NumCPU] if unset), created on
// first use.
func GlobalPool() *Pool {
	return globalPool()
}
