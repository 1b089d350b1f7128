// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package concore

import (
	"sync"
	"testing"
	"time"
)

// TestPoolEnqueueRunsTask checks the basic dispatch path: an enqueued
// task eventually runs on some worker.
func TestPoolEnqueueRunsTask(t *testing.T) {
	p := NewPool(2)
	done := make(chan int, 1)
	p.Enqueue(func(workerIndex int) {
		done <- workerIndex
	})

	select {
	case idx := <-done:
		if idx < 0 || idx >= 2 {
			t.Fatalf("worker index %d out of range", idx)
		}
	case <-time.After(time.Second):
		t.Fatalf("task never ran")
	}
	p.Close()
}

// TestPoolManyTasks checks that a burst of tasks across several lines
// all eventually run exactly once (invariant 1 transposed to plain
// pool tasks).
func TestPoolManyTasks(t *testing.T) {
	const n = 500
	p := NewPool(4)
	var mu sync.Mutex
	seen := make(map[int]bool, n)
	var wg sync.WaitGroup
	wg.Add(n)

	for i := 0; i < n; i++ {
		i := i
		p.Enqueue(func(int) {
			mu.Lock()
			seen[i] = true
			mu.Unlock()
			wg.Done()
		})
	}

	waitOrTimeout(t, &wg, 5*time.Second)
	if len(seen) != n {
		t.Fatalf("ran %d of %d tasks", len(seen), n)
	}
	p.Close()
}

// TestPoolExtractTaskWinsRace checks the cooperative-steal path: a task
// extracted before any worker claims it is removed cleanly and
// numTasks is decremented.
func TestPoolExtractTaskWinsRace(t *testing.T) {
	p := NewPool(1)
	// Keep the single worker busy executing this task so it cannot
	// reach our second task before we extract it.
	block := make(chan struct{})
	ready := make(chan struct{})
	p.Enqueue(func(int) {
		close(ready)
		<-block
	})
	<-ready

	ran := false
	task := &taskNode{fn: func(int) { ran = true }}
	p.enqueueTask(task)

	if !p.ExtractTask(task) {
		t.Fatalf("extracting a task ahead of the busy worker must succeed")
	}
	close(block)
	p.Close()

	if ran {
		t.Fatalf("an extracted task must not also run on a worker")
	}
}

// TestPoolClear drains queued tasks without running them, then Close
// must not panic since nothing remains queued afterward.
func TestPoolClear(t *testing.T) {
	p := NewPool(1)
	block := make(chan struct{})
	p.Enqueue(func(int) { <-block })

	ran := 0
	for i := 0; i < 100; i++ {
		p.Enqueue(func(int) { ran++ })
	}
	p.Clear()
	close(block)
	p.Close()
}

// TestPoolCloseEmptyDoesNotPanic checks the ordinary shutdown path.
func TestPoolCloseEmptyDoesNotPanic(t *testing.T) {
	p := NewPool(3)
	p.Close()
}

func waitOrTimeout(t *testing.T, wg *sync.WaitGroup, d time.Duration) {
	t.Helper()
	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(d):
		t.Fatalf("timed out waiting for tasks to finish")
	}
}
