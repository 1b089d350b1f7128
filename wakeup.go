// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package concore

import (
	"code.hybscloud.com/atomix"
	"code.hybscloud.com/iox"
	"code.hybscloud.com/lfq"
)

// wakeupToken is the one-shot, futex-like primitive a single worker
// sleeps on. Exactly one notifier and exactly one consumer ever touch a
// given token, which is the single-producer/single-consumer shape
// [code.hybscloud.com/lfq] targets.
type wakeupToken struct {
	q lfq.SPSC[struct{}]
}

func newWakeupToken() *wakeupToken {
	w := &wakeupToken{}
	w.q.Init(1)
	return w
}

func (w *wakeupToken) signal() {
	_ = w.q.Enqueue(&struct{}{})
}

// wait blocks until signal has been called, backing off adaptively
// between polls.
func (w *wakeupToken) wait() {
	var b iox.Backoff
	for {
		if _, err := w.q.Dequeue(); err == nil {
			return
		}
		b.Wait()
	}
}

// wakeGate implements the wake-request fetch-add protocol from the
// original thread pool: a counting semaphore that guarantees a pending
// notify is never lost, whichever side — notifier or sleeper — gets
// there first.
//
// pending is (outstanding notifies not yet claimed) minus (workers
// currently blocked waiting for one); it nets to zero whenever neither
// side is ahead. tryNotify increments it; a result <= 0 means a sleeper
// got there first (or is about to), so the token must be signalled.
// sleep decrements it; a result >= 0 means a notify was already
// outstanding, so sleep returns immediately without touching the token.
type wakeGate struct {
	pending atomix.Int32
	token   *wakeupToken
}

func newWakeGate() *wakeGate {
	return &wakeGate{token: newWakeupToken()}
}

// tryNotify records a wakeup request, signalling the token only if a
// sleeper is already waiting (or racing to wait) for one.
func (g *wakeGate) tryNotify() bool {
	if g.pending.Add(1) <= 0 {
		g.token.signal()
		return true
	}
	return false
}

// sleep blocks until a wakeup request is outstanding, consuming it. If
// one is already outstanding it returns immediately without touching
// the token.
func (g *wakeGate) sleep() {
	if g.pending.Add(-1) >= 0 {
		return
	}
	g.token.wait()
}
