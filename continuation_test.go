// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package concore

import "testing"

// TestCallccReturnsPayload verifies invariant 5: callcc(f) followed by
// the continuation f yielded (here, caller itself) returns control to
// callcc's caller with the payload round-tripped unchanged.
func TestCallccReturnsPayload(t *testing.T) {
	payload := newContinuation()

	got := Callcc(DefaultAllocator{}, func(caller *Continuation) Transfer {
		return Transfer{Target: caller, Payload: payload}
	})

	if got != payload {
		t.Fatalf("Callcc returned %p, want payload %p", got, payload)
	}
}

// TestResumeHandshake exercises a two-sided Resume/park exchange: one
// goroutine parks on a continuation it hands out, Resume delivers a
// fresh continuation to it and waits for a reply on that continuation.
func TestResumeHandshake(t *testing.T) {
	ready := make(chan *Continuation, 1)
	reply := newContinuation()

	go func() {
		target := newContinuation()
		ready <- target
		back := target.park()
		back.deliver(reply)
	}()

	target := <-ready
	got := Resume(target, nil)
	if got != reply {
		t.Fatalf("Resume returned %p, want reply %p", got, reply)
	}
}

// TestContinuationSingleHandoff is a smoke test that a single
// deliver/park pair works without racing.
func TestContinuationSingleHandoff(t *testing.T) {
	c := newContinuation()
	payload := newContinuation()
	go c.deliver(payload)
	got := c.park()
	if got != payload {
		t.Fatalf("park returned %p, want %p", got, payload)
	}
}
