// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package concore

import (
	"testing"
	"time"
)

// TestWakeGateNotifyBeforeSleep checks that a notify issued before
// anyone is sleeping does not touch the token, and the later sleep
// simply consumes the outstanding request without blocking.
func TestWakeGateNotifyBeforeSleep(t *testing.T) {
	g := newWakeGate()
	if g.tryNotify() {
		t.Fatalf("tryNotify with nobody sleeping must not report signalling the token")
	}

	done := make(chan struct{})
	go func() {
		g.sleep()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatalf("sleep did not return promptly for an already-pending notify")
	}
}

// TestWakeGateRedundantNotify checks that a second notify while one is
// already outstanding does not double up on signalling the token.
func TestWakeGateRedundantNotify(t *testing.T) {
	g := newWakeGate()
	if g.tryNotify() {
		t.Fatalf("first tryNotify with nobody sleeping must not signal")
	}
	if g.tryNotify() {
		t.Fatalf("second tryNotify with nobody sleeping must not signal")
	}
	// Two outstanding notifies; two sleeps must both return without
	// blocking, consuming one each.
	done := make(chan struct{})
	go func() {
		g.sleep()
		g.sleep()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatalf("sleep did not consume the outstanding notifies")
	}
}

// TestWakeGateSleepThenNotify checks the race-prone path: a worker
// sleeps before any notify is issued, and a later notify must still
// wake it, never losing the wakeup.
func TestWakeGateSleepThenNotify(t *testing.T) {
	g := newWakeGate()
	sleeping := make(chan struct{})
	done := make(chan struct{})

	go func() {
		close(sleeping)
		g.sleep()
		close(done)
	}()

	<-sleeping
	// Give the sleeper a chance to reach the token wait before notifying.
	time.Sleep(20 * time.Millisecond)

	select {
	case <-done:
		t.Fatalf("sleep returned before any notify was issued")
	default:
	}

	if !g.tryNotify() {
		t.Fatalf("tryNotify while a sleeper is waiting must report signalling the token")
	}

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatalf("sleep did not wake after notify")
	}
}
