// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package concore

// ThreadSnapshot records which worker a logical flow started on, so a
// dispatch loop can assert it returns to the same worker identity it
// began with on exit. Workers in this implementation never migrate
// between goroutines, so Revert is an assertion rather than corrective
// action — it exists so the invariant stays checked if that ever
// changes (e.g. a future version that reassigns worker slots on a
// shrinking pool).
type ThreadSnapshot struct {
	workerIndex int
}

func takeSnapshot(workerIndex int) ThreadSnapshot {
	return ThreadSnapshot{workerIndex: workerIndex}
}

// Revert asserts that the logical flow identified by s is exiting on
// the same worker it started on.
func (s ThreadSnapshot) Revert(currentWorkerIndex int) {
	if currentWorkerIndex != s.workerIndex {
		panic("concore: worker identity drifted across a dispatch loop")
	}
}
