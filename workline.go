// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package concore

import "sync"

// workLine is a LIFO list of pending tasks guarded by a try-lockable
// mutex. The runtime mandates a genuine mutex here (not a lock-free
// queue) because a line is multi-producer/multi-consumer: any enqueuer
// may push to any line, and any worker may pop from any line while
// scanning for work, which is outside the single-producer/
// single-consumer shape [code.hybscloud.com/lfq] is built for.
type workLine struct {
	mu   sync.Mutex
	head *taskNode
}

func (l *workLine) pushUnprotected(t *taskNode) {
	t.line = l
	t.prevLink = &l.head
	t.next = l.head
	if l.head != nil {
		l.head.prevLink = &t.next
	}
	l.head = t
}

func (l *workLine) popUnprotected() *taskNode {
	t := l.head
	if t == nil {
		return nil
	}
	l.head = t.next
	if l.head != nil {
		l.head.prevLink = &l.head
	}
	t.reset()
	return t
}

// tryPush pushes t if the line's mutex is uncontended, returning false
// otherwise so the caller can try another line.
func (l *workLine) tryPush(t *taskNode) bool {
	if !l.mu.TryLock() {
		return false
	}
	l.pushUnprotected(t)
	l.mu.Unlock()
	return true
}

// push pushes t, blocking for the line's mutex if necessary.
func (l *workLine) push(t *taskNode) {
	l.mu.Lock()
	l.pushUnprotected(t)
	l.mu.Unlock()
}

// tryPop pops the most recently pushed task if the line's mutex is
// uncontended and a task is present.
func (l *workLine) tryPop() *taskNode {
	if !l.mu.TryLock() {
		return nil
	}
	defer l.mu.Unlock()
	return l.popUnprotected()
}

// extractTask removes t from whatever line it currently sits on, taking
// that line's mutex. Returns false if t has already been removed (by a
// concurrent pop or a concurrent extract) by the time the lock is held.
func extractTask(t *taskNode) bool {
	l := t.line
	if l == nil {
		return false
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	if t.line != l {
		// Someone else already unlinked it between our read of t.line
		// and acquiring the mutex.
		return false
	}
	*t.prevLink = t.next
	if t.next != nil {
		t.next.prevLink = t.prevLink
	}
	t.reset()
	return true
}
