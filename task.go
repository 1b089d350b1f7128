// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package concore

// taskNode is the intrusive list node every unit of pool work is
// embedded in. next/prevLink form a doubly-linked list so a task can be
// unlinked in O(1) from wherever it sits, without scanning its line —
// prevLink points at the pointer field that refers to this node
// (either another node's next, or a line's head), so unlinking is a
// single pointer rewrite in each direction.
type taskNode struct {
	fn       func(workerIndex int)
	next     *taskNode
	prevLink **taskNode
	line     *workLine
}

func (t *taskNode) reset() {
	t.next = nil
	t.prevLink = nil
	t.line = nil
}
