// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package concore

// minStackSize is the advertised minimum usable stack size a [Stack]
// should describe, matching the original library's default. Go's own
// goroutine stacks grow on demand starting far below this, so
// [DefaultAllocator] only carries the value for documentation and for
// allocators that do manage real memory.
const minStackSize = 256 * 1024

// guardGap is the reserved space above the usable portion of a stack
// for the coroutine's own control record.
const guardGap = 64

// Stack describes a region of memory a [Continuation] may run on.
// SP is the (conceptual) top of the region; Size is its usable size in
// bytes, not counting guardGap.
type Stack struct {
	SP   uintptr
	Size uintptr
}

// Allocator supplies and reclaims [Stack] values for [Callcc]. A
// implementation must be safe to share across goroutines: Callcc may
// call Allocate concurrently from many workers.
type Allocator interface {
	Allocate() (Stack, error)
	Deallocate(Stack)
}

// DefaultAllocator is the zero-configuration [Allocator] used when none
// is supplied. Because [Callcc] represents a stackful coroutine as a
// goroutine rather than a raw register/stack context, there is no real
// memory to carve up here — Allocate returns a descriptive placeholder
// sized at minStackSize, and Deallocate is a no-op. The contract still
// exists as a real extension point: a caller that needs to bound or
// pool goroutine creation (for instance, to cap how many coroutines run
// concurrently) can supply its own [Allocator] that blocks in Allocate.
type DefaultAllocator struct{}

func (DefaultAllocator) Allocate() (Stack, error) {
	return Stack{SP: 0, Size: minStackSize}, nil
}

func (DefaultAllocator) Deallocate(Stack) {}
