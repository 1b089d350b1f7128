// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package concore

// Continuation is a resumable handle to a suspended stackful coroutine.
// It is single-use: once delivered to (resumed by) one side of a
// handoff, using it again panics. Continuations are built from a
// one-shot, unbuffered channel rather than a raw machine context — Go's
// scheduler, not manual register swapping, is what actually moves work
// between OS threads here.
type Continuation struct {
	ch chan *Continuation
}

func newContinuation() *Continuation {
	return &Continuation{ch: make(chan *Continuation)}
}

// deliver performs a terminal ontop-jump to c: it hands payload to
// whatever is parked on c and does not itself expect to be resumed
// again. The caller's goroutine should do nothing further afterward.
func (c *Continuation) deliver(payload *Continuation) {
	c.ch <- payload
	close(c.ch)
}

func (c *Continuation) park() *Continuation {
	v, ok := <-c.ch
	if !ok {
		panic("concore: continuation resumed twice")
	}
	return v
}

// Transfer names where a suspended coroutine hands control next
// (Target) and what it hands along with the jump (Payload, itself a
// Continuation so the recipient can eventually hand control back). A
// nil Target means the coroutine has nothing further to do; its
// goroutine simply exits.
type Transfer struct {
	Target  *Continuation
	Payload *Continuation
}

// Callcc allocates a new stack via alloc and immediately begins running
// main on it, passing the continuation representing "resume here to
// return to this Callcc call". Callcc itself blocks until main (or
// whatever it transfers to) yields back to the caller, and returns
// whatever Continuation was handed along with that yield.
func Callcc(alloc Allocator, main func(caller *Continuation) Transfer) *Continuation {
	defer zone("callcc")()
	if alloc == nil {
		alloc = DefaultAllocator{}
	}
	stack, err := alloc.Allocate()
	if err != nil {
		panic(err)
	}
	caller := newContinuation()
	go func() {
		defer alloc.Deallocate(stack)
		t := main(caller)
		if t.Target != nil {
			t.Target.deliver(t.Payload)
		}
	}()
	return caller.park()
}

// Resume jumps to target, handing self along as the continuation target
// should resume to return here, then blocks until someone resumes self.
// It returns whatever continuation that later resume carried.
func Resume(target, self *Continuation) *Continuation {
	defer zone("resume")()
	if self == nil {
		self = newContinuation()
	}
	target.deliver(self)
	return self.park()
}
