// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package concore

// zone marks a named instrumentation point around a callcc/resume
// transfer or a spawn/await rendezvous step. It is a no-op sink: this
// package is not in the business of shipping a profiler, but the call
// sites exist at every place the original design instruments, so a real
// sink can be wired in later without touching the runtime logic.
func zone(name string) func() {
	return func() {}
}
