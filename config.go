// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package concore

import (
	"os"
	"runtime"
	"strconv"
)

// CONCORE_MAX_CONCURRENCY overrides the default worker count a [Pool]
// is built with when no explicit size is given. Unset, empty, zero, or
// unparsable values fall back to [runtime.NumCPU], and a non-positive
// result from that falls back to 1.
const CONCORE_MAX_CONCURRENCY = "CONCORE_MAX_CONCURRENCY"

func defaultConcurrency() int {
	if v, ok := os.LookupEnv(CONCORE_MAX_CONCURRENCY); ok {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	if n := runtime.NumCPU(); n > 0 {
		return n
	}
	return 1
}
