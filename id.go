// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package concore

import "code.hybscloud.com/atomix"

// FrameID identifies one spawn/await pair for the lifetime of the
// process. It has no meaning across processes and is useful only for
// logging and tests that want to tell two in-flight frames apart.
type FrameID = uint32

// frameCounter is the global monotonic counter backing every FrameID.
var frameCounter atomix.Uint32

// nextFrameID returns the next monotonically increasing frame id.
func nextFrameID() FrameID {
	return frameCounter.Add(1)
}
