// Copyright 2025 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package repstring

// Fill sets every element of dst to val.  It panics with a
// *PreconditionError when dst's base address is misaligned for the element
// width (only possible for slices forged with package unsafe).  Filling an
// empty slice is a no-op.  Fill is idempotent: repeating it with the same
// value leaves the same observable state.
func Fill[T Element](dst []T, val T) {
	nElem := len(dst)
	if nElem == 0 {
		return
	}
	d := &dst[0]
	checkAligned("Fill", d)
	fillFwd(d, val, nElem)
}
