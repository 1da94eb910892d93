// Copyright 2025 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package repstring

// Copy copies the elements of src into dst, traversing both ranges at
// increasing addresses.  It panics with a *PreconditionError when the
// lengths disagree, when either base address is misaligned for the element
// width, or when dst starts strictly inside src (the one overlap a forward
// copy cannot handle; dst at or below src, including dst == src, is fine).
// Validation happens before anything is written, so a panicking Copy has
// not modified dst.  Copying zero elements is a no-op.
func Copy[T Element](dst, src []T) {
	if len(dst) != len(src) {
		panic(&PreconditionError{Op: "Copy", Kind: LengthMismatch})
	}
	nElem := len(dst)
	if nElem == 0 {
		return
	}
	d, s := &dst[0], &src[0]
	checkAligned("Copy", d)
	checkAligned("Copy", s)
	checkForwardOverlap("Copy", d, s, nElem)
	copyFwd(d, s, nElem)
}
