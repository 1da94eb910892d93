// Copyright 2025 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package repstring

// Mismatch compares a and b element-wise from the front and returns the
// index of the first differing pair, or -1 when the ranges are equal over
// their whole (common, verified-equal) length.  Equality is bitwise; see
// bitEqual for the float caveats.  It panics with a *PreconditionError
// when the lengths disagree — it never silently compares the shorter
// prefix — or when a base address is misaligned for the element width.
// Comparing empty ranges yields -1.
func Mismatch[T Element](a, b []T) int {
	if len(a) != len(b) {
		panic(&PreconditionError{Op: "Mismatch", Kind: LengthMismatch})
	}
	nElem := len(a)
	if nElem == 0 {
		return -1
	}
	pa, pb := &a[0], &b[0]
	checkAligned("Mismatch", pa)
	checkAligned("Mismatch", pb)
	return mismatchFwd(pa, pb, nElem)
}
