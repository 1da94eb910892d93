// Copyright 2025 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package repstring

// Index returns the index of the first element of s bitwise-equal to val,
// or -1 when no element matches.  It panics with a *PreconditionError when
// s's base address is misaligned for the element width.  Scanning an empty
// slice yields -1.
func Index[T Element](s []T, val T) int {
	nElem := len(s)
	if nElem == 0 {
		return -1
	}
	p := &s[0]
	checkAligned("Index", p)
	return indexFwd(p, val, nElem)
}
