// Copyright 2025 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

//go:build !amd64

package repstring

import "unsafe"

// MismatchRaw compares nElem element pairs starting at a and b and returns
// the index of the first bitwise-unequal pair, or -1 when all pairs match.
//
// WARNING: No validation is performed.  The caller must guarantee that
// both pointers are non-nil, aligned to the element width, and valid for
// nElem elements.  Use Mismatch when any of that is in doubt.
func MismatchRaw[T Element](a, b *T, nElem int) int {
	aS := unsafe.Slice(a, nElem)
	bS := unsafe.Slice(b, nElem)
	for i := 0; i < nElem; i++ {
		if !bitEqual(aS[i], bS[i]) {
			return i
		}
	}
	return -1
}

func mismatchFwd[T Element](a, b *T, nElem int) int {
	return MismatchRaw(a, b, nElem)
}
