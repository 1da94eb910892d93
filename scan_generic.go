// Copyright 2025 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

//go:build !amd64

package repstring

import "unsafe"

// IndexRaw scans nElem elements starting at p and returns the index of the
// first element bitwise-equal to val, or -1 when no element matches.
//
// WARNING: No validation is performed.  The caller must guarantee that p
// is non-nil, aligned to the element width, and valid for nElem elements.
// Use Index when any of that is in doubt.
func IndexRaw[T Element](p *T, val T, nElem int) int {
	pS := unsafe.Slice(p, nElem)
	for i := 0; i < nElem; i++ {
		if bitEqual(pS[i], val) {
			return i
		}
	}
	return -1
}

func indexFwd[T Element](p *T, val T, nElem int) int {
	return IndexRaw(p, val, nElem)
}
