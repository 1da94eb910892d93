// Copyright 2025 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

//go:build !amd64

package repstring

import "unsafe"

// CopyRaw copies nElem elements from src to dst, traversing forward.
//
// WARNING: No validation is performed.  The caller must guarantee that both
// pointers are non-nil, aligned to the element width, valid for nElem
// elements, and that dst does not start strictly inside the source range.
// Use Copy when any of that is in doubt.
func CopyRaw[T Element](dst, src *T, nElem int) {
	dstS := unsafe.Slice(dst, nElem)
	srcS := unsafe.Slice(src, nElem)
	for i := 0; i < nElem; i++ {
		dstS[i] = srcS[i]
	}
}

func copyFwd[T Element](dst, src *T, nElem int) {
	CopyRaw(dst, src, nElem)
}
